package codec

import (
	"fmt"
	"strconv"
	"strings"

	"aidynedit/types"
	"aidynedit/utils"
)

// Validate_and_clamp turns typed input into a value the field can hold.
// Numbers are pulled into range rather than rejected; only input that means
// nothing at all (or matches no label) is an error.
func Validate_and_clamp(f *types.FieldSpec, raw string, tabs Tables) (types.Value, error) {
	raw = strings.TrimSpace(raw)

	switch f.Kind {
	case types.FK_UNSIGNED, types.FK_WORD:
		n, _ := utils.Limit(raw, f.Max)
		return types.Int(n), nil

	case types.FK_SENTINEL:
		n, empty := utils.Limit(raw, f.Max)
		if empty {
			return types.Unset(), nil
		}
		return types.Int(n), nil

	case types.FK_SIGNED:
		n, _ := utils.Limit_127(raw)
		return types.Int(n), nil

	case types.FK_CODE, types.FK_NIBBLE:
		tab, err := tabs.Table(f.Table)
		if err != nil {
			return types.Value{}, err
		}
		labels := tab.Labels()
		// An exact label always wins, even over a longer fuzzy match
		if _, err := tab.Code(raw); err == nil {
			return types.Label(raw), nil
		}
		i, err := utils.Fuzzy_match(labels, raw, f.Name)
		if err != nil {
			return types.Value{}, fmt.Errorf("%v: %w: %w", f.Name, ErrValue, err)
		}
		return types.Label(labels[i]), nil
	}
	return types.Value{}, fmt.Errorf("%v: unknown field kind %v: %w", f.Name, f.Kind, ErrValue)
}

// Parse_int reads decimal, then hex. Unlike the clamping path this refuses
// junk instead of treating it as 0.
func Parse_int(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	h := strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "0X")
	if n, err := strconv.ParseInt(h, 16, 64); err == nil {
		return int(n), nil
	}
	return 0, fmt.Errorf("%q is not a number: %w", raw, ErrValue)
}

// Domain describes what a field accepts: a numeric range, or a table's labels.
func Domain(f *types.FieldSpec, tabs Tables) (string, []string, error) {
	switch f.Kind {
	case types.FK_UNSIGNED, types.FK_WORD:
		return fmt.Sprintf("0-%v", f.Max), nil, nil
	case types.FK_SENTINEL:
		return fmt.Sprintf("0-%v, or blank", f.Max), nil, nil
	case types.FK_SIGNED:
		return "-128-127", nil, nil
	case types.FK_CODE, types.FK_NIBBLE:
		tab, err := tabs.Table(f.Table)
		if err != nil {
			return "", nil, err
		}
		return tab.Name, tab.Labels(), nil
	}
	return "", nil, fmt.Errorf("%v: unknown field kind %v", f.Name, f.Kind)
}
