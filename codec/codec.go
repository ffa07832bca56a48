// Package codec turns record data blocks into field values and back.
//
// Encoding always starts from the block as it is on disk, so bytes no field
// owns come out exactly as they went in.
package codec

import (
	"errors"
	"fmt"

	"aidynedit/lookup"
	"aidynedit/readers"
	"aidynedit/tables"
	"aidynedit/types"
	"aidynedit/writers"
)

var (
	// ErrDecode means the ROM doesn't look like the record layout expects.
	ErrDecode = errors.New("cannot read record")
	// ErrValue means an edited value doesn't fit its field.
	ErrValue = errors.New("bad value")
)

// Tables resolves lookup table names used by FieldSpec.Table.
type Tables interface {
	Table(name string) (*lookup.Table, error)
}

// Decode_field decodes one field out of a data block.
func Decode_field(f *types.FieldSpec, block []byte, tabs Tables) (types.Value, error) {
	if f.End() > len(block) {
		return types.Value{}, fmt.Errorf("%v: block is %v bytes, field ends at %v: %w", f.Name, len(block), f.End(), ErrDecode)
	}
	raw := block[f.Offset:f.End()]

	switch f.Kind {
	case types.FK_UNSIGNED:
		return types.Int(int(raw[0])), nil

	case types.FK_SIGNED:
		return types.Int(readers.Read_int8(raw[0])), nil

	case types.FK_WORD:
		return types.Int(readers.Read_uint16_le(raw, 0)), nil

	case types.FK_SENTINEL:
		if raw[0] == 255 {
			return types.Unset(), nil
		}
		return types.Int(int(raw[0])), nil

	case types.FK_CODE, types.FK_NIBBLE:
		code := readers.Read_code(raw)
		if f.Kind == types.FK_NIBBLE {
			code = readers.Read_nibble(raw[0])
		}
		if alias, ok := f.Aliases[code]; ok {
			code = alias
		}
		tab, err := tabs.Table(f.Table)
		if err != nil {
			return types.Value{}, fmt.Errorf("%v: %w", f.Name, err)
		}
		label, err := tab.Label(code)
		if err != nil {
			return types.Value{}, fmt.Errorf("%v: %w: %w", f.Name, ErrDecode, err)
		}
		return types.Label(label), nil
	}

	return types.Value{}, fmt.Errorf("%v: unknown field kind %v: %w", f.Name, f.Kind, ErrDecode)
}

// Decode decodes every field of a record kind.
func Decode(kind *types.RecordKind, block []byte, tabs Tables) (map[string]types.Value, error) {
	if len(block) < kind.DataLength {
		return nil, fmt.Errorf("%v: got %v bytes, need %v: %w", kind.Name, len(block), kind.DataLength, ErrDecode)
	}
	out := make(map[string]types.Value, len(kind.Fields))
	for i := range kind.Fields {
		f := &kind.Fields[i]
		v, err := Decode_field(f, block, tabs)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", kind.Name, err)
		}
		out[f.Name] = v
	}
	return out, nil
}

// Encode_field writes one value into block. blank is what an unset sentinel becomes.
func Encode_field(f *types.FieldSpec, v types.Value, block []byte, blank byte, tabs Tables) error {
	if f.End() > len(block) {
		return fmt.Errorf("%v: field ends past the block: %w", f.Name, ErrValue)
	}

	if f.Kind.Numeric() && v.IsLabel() {
		return fmt.Errorf("%v: %q is not a number: %w", f.Name, v.Label, ErrValue)
	}
	if v.Unset && f.Kind != types.FK_SENTINEL {
		return fmt.Errorf("%v: can't be left blank: %w", f.Name, ErrValue)
	}

	switch f.Kind {
	case types.FK_UNSIGNED:
		if v.Int < 0 || v.Int > 255 {
			return fmt.Errorf("%v: %v out of range 0-255: %w", f.Name, v.Int, ErrValue)
		}
		block[f.Offset] = byte(v.Int)

	case types.FK_SIGNED:
		if v.Int < -128 || v.Int > 127 {
			return fmt.Errorf("%v: %v out of range -128-127: %w", f.Name, v.Int, ErrValue)
		}
		b, err := writers.Write_int8(v.Int)
		if err != nil {
			return fmt.Errorf("%v: %w: %w", f.Name, ErrValue, err)
		}
		block[f.Offset] = b

	case types.FK_WORD:
		if v.Int < 0 {
			return fmt.Errorf("%v: %v is negative: %w", f.Name, v.Int, ErrValue)
		}
		writers.Write_uint16_le(block, f.Offset, v.Int)

	case types.FK_SENTINEL:
		if v.Unset {
			// 255 already reads as unset; only a cleared value takes the kind's blank
			if block[f.Offset] != 255 {
				block[f.Offset] = blank
			}
			break
		}
		if v.Int < 0 || v.Int > 255 {
			return fmt.Errorf("%v: %v out of range 0-255: %w", f.Name, v.Int, ErrValue)
		}
		block[f.Offset] = byte(v.Int)

	case types.FK_CODE, types.FK_NIBBLE:
		if !v.IsLabel() {
			return fmt.Errorf("%v: expected one of the table's labels, got %v: %w", f.Name, v, ErrValue)
		}
		tab, err := tabs.Table(f.Table)
		if err != nil {
			return fmt.Errorf("%v: %w", f.Name, err)
		}
		code, err := tab.Code(v.Label)
		if err != nil {
			return fmt.Errorf("%v: %w: %w", f.Name, ErrValue, err)
		}
		// An aliased code on disk that means the same thing stays as it is
		if alias, ok := f.Aliases[readers.Read_code(block[f.Offset:f.End()])]; ok && alias == code {
			break
		}
		if f.Kind == types.FK_NIBBLE {
			err = writers.Write_nibble(block, f.Offset, code)
		} else if len(code) != 2*f.Width {
			err = fmt.Errorf("code %v doesn't fill %v bytes", code, f.Width)
		} else {
			err = writers.Write_code(block, f.Offset, code)
		}
		if err != nil {
			return fmt.Errorf("%v: %w: %w", f.Name, ErrValue, err)
		}

	default:
		return fmt.Errorf("%v: unknown field kind %v: %w", f.Name, f.Kind, ErrValue)
	}
	return nil
}

// Encode splices values into a copy of original, the block as currently on
// disk. Fields without a value keep their bytes.
func Encode(kind *types.RecordKind, original []byte, values map[string]types.Value, tabs Tables) ([]byte, error) {
	if len(original) < kind.DataLength {
		return nil, fmt.Errorf("%v: original block is %v bytes, need %v: %w", kind.Name, len(original), kind.DataLength, ErrValue)
	}
	for name := range values {
		if _, ok := kind.Field(name); !ok {
			return nil, fmt.Errorf("%v has no field %q: %w", kind.Name, name, ErrValue)
		}
	}

	out := append([]byte{}, original...)
	for i := range kind.Fields {
		f := &kind.Fields[i]
		v, ok := values[f.Name]
		if !ok {
			continue
		}
		if err := Encode_field(f, v, out, kind.Blank, tabs); err != nil {
			return nil, fmt.Errorf("%v: %w", kind.Name, err)
		}
	}
	return out, nil
}

// Experience is the XP an enemy gives for its exp byte, as the game shows it.
func Experience(exp int) int {
	xp := tables.XP_FACTOR * exp
	if xp > tables.XP_CAP {
		xp = tables.XP_CAP
	}
	return xp
}
