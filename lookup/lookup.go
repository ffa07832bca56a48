// Package lookup holds the code<->label tables used by coded record fields.
//
// Codes are upper-case hex strings: one digit for nibble fields, two for
// byte fields, four for two-byte fields (in storage order). Labels are what a
// human sees and types.
package lookup

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownCode    = errors.New("code not in table")
	ErrUnknownLabel   = errors.New("label not in table")
	ErrAmbiguousLabel = errors.New("label maps to more than one code")
	ErrNoSentinel     = errors.New("table has no sentinel")
)

const NONE = "NONE"

// Table is one code<->label bijection.
type Table struct {
	Name     string
	Width    int // hex digits
	Sentinel string

	labels  []string // presentation order
	byCode  map[string]string
	byLabel map[string]string

	// parent is consulted for codes and labels a view doesn't own
	parent *Table
}

func newTable(name string, width int) *Table {
	return &Table{Name: name, Width: width, byCode: map[string]string{}, byLabel: map[string]string{}}
}

// add appends a pair. Duplicated labels are remembered so Validate can report them.
func (t *Table) add(code, label string) error {
	code = strings.ToUpper(code)
	if len(code) != t.Width {
		return fmt.Errorf("%v: code %q is not %v hex digits", t.Name, code, t.Width)
	}
	if _, ok := t.byCode[code]; ok {
		return fmt.Errorf("%v: code %v listed twice", t.Name, code)
	}
	if other, ok := t.byLabel[label]; ok {
		return fmt.Errorf("%v: %q is both %v and %v: %w", t.Name, label, other, code, ErrAmbiguousLabel)
	}
	t.byCode[code] = label
	t.byLabel[label] = code
	t.labels = append(t.labels, label)
	return nil
}

// Label maps a code to its label.
func (t *Table) Label(code string) (string, error) {
	code = strings.ToUpper(code)
	if l, ok := t.byCode[code]; ok {
		return l, nil
	}
	if t.parent != nil {
		if l, ok := t.parent.byCode[code]; ok {
			return l, nil
		}
	}
	return "", fmt.Errorf("%v: %v: %w", t.Name, code, ErrUnknownCode)
}

// Code maps a label back to its code.
func (t *Table) Code(label string) (string, error) {
	if c, ok := t.byLabel[label]; ok {
		return c, nil
	}
	if t.parent != nil {
		if c, ok := t.parent.byLabel[label]; ok {
			return c, nil
		}
	}
	return "", fmt.Errorf("%v: %q: %w", t.Name, label, ErrUnknownLabel)
}

// Labels lists labels in presentation order, sentinel first.
func (t *Table) Labels() []string {
	return append([]string{}, t.labels...)
}

func (t *Table) Len() int {
	return len(t.labels)
}

// Forward returns a copy of the code->label map.
func (t *Table) Forward() map[string]string {
	out := make(map[string]string, len(t.byCode))
	for k, v := range t.byCode {
		out[k] = v
	}
	return out
}

// Invert builds label->code from a code->label map.
// Two codes sharing a label is a configuration bug.
func Invert(forward map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(forward))
	codes := make([]string, 0, len(forward))
	for c := range forward {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	for _, c := range codes {
		l := forward[c]
		if other, ok := out[l]; ok {
			return nil, fmt.Errorf("%q is both %v and %v: %w", l, other, c, ErrAmbiguousLabel)
		}
		out[l] = c
	}
	return out, nil
}

// Validate checks the table is a usable bijection with its sentinel present.
func (t *Table) Validate() error {
	if _, ok := t.byCode[t.Sentinel]; !ok || t.Sentinel == "" {
		return fmt.Errorf("%v: %w", t.Name, ErrNoSentinel)
	}
	inv, err := Invert(t.byCode)
	if err != nil {
		return fmt.Errorf("%v: %w", t.Name, err)
	}
	if len(inv) != len(t.byLabel) || len(t.labels) != len(t.byCode) {
		return fmt.Errorf("%v: forward and reverse tables disagree", t.Name)
	}
	for l, c := range inv {
		if t.byLabel[l] != c {
			return fmt.Errorf("%v: %q reverses to %v, expected %v", t.Name, l, t.byLabel[l], c)
		}
	}
	return nil
}

// zero is the all-zero code of the given width.
func zero(width int) string {
	return strings.Repeat("0", width)
}
