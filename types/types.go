package types

import (
	"fmt"
	"strconv"
)

// FieldKind says how the bytes of a field are interpreted.
type FieldKind int

const (
	FK_UNSIGNED FieldKind = iota // one unsigned byte
	FK_SIGNED                    // one byte, two's complement
	FK_WORD                      // 16-bit little-endian "base value"
	FK_CODE                      // raw bytes as a hex code, looked up in a table
	FK_NIBBLE                    // low nibble as a one-digit hex code, looked up in a table
	FK_SENTINEL                  // unsigned byte where 255 means "unset"
)

func (k FieldKind) String() string {
	switch k {
	case FK_UNSIGNED:
		return "unsigned"
	case FK_SIGNED:
		return "signed"
	case FK_WORD:
		return "word"
	case FK_CODE:
		return "code"
	case FK_NIBBLE:
		return "nibble"
	case FK_SENTINEL:
		return "sentinel"
	}
	return fmt.Sprintf("FieldKind(%d)", int(k))
}

// Numeric fields carry an int; coded fields carry a label.
func (k FieldKind) Numeric() bool {
	return k != FK_CODE && k != FK_NIBBLE
}

// FieldSpec describes one field of a record's data block.
type FieldSpec struct {
	Name   string
	Offset int // relative to the data block
	Width  int // bytes
	Kind   FieldKind
	Table  string // lookup table name, coded fields only
	Max    int    // upper clamp for numeric input; signed fields ignore it

	// Aliases rewrites raw codes before lookup. Some ROM records use codes
	// that mean "nothing" but are not the zero code.
	Aliases map[string]string
}

// End is one past the last byte owned by the field.
func (f *FieldSpec) End() int {
	return f.Offset + f.Width
}

// RecordKind is the static description of one category of ROM record.
type RecordKind struct {
	Name       string
	Title      string
	Addresses  []int64
	NameLength int // 0 for nameless regions
	DataOffset int // relative to the record address
	DataLength int // bytes read; may exceed what the fields own
	Fields     []FieldSpec

	// Blank is what an unset sentinel field encodes to.
	// Party-style records use 255, enemy-style records use 0.
	Blank byte
}

func (k *RecordKind) Field(name string) (*FieldSpec, bool) {
	for i := range k.Fields {
		if k.Fields[i].Name == name {
			return &k.Fields[i], true
		}
	}
	return nil, false
}

// Span is the number of bytes from the record address to the end of the data block.
func (k *RecordKind) Span() int {
	return k.DataOffset + k.DataLength
}

// Validate checks that fields fit in the data block and never overlap.
func (k *RecordKind) Validate() error {
	owner := make([]string, k.DataLength)
	for _, f := range k.Fields {
		if f.Width <= 0 || f.Offset < 0 || f.End() > k.DataLength {
			return fmt.Errorf("%v.%v: bytes %v-%v outside %v byte block", k.Name, f.Name, f.Offset, f.End()-1, k.DataLength)
		}
		if (f.Kind == FK_CODE || f.Kind == FK_NIBBLE) && f.Table == "" {
			return fmt.Errorf("%v.%v: coded field without a table", k.Name, f.Name)
		}
		if f.Kind == FK_WORD && f.Width != 2 {
			return fmt.Errorf("%v.%v: word fields are 2 bytes", k.Name, f.Name)
		}
		for i := f.Offset; i < f.End(); i++ {
			if owner[i] != "" {
				return fmt.Errorf("%v: %v overlaps %v at byte %v", k.Name, f.Name, owner[i], i)
			}
			owner[i] = f.Name
		}
	}
	if k.DataOffset < k.NameLength {
		return fmt.Errorf("%v: data block at +%v overlaps %v byte name", k.Name, k.DataOffset, k.NameLength)
	}
	return nil
}

// Value is one decoded field.
type Value struct {
	Int   int
	Label string
	Unset bool
	coded bool
}

func Int(n int) Value         { return Value{Int: n} }
func Label(s string) Value    { return Value{Label: s, coded: true} }
func Unset() Value            { return Value{Unset: true} }
func (v Value) IsLabel() bool { return v.coded }

func (v Value) String() string {
	switch {
	case v.Unset:
		return ""
	case v.coded:
		return v.Label
	}
	return strconv.Itoa(v.Int)
}

// Record is the decoded view of one ROM record. It is never cached: every
// load re-reads the file.
type Record struct {
	Kind    *RecordKind
	Address int64
	Name    string
	Values  map[string]Value
}

// Get returns the value of a field, or the zero value if the record has no such field.
func (r *Record) Get(field string) Value {
	return r.Values[field]
}

// Clone copies the record so edits don't leak into the decoded original.
func (r *Record) Clone() *Record {
	out := &Record{Kind: r.Kind, Address: r.Address, Name: r.Name, Values: make(map[string]Value, len(r.Values))}
	for k, v := range r.Values {
		out.Values[k] = v
	}
	return out
}
