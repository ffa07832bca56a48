package writers

// Functions for putting fields back into ROM bytes.
// These write into a byte block in place; the block itself is written to the file elsewhere.

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
)

// ErrEncoding means a name has characters the ROM can't store.
var ErrEncoding = errors.New("name can't be encoded in one byte per character")

// Encode_name pads (or truncates) a name to exactly width bytes of NUL-padded Windows-1252.
func Encode_name(name string, width int) ([]byte, error) {
	raw, err := charmap.Windows1252.NewEncoder().Bytes([]byte(name))
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, ErrEncoding)
	}
	if len(raw) > width {
		raw = raw[:width]
	}
	return append(raw, make([]byte, width-len(raw))...), nil
}

// Write_string_padded writes a name into a fixed-length slot.
func Write_string_padded(out io.WriterAt, addr int64, name string, width int) error {
	raw, err := Encode_name(name, width)
	if err != nil {
		return err
	}
	_, err = out.WriteAt(raw, addr)
	return err
}

// Write_uint16_le stores v low byte first.
// Anything that doesn't fit becomes 65535, not a wrapped value.
func Write_uint16_le(data []byte, off int, v int) {
	if v < 0 {
		v = 0
	}
	hi, lo := v/256, v%256
	if hi >= 256 {
		hi, lo = 255, 255
	}
	data[off] = byte(lo)
	data[off+1] = byte(hi)
}

// Write_int8 stores a signed value as two's complement.
func Write_int8(v int) (byte, error) {
	if v < -128 || v > 255 {
		return 0, fmt.Errorf("%v does not fit in a byte", v)
	}
	if v < 0 {
		v += 256
	}
	return byte(v), nil
}

// Write_code stores a hex code into data at off, one byte per pair of digits.
func Write_code(data []byte, off int, code string) error {
	raw, err := hex.DecodeString(code)
	if err != nil {
		return fmt.Errorf("bad code %q: %w", code, err)
	}
	copy(data[off:off+len(raw)], raw)
	return nil
}

// Write_nibble replaces the low nibble of data[off], keeping the high one.
func Write_nibble(data []byte, off int, code string) error {
	raw, err := hex.DecodeString("0" + code)
	if err != nil || len(code) != 1 {
		return fmt.Errorf("bad nibble code %q", code)
	}
	data[off] = data[off]&0xF0 | raw[0]
	return nil
}
