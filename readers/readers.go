package readers

// Functions for pulling fields out of ROM bytes.

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Read_fixed reads exactly size bytes at addr.
func Read_fixed(r io.ReaderAt, addr int64, size int) ([]byte, error) {
	into := make([]byte, size)
	n, err := r.ReadAt(into, addr)
	if n == size {
		// ReadAt may report EOF alongside a full read at the very end of the file
		return into, nil
	}
	if err == nil || err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return nil, fmt.Errorf("failed to read %v bytes at 0x%08X (got only %v): %w", size, addr, n, err)
}

// Decode_name turns a fixed-width name field into a display string.
// Trailing NULs are padding; anything before them is kept.
func Decode_name(raw []byte) string {
	raw = bytes.TrimRight(raw, "\x00")
	out, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		// Every byte has a Windows-1252 meaning, so this can't really happen
		return string(raw)
	}
	return string(out)
}

func Read_name(r io.ReaderAt, addr int64, width int) (string, error) {
	raw, err := Read_fixed(r, addr, width)
	if err != nil {
		return "", err
	}
	return Decode_name(raw), nil
}

// Read_uint16_le reads the two-byte "base value" layout: low byte first.
func Read_uint16_le(data []byte, off int) int {
	return int(data[off+1])*256 + int(data[off])
}

// Read_int8 reads a two's complement byte.
func Read_int8(b byte) int {
	n := int(b)
	if n > 127 {
		n -= 256
	}
	return n
}

// Read_code reads raw bytes as an upper-case hex code, in storage order.
func Read_code(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}

// Read_nibble reads the low nibble of b as a one-digit hex code.
func Read_nibble(b byte) string {
	return fmt.Sprintf("%X", b&0x0F)
}
