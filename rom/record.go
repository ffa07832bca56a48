package rom

import (
	"fmt"
	"os"
	"strings"

	"aidynedit/codec"
	"aidynedit/readers"
	"aidynedit/types"
	"aidynedit/writers"
)

// Load reads and decodes the record at addr.
func (s *Session) Load(kind *types.RecordKind, addr int64) (*types.Record, error) {
	span, err := s.read(addr, kind.Span())
	if err != nil {
		return nil, fmt.Errorf("loading %v at 0x%08X: %w", kind.Name, addr, err)
	}
	values, err := codec.Decode(kind, span[kind.DataOffset:], s)
	if err != nil {
		return nil, fmt.Errorf("loading %v at 0x%08X: %w", kind.Name, addr, err)
	}
	return &types.Record{
		Kind:    kind,
		Address: addr,
		Name:    readers.Decode_name(span[:kind.NameLength]),
		Values:  values,
	}, nil
}

// patch is one encoded region waiting to be written.
type patch struct {
	addr int64
	data []byte
}

// encode re-reads a record's data block from f and splices rec's values into
// it. The name, if the kind has one, comes first.
func (s *Session) encode(f *os.File, rec *types.Record) ([]patch, error) {
	kind := rec.Kind
	original, err := readers.Read_fixed(f, rec.Address+int64(kind.DataOffset), kind.DataLength)
	if err != nil {
		return nil, err
	}
	block, err := codec.Encode(kind, original, rec.Values, s)
	if err != nil {
		return nil, err
	}

	out := []patch{}
	if kind.NameLength > 0 {
		if strings.TrimSpace(rec.Name) == "" {
			// A name that is already blank may stay blank, but nothing is renamed to blank
			current, err := readers.Read_name(f, rec.Address, kind.NameLength)
			if err != nil {
				return nil, err
			}
			if current != rec.Name {
				return nil, fmt.Errorf("%v at 0x%08X: %w", kind.Name, rec.Address, ErrBlankName)
			}
		}
		name, err := writers.Encode_name(rec.Name, kind.NameLength)
		if err != nil {
			return nil, err
		}
		out = append(out, patch{rec.Address, name})
	}
	return append(out, patch{rec.Address + int64(kind.DataOffset), block}), nil
}

// transaction is the failure boundary of a write: open the file, let fn work
// out every patch, write them all, close. Nothing is written unless every
// patch encoded. Any failure comes back as *SaveError.
func (s *Session) transaction(what string, fn func(f *os.File) ([]patch, error)) (err error) {
	defer func() {
		if err != nil {
			s.Logger.Error("save failed", "what", what, "error", err)
			err = &SaveError{err}
		}
	}()

	if s.backup && !s.backed_up {
		if _, err := s.Backup(); err != nil {
			return err
		}
		s.backed_up = true
	}

	f, err := os.OpenFile(s.Path, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	patches, err := fn(f)
	if err != nil {
		return err
	}

	// Whatever happens from here on, cached names can't be trusted
	defer s.invalidate()
	for _, p := range patches {
		s.Logger.Trace("write", "addr", fmt.Sprintf("0x%08X", p.addr), "len", len(p.data))
		if _, err := f.WriteAt(p.data, p.addr); err != nil {
			return err
		}
	}
	return nil
}

// Save writes rec back to the ROM and returns the record as re-read from
// disk. Bytes no field owns are preserved.
func (s *Session) Save(rec *types.Record) (*types.Record, error) {
	what := fmt.Sprintf("%v at 0x%08X", rec.Kind.Name, rec.Address)
	err := s.transaction(what, func(f *os.File) ([]patch, error) {
		return s.encode(f, rec)
	})
	if err != nil {
		return nil, err
	}
	s.Logger.Info("saved", "what", what, "name", rec.Name)

	// Confirm by reading it back
	return s.Load(rec.Kind, rec.Address)
}
