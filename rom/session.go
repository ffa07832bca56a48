// Package rom reads and writes records in an Aidyn Chronicles ROM image.
//
// The file is opened fresh for every read and every write; nothing read from
// it is trusted after the session writes. Two sessions (or two programs)
// writing the same record is last-writer-wins.
package rom

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"aidynedit/lookup"
	"aidynedit/readers"
	"aidynedit/tables"
)

var (
	ErrNothingSelected = errors.New("nothing selected")
	ErrStaleIndex      = errors.New("record list is out of date; list the records again")
	ErrNoTable         = errors.New("no such lookup table")
	ErrBlankName       = errors.New("name can't be blank")
)

// SaveError is the single failure boundary of a write. The message is
// deliberately generic; the cause is kept for logging and errors.Is.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string { return "save failed" }
func (e *SaveError) Unwrap() error { return e.Err }

// Session owns everything derived from one ROM file: lookup tables and the
// write generation that index staleness is measured against.
type Session struct {
	Path   string
	Logger hclog.Logger

	backup     bool
	backed_up  bool
	generation uint64
	tables     map[string]*lookup.Table
}

type Option func(*Session)

func WithLogger(l hclog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.Logger = l
		}
	}
}

// WithBackup makes the session copy the ROM aside before its first write.
func WithBackup(on bool) Option {
	return func(s *Session) { s.backup = on }
}

// Open checks the file looks like a ROM and starts a session on it.
func Open(path string, opts ...Option) (*Session, error) {
	s := &Session{Path: path, Logger: hclog.NewNullLogger(), tables: map[string]*lookup.Table{}}
	for _, o := range opts {
		o(s)
	}
	if err := Check(path); err != nil {
		return nil, err
	}
	s.Logger.Debug("opened rom", "path", path)
	return s, nil
}

// Generation counts the writes this session has done.
func (s *Session) Generation() uint64 {
	return s.generation
}

// read opens the file, reads size bytes at addr and closes it again.
func (s *Session) read(addr int64, size int) ([]byte, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s.Logger.Trace("read", "addr", fmt.Sprintf("0x%08X", addr), "len", size)
	return readers.Read_fixed(f, addr, size)
}

// read_names reads many names with one open.
func (s *Session) read_names(addrs []int64, width int) ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i], err = readers.Read_name(f, a, width)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// name_reader serves lookup builders, which read a name per code.
func (s *Session) name_reader() (lookup.NameReader, func(), error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, nil, err
	}
	read := func(addr int64, width int) (string, error) {
		return readers.Read_name(f, addr, width)
	}
	return read, func() { f.Close() }, nil
}

// Table returns a lookup table by name, building it on first use.
// The cache is dropped after every write, since item and spell names may have changed.
func (s *Session) Table(name string) (*lookup.Table, error) {
	if t, ok := s.tables[name]; ok {
		return t, nil
	}
	t, err := s.build_table(name)
	if err != nil {
		return nil, err
	}
	s.tables[name] = t
	return t, nil
}

func (s *Session) build_table(name string) (*lookup.Table, error) {
	for _, st := range tables.Statics {
		if st.Name == name {
			return lookup.Static(st)
		}
	}

	switch name {
	case "weapon_items", "armor_items", "shield_items":
		items, err := s.Table("items")
		if err != nil {
			return nil, err
		}
		return lookup.View(items, name[:len(name)-len("_items")])
	}

	read, done, err := s.name_reader()
	if err != nil {
		return nil, err
	}
	defer done()

	s.Logger.Debug("building lookup table", "table", name)
	switch name {
	case "items":
		return lookup.Items(tables.ItemRefs, read)
	case "spells":
		return lookup.Names("spells", 4, tables.SpellRefs, tables.SPELL_NAME_WIDTH, read)
	case "loot":
		return lookup.Names("loot", 2, tables.LootRefs, tables.LOOT_NAME_WIDTH, read)
	}
	return nil, fmt.Errorf("%v: %w", name, ErrNoTable)
}

// invalidate forgets everything read from the ROM. Called after every write.
func (s *Session) invalidate() {
	s.generation++
	s.tables = map[string]*lookup.Table{}
}
