package lookup

import (
	"fmt"
	"sort"
	"strings"

	"aidynedit/tables"
)

// NameReader reads the fixed-width name stored at addr, NUL padding removed.
type NameReader func(addr int64, width int) (string, error)

// Static builds a table from fixed configuration. The sentinel is the NONE
// entry when there is one, otherwise the zero code, which must then be listed.
func Static(s tables.Static) (*Table, error) {
	t := newTable(s.Name, s.Width)
	t.Sentinel = zero(s.Width)
	for _, e := range s.Entries {
		if e.Label == NONE {
			t.Sentinel = strings.ToUpper(e.Code)
		}
	}
	// sentinel first, then config order
	for _, e := range s.Entries {
		if strings.ToUpper(e.Code) == t.Sentinel {
			if err := t.add(e.Code, e.Label); err != nil {
				return nil, err
			}
		}
	}
	if t.Len() == 0 {
		if err := t.add(t.Sentinel, NONE); err != nil {
			return nil, err
		}
	}
	for _, e := range s.Entries {
		if strings.ToUpper(e.Code) == t.Sentinel {
			continue
		}
		if err := t.add(e.Code, e.Label); err != nil {
			return nil, err
		}
	}
	return t, nil
}

type named struct {
	label string
	code  string
}

// sortNamed orders by label, then code. The order is what users pick from,
// so it must not depend on address or code order.
func sortNamed(entries []named) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].label != entries[j].label {
			return entries[i].label < entries[j].label
		}
		return entries[i].code < entries[j].code
	})
}

func fromSorted(name string, width int, entries []named) (*Table, error) {
	t := newTable(name, width)
	t.Sentinel = zero(width)
	if err := t.add(t.Sentinel, NONE); err != nil {
		return nil, err
	}
	sortNamed(entries)
	for _, e := range entries {
		if err := t.add(e.code, e.label); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Blank_name stands in for a name that is empty in the ROM, so it still has a
// label of its own.
func Blank_name(addr int64) string {
	return fmt.Sprintf("(blank 0x%08X)", addr)
}

// Names builds a table whose labels are names read out of the ROM, one per ref.
func Names(name string, width int, refs []tables.Ref, nameWidth int, read NameReader) (*Table, error) {
	entries := make([]named, 0, len(refs))
	for _, r := range refs {
		n, err := read(r.Address, nameWidth)
		if err != nil {
			return nil, fmt.Errorf("%v: reading name at 0x%08X: %w", name, r.Address, err)
		}
		if strings.TrimSpace(n) == "" {
			n = Blank_name(r.Address)
		}
		entries = append(entries, named{n, strings.ToUpper(r.Code)})
	}
	return fromSorted(name, width, entries)
}

// Swap_potion reverses the two bytes of a potion code. Potion codes are stored
// id-first in records but type-first in the potion table.
func Swap_potion(code string) string {
	if len(code) != 4 {
		return code
	}
	return code[2:] + code[:2]
}

// Item_label composes the "(category) name" label of an item.
func Item_label(category, name string) string {
	return "(" + category + ") " + name
}

// Items builds the global item table. Labels are "(category) name", sorted as
// a whole so categories interleave. Potions have no name in the ROM item list
// and are labelled from tables.Potions after swapping their code bytes.
func Items(refs []tables.Ref, read NameReader) (*Table, error) {
	entries := make([]named, 0, len(refs))
	for _, r := range refs {
		code := strings.ToUpper(r.Code)
		if len(code) != 4 {
			return nil, fmt.Errorf("items: bad code %q", r.Code)
		}
		suffix := code[2:]

		if suffix == tables.POTION_SUFFIX {
			if potion, ok := tables.Potions[Swap_potion(code)]; ok {
				entries = append(entries, named{Item_label("potion", potion), code})
			}
			continue
		}

		category, ok := tables.ItemCategories[suffix]
		if !ok {
			continue
		}
		n, err := read(r.Address, tables.ITEM_NAME_WIDTH)
		if err != nil {
			return nil, fmt.Errorf("items: reading name at 0x%08X: %w", r.Address, err)
		}
		if strings.TrimSpace(n) == "" {
			n = Blank_name(r.Address)
		}
		entries = append(entries, named{Item_label(category, n), code})
	}
	return fromSorted("items", 4, entries)
}

// View is the subset of an item table in one category, with the category
// prefix stripped. Codes and labels from other categories still resolve
// through the parent, so an odd item in a weapon slot stays readable.
func View(items *Table, category string) (*Table, error) {
	prefix := Item_label(category, "")
	t := newTable(category+"_items", items.Width)
	t.Sentinel = items.Sentinel
	t.parent = items
	for _, l := range items.labels {
		c := items.byLabel[l]
		switch {
		case c == items.Sentinel:
			if err := t.add(c, l); err != nil {
				return nil, err
			}
		case strings.HasPrefix(l, prefix):
			if err := t.add(c, strings.TrimPrefix(l, prefix)); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}
