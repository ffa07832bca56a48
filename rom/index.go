package rom

import (
	"fmt"
	"sort"

	"aidynedit/types"
	"aidynedit/utils"
)

// Index is a snapshot of one kind's records, sorted by name the way the
// user sees them. It is only good until the session writes again.
type Index struct {
	Kind       *types.RecordKind
	Names      []string
	Addresses  []int64
	generation uint64
}

func (idx *Index) Len() int {
	return len(idx.Names)
}

// Find matches a typed name against the index and returns its ordinal.
func (idx *Index) Find(name string) (int, error) {
	return utils.Fuzzy_match(idx.Names, name, idx.Kind.Name)
}

// Enumerate reads the name of every record of a kind and sorts them by
// (name, address). Renaming a record changes this order, so callers
// enumerate again after every write.
func (s *Session) Enumerate(kind *types.RecordKind) (*Index, error) {
	if kind.NameLength == 0 {
		return nil, fmt.Errorf("%v records have no names to list", kind.Name)
	}
	names, err := s.read_names(kind.Addresses, kind.NameLength)
	if err != nil {
		return nil, fmt.Errorf("listing %v: %w", kind.Name, err)
	}

	order := make([]int, len(names))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if names[i] != names[j] {
			return names[i] < names[j]
		}
		return kind.Addresses[i] < kind.Addresses[j]
	})

	idx := &Index{Kind: kind, generation: s.generation}
	for _, i := range order {
		idx.Names = append(idx.Names, names[i])
		idx.Addresses = append(idx.Addresses, kind.Addresses[i])
	}
	s.Logger.Debug("enumerated", "kind", kind.Name, "count", idx.Len())
	return idx, nil
}

// Resolve turns an ordinal from idx into a record address.
// A negative or out-of-range ordinal is "nothing selected"; an index built
// before this session's last write is refused.
func (s *Session) Resolve(idx *Index, ordinal int) (int64, error) {
	if idx == nil || ordinal < 0 || ordinal >= idx.Len() {
		return 0, ErrNothingSelected
	}
	if idx.generation != s.generation {
		return 0, ErrStaleIndex
	}
	return idx.Addresses[ordinal], nil
}

// Select is Enumerate, Find and Resolve in one go, for callers that hold no index.
// A name that is all digits is taken as a 1-based ordinal.
func (s *Session) Select(kind *types.RecordKind, what string) (int64, error) {
	idx, err := s.Enumerate(kind)
	if err != nil {
		return 0, err
	}
	var ordinal int
	if n, empty := utils.Limit(what, idx.Len()+1); !empty && utils.Digits(what) == what {
		ordinal = n - 1
	} else {
		ordinal, err = idx.Find(what)
		if err != nil {
			return 0, err
		}
	}
	return s.Resolve(idx, ordinal)
}
