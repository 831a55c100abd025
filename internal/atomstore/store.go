package atomstore

import "sort"

// Store is the in-memory atom-id -> record map described by the
// specification's data model. It has no notion of deletion: atoms are only
// ever inserted (by the parser, or by hybrid.PlaceHydrogens adding
// hydrogens) and looked up. The sampler's pseudo-atoms are never inserted.
type Store struct {
	atoms map[int]*Atom
}

// New returns an empty Store.
func New() *Store {
	return &Store{atoms: make(map[int]*Atom)}
}

// Insert adds or replaces the atom record keyed by its ID.
func (s *Store) Insert(a *Atom) {
	s.atoms[a.ID] = a
}

// Lookup returns the atom with the given id, or nil if absent.
func (s *Store) Lookup(id int) *Atom {
	return s.atoms[id]
}

// Len returns the number of atoms currently stored.
func (s *Store) Len() int {
	return len(s.atoms)
}

// NextID returns max(existing_id)+1, or 1 for an empty store. The sampler
// uses this to mint pseudo-atom ids that never collide with existing ones.
func (s *Store) NextID() int {
	max := 0
	for id := range s.atoms {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// All returns every atom in the store, sorted ascending by id. Ascending
// atom-id order is the deterministic iteration order the filter and
// projection operations (and, transitively, the sampler's order of
// summing over surrounding atoms) rely on.
func (s *Store) All() []*Atom {
	out := make([]*Atom, 0, len(s.atoms))
	for _, a := range s.atoms {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FilterByResidue returns every atom whose ResidueKey matches key, in
// ascending atom-id order.
func (s *Store) FilterByResidue(key ResidueKey) []*Atom {
	var out []*Atom
	for _, a := range s.All() {
		if a.ResidueKey() == key {
			out = append(out, a)
		}
	}
	return out
}

// MarkSelection tags every atom whose id appears in targetIDs as Target and
// every atom whose id appears in surroundingIDs as Surrounding; all other
// atoms are left at (or reset to) Ignored. An id present in both lists is
// tagged Target, since the sweep's own side chain always takes priority
// over any accidental overlap with the surrounding set.
func (s *Store) MarkSelection(targetIDs, surroundingIDs []int) {
	for _, a := range s.atoms {
		a.SelectionState = Ignored
	}
	for _, id := range surroundingIDs {
		if a := s.atoms[id]; a != nil {
			a.SelectionState = Surrounding
		}
	}
	for _, id := range targetIDs {
		if a := s.atoms[id]; a != nil {
			a.SelectionState = Target
		}
	}
}
