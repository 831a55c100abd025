// Package testutil builds small in-memory atomstore.Store fixtures for
// tests across this module. It stands in for the real mmCIF-style parser,
// which is out of scope for this module (see SPEC_FULL.md SS1): nothing
// outside of _test.go files may import this package.
package testutil

import "github.com/asymmetrica/rotaforge/internal/atomstore"

// AtomSpec is the minimal description of one atom a test needs: a name,
// element, residue membership, and position. BuildAtoms assigns
// sequential ids and wires the bonds given in Bonds.
type AtomSpec struct {
	Name     string
	Element  string
	CompID   string
	SeqID    int
	Chain    string
	EntityID string
	AltID    string
	X, Y, Z  float64
}

// BuildAtoms inserts one atomstore.Atom per spec into a fresh store, in
// order, assigning ids 1..len(specs). bonds lists pairs of indices (into
// specs, 0-based) to connect symmetrically after insertion.
func BuildAtoms(specs []AtomSpec, bonds [][2]int) *atomstore.Store {
	store := atomstore.New()
	atoms := make([]*atomstore.Atom, len(specs))

	for i, s := range specs {
		entityID := s.EntityID
		if entityID == "" {
			entityID = "1"
		}
		altID := s.AltID
		if altID == "" {
			altID = "."
		}
		a := &atomstore.Atom{
			ID:       i + 1,
			GroupPDB: "ATOM",
			Element:  s.Element,
			CompID:   s.CompID,
			SeqID:    s.SeqID,
			Chain:    s.Chain,
			EntityID: entityID,
			AltID:    altID,
			Name:     s.Name,
			X:        s.X,
			Y:        s.Y,
			Z:        s.Z,
		}
		atoms[i] = a
		store.Insert(a)
	}

	for _, b := range bonds {
		atoms[b[0]].AddConnection(atoms[b[1]].ID)
		atoms[b[1]].AddConnection(atoms[b[0]].ID)
	}

	return store
}
