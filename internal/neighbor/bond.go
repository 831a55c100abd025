package neighbor

import (
	"math"

	"github.com/asymmetrica/rotaforge/internal/atomstore"
	"github.com/asymmetrica/rotaforge/internal/registry"
)

// maxCellSize returns the largest candidate bond length across every
// element in tables. BuildBonds sizes the spatial hash to this plus
// ForceField.LengthError, so no true bond partner falls outside the 3x3x3
// neighbor search.
func maxCellSize(tables *registry.Tables) float64 {
	max := 0.0
	for _, lengths := range tables.BondLengths {
		for _, l := range lengths {
			if l > max {
				max = l
			}
		}
	}
	if max == 0 {
		return 2.0
	}
	return max
}

// candidateBond reports whether a and b's elements admit a bond of the
// observed distance dist, within tables.ForceField.LengthError of some
// length either element's table lists. Each list is scanned on its own; no
// pairwise combination of the two lists is formed. An atom whose element
// has no BondLengths entry forms no bonds.
func candidateBond(a, b *atomstore.Atom, dist float64, tables *registry.Tables) bool {
	if _, ok := tables.BondLengths[a.Element]; !ok {
		return false
	}
	if _, ok := tables.BondLengths[b.Element]; !ok {
		return false
	}
	eps := tables.ForceField.LengthError
	check := func(elem string) bool {
		for _, l := range tables.BondLengths[elem] {
			if math.Abs(dist-l) <= eps {
				return true
			}
		}
		return false
	}
	return check(a.Element) || check(b.Element)
}

// BuildBonds infers the covalent bond graph over every atom in atoms,
// using a spatial hash to limit candidate pairs, and records each
// confirmed bond symmetrically on both endpoints via AddConnection. It
// returns the number of bonds created.
func BuildBonds(atoms []*atomstore.Atom, tables *registry.Tables) int {
	sh := Build(atoms, maxCellSize(tables)+tables.ForceField.LengthError)
	count := 0
	seen := make(map[[2]int]struct{})

	for _, a := range atoms {
		for _, b := range sh.Neighbors(a) {
			lo, hi := a.ID, b.ID
			if lo > hi {
				lo, hi = hi, lo
			}
			key := [2]int{lo, hi}
			if _, dup := seen[key]; dup {
				continue
			}

			dist := atomstore.DistanceOf(a, b)
			if candidateBond(a, b, dist, tables) {
				a.AddConnection(b.ID)
				b.AddConnection(a.ID)
				count++
			}
			seen[key] = struct{}{}
		}
	}
	return count
}

// BruteForceBonds is the O(n^2) reference implementation of BuildBonds,
// used by tests to confirm the spatial hash never drops a true bond.
func BruteForceBonds(atoms []*atomstore.Atom, tables *registry.Tables) int {
	count := 0
	for i := 0; i < len(atoms); i++ {
		for j := i + 1; j < len(atoms); j++ {
			a, b := atoms[i], atoms[j]
			dist := atomstore.DistanceOf(a, b)
			if candidateBond(a, b, dist, tables) {
				a.AddConnection(b.ID)
				b.AddConnection(a.ID)
				count++
			}
		}
	}
	return count
}
