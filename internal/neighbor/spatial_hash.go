// Package neighbor turns a raw atom store into a covalent bond graph: a
// spatial hash narrows every atom's candidate partners to its neighboring
// grid cells (O(n) amortized instead of the O(n^2) brute-force scan), and
// the bond builder then confirms or rejects each candidate pair against the
// parameter registry's bond-length tables.
package neighbor

import (
	"math"

	"github.com/asymmetrica/rotaforge/internal/atomstore"
)

// SpatialHash buckets atoms into cubical cells of side cellSize, so that any
// two atoms closer together than cellSize are guaranteed to land in the
// same cell or a face/edge/corner-adjacent one.
type SpatialHash struct {
	cellSize float64
	grid     map[[3]int][]*atomstore.Atom
}

// NewSpatialHash builds an empty grid. cellSize should be at least the
// longest candidate bond length in the registry, so that every true bond
// partner falls within the 3x3x3 neighborhood searched by Neighbors.
func NewSpatialHash(cellSize float64) *SpatialHash {
	if cellSize <= 0 {
		cellSize = 2.0
	}
	return &SpatialHash{
		cellSize: cellSize,
		grid:     make(map[[3]int][]*atomstore.Atom),
	}
}

func (sh *SpatialHash) cellOf(a *atomstore.Atom) [3]int {
	return [3]int{
		int(math.Floor(a.X / sh.cellSize)),
		int(math.Floor(a.Y / sh.cellSize)),
		int(math.Floor(a.Z / sh.cellSize)),
	}
}

// Insert adds an atom to the grid.
func (sh *SpatialHash) Insert(a *atomstore.Atom) {
	cell := sh.cellOf(a)
	sh.grid[cell] = append(sh.grid[cell], a)
}

// Build inserts every atom in atoms; a convenience for the common case of
// hashing a whole store's contents at once.
func Build(atoms []*atomstore.Atom, cellSize float64) *SpatialHash {
	sh := NewSpatialHash(cellSize)
	for _, a := range atoms {
		sh.Insert(a)
	}
	return sh
}

// Neighbors returns every atom sharing a.'s cell or one of its 26 face,
// edge, or corner neighbors, excluding a. itself. The caller still must
// confirm exact distance: this only narrows the candidate set.
func (sh *SpatialHash) Neighbors(a *atomstore.Atom) []*atomstore.Atom {
	center := sh.cellOf(a)
	out := make([]*atomstore.Atom, 0, 27*4)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				cell := [3]int{center[0] + dx, center[1] + dy, center[2] + dz}
				for _, cand := range sh.grid[cell] {
					if cand.ID != a.ID {
						out = append(out, cand)
					}
				}
			}
		}
	}
	return out
}
