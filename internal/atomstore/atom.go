// Package atomstore is the in-memory, columnar-like representation of a
// parsed structure: a map from atom id to atom record, plus the selection
// and residue-grouping operations every downstream component (neighbor
// search, rotamer model, sampler) reads from.
//
// BIOCHEMIST: field names mirror the PDBx/mmCIF columns documented in the
// specification's external-interface section (group_PDB, label_atom_id,
// label_comp_id, ...); this package is the parser's landing zone, not the
// parser itself.
package atomstore

import "github.com/asymmetrica/rotaforge/internal/geometry"

// Hybridization classifies a heavy atom's bonding geometry.
type Hybridization int

const (
	// HybridUnknown means hybridization has not yet been inferred.
	HybridUnknown Hybridization = iota
	HybridSP
	HybridSP2
	HybridSP3
)

func (h Hybridization) String() string {
	switch h {
	case HybridSP:
		return "sp"
	case HybridSP2:
		return "sp2"
	case HybridSP3:
		return "sp3"
	default:
		return "unknown"
	}
}

// SelectionState tags an atom's role in a sweep: the side chain being
// sampled (Target), the fixed environment it is scored against
// (Surrounding), or neither (Ignored).
type SelectionState int

const (
	Ignored SelectionState = iota
	Target
	Surrounding
)

func (s SelectionState) String() string {
	switch s {
	case Target:
		return "T"
	case Surrounding:
		return "S"
	default:
		return "I"
	}
}

// ResidueKey uniquely identifies a residue instance, including alternate
// locations: (seq_id, chain, entity_id, alt_id).
type ResidueKey struct {
	SeqID    int
	Chain    string
	EntityID string
	AltID    string
}

// Atom is a single atom record, either parsed from the input structure or
// synthesized by the sampler as a pseudo-atom.
type Atom struct {
	ID       int
	GroupPDB string // "ATOM" or "HETATM"
	Element  string
	CompID   string // residue component id, e.g. "SER"
	SeqID    int
	Chain    string
	EntityID string
	AltID    string // "." when absent
	ModelNum int

	X, Y, Z float64

	Name string // label_atom_id, e.g. "CA", "CB", "CG", "HG1"

	// Computed fields, filled in by the neighbor grid / bond builder and
	// the hybridization pass. Nil/zero until those components run.
	Connections     map[int]struct{}
	Hybridization   Hybridization
	SelectionGroup  string
	SelectionState  SelectionState

	// Pseudo-atom-only fields, set only by the sampler.
	IsPseudo       bool
	DihedralAngles map[string]float64
	RotamerEnergy  float64
	RotamerRank    int
}

// ResidueKey returns the residue identity of the atom.
func (a *Atom) ResidueKey() ResidueKey {
	return ResidueKey{SeqID: a.SeqID, Chain: a.Chain, EntityID: a.EntityID, AltID: a.AltID}
}

// AddConnection records, on a only, a covalent bond between a and the atom
// with id other. Callers are expected to call this on both endpoints (the
// bond builder does so) to preserve the symmetry invariant
// (j in connections[i] <=> i in connections[j]).
func (a *Atom) AddConnection(other int) {
	if a.Connections == nil {
		a.Connections = make(map[int]struct{})
	}
	a.Connections[other] = struct{}{}
}

// IsConnectedTo reports whether other is a direct neighbor of a.
func (a *Atom) IsConnectedTo(other int) bool {
	if a.Connections == nil {
		return false
	}
	_, ok := a.Connections[other]
	return ok
}

// Position returns the atom's coordinates as a geometry.Vector3.
func (a *Atom) Position() geometry.Vector3 {
	return geometry.Vector3{X: a.X, Y: a.Y, Z: a.Z}
}

// DistanceOf returns the Euclidean distance between two atoms' positions.
func DistanceOf(a, b *Atom) float64 {
	return geometry.Distance(a.Position(), b.Position())
}
