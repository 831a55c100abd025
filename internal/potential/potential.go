// Package potential implements the pairwise and torsional energy functions
// the dihedral sampler (package sampler) scores each candidate rotamer
// against: hard- and soft-sphere clash terms, a Lennard-Jones 12-6
// van der Waals term, Coulomb electrostatics, a hydrogen-bond term, a
// torsional preference term, and a composite that cosine-tapers between
// them. Every potential shares the same signature so the sampler can treat
// them interchangeably.
package potential

import (
	"math"

	"github.com/asymmetrica/rotaforge/internal/atomstore"
	"github.com/asymmetrica/rotaforge/internal/geometry"
	"github.com/asymmetrica/rotaforge/internal/registry"
)

// Resolve looks up the current representative of an atom id -- its moved
// pseudo-atom if the sweep's current combination displaces it, otherwise
// its static record -- so an angle-dependent term can reach a third atom
// beyond the pair it is scoring. A nil Resolve means no such context is
// available; angle-dependent terms fall back to their distance-only form.
type Resolve func(id int) *atomstore.Atom

// Potential scores the pairwise interaction between atoms i and j, given
// the active parameter registry and a Resolve for reaching bonded atoms
// beyond the pair (used by HBond's angular gate). Distance and any
// two-body geometry come from i and j's own coordinates; resolve is nil
// wherever that broader context isn't available or needed.
type Potential func(i, j *atomstore.Atom, tables *registry.Tables, resolve Resolve) float64

func distance(i, j *atomstore.Atom) float64 {
	return atomstore.DistanceOf(i, j)
}

func vdwSum(i, j *atomstore.Atom, tables *registry.Tables) float64 {
	ri, ok1 := tables.VdW(i.Element)
	rj, ok2 := tables.VdW(j.Element)
	if !ok1 {
		ri = tables.ForceField.RSigma
	}
	if !ok2 {
		rj = tables.ForceField.RSigma
	}
	return ri + rj
}

// HardSphere returns +Inf when i and j are closer than the sum of their
// van der Waals radii, and 0 otherwise: a binary clash detector. It is
// symmetric in i and j by construction (property 7).
func HardSphere(i, j *atomstore.Atom, tables *registry.Tables, _ Resolve) float64 {
	r := distance(i, j)
	sigma := vdwSum(i, j, tables)
	if r < sigma {
		return math.Inf(1)
	}
	return 0
}

// SoftSphere is a continuous clash penalty, (sigma/r)^n for r <= sigma
// (an energy scale ep_s of 1; there is no separate coefficient for it) and
// 0 beyond it, growing smoothly as atoms overlap instead of
// hard-cutting to infinity the way HardSphere does.
func SoftSphere(i, j *atomstore.Atom, tables *registry.Tables, _ Resolve) float64 {
	r := distance(i, j)
	sigma := vdwSum(i, j, tables)
	if r <= 0 {
		return math.Inf(1)
	}
	if r > sigma {
		return 0
	}
	n := tables.ForceField.SoftSphereN
	return math.Pow(sigma/r, n)
}

// LennardJones computes the standard 12-6 potential
// E = 4*epsilon*((sigma/r)^12 - (sigma/r)^6), with sigma the same
// vdw_i+vdw_j combination HardSphere and SoftSphere use. At r = sigma,
// E is exactly 0 (property 5).
func LennardJones(i, j *atomstore.Atom, tables *registry.Tables, _ Resolve) float64 {
	r := distance(i, j)
	if r <= 0 {
		return math.Inf(1)
	}
	sigma := vdwSum(i, j, tables)
	epsilon := tables.ForceField.LJEpsilon
	ratio := sigma / r
	r6 := math.Pow(ratio, 6)
	r12 := r6 * r6
	return 4 * epsilon * (r12 - r6)
}

// Coulomb computes electrostatic energy as k_c*q_i*q_j/r^2 (the inverse
// square form the specification calls for, rather than the more familiar
// inverse-r Coulomb law) with Coulomb's constant from the force-field
// table and a unit (vacuum) dielectric.
func Coulomb(i, j *atomstore.Atom, tables *registry.Tables, _ Resolve) float64 {
	r := distance(i, j)
	if r <= 0 {
		return math.Inf(1)
	}
	qi, _ := tables.Charge(i.Element)
	qj, _ := tables.Charge(j.Element)
	return tables.ForceField.CoulombK * qi * qj / (r * r)
}

// isDonorAcceptorPair reports whether (i, j) looks like a hydrogen-bond
// donor/acceptor pair: one side is a hydrogen (any H; what it is bonded to
// is not checked), the other an electronegative acceptor (N, O, or S).
func isDonorAcceptorPair(i, j *atomstore.Atom) (donorH, acceptor *atomstore.Atom, ok bool) {
	isAcceptor := func(a *atomstore.Atom) bool {
		return a.Element == "N" || a.Element == "O" || a.Element == "S"
	}
	if i.Element == "H" && isAcceptor(j) {
		return i, j, true
	}
	if j.Element == "H" && isAcceptor(i) {
		return j, i, true
	}
	return nil, nil, false
}

// donorParent returns donorH's bonded heavy atom -- the "donor" proper in
// the donor-H...acceptor geometry -- resolved through resolve so a moved
// pseudo-atom's current position is used when the sweep has displaced it.
// Returns nil if donorH has no recorded connections or resolve is nil.
func donorParent(donorH *atomstore.Atom, resolve Resolve) *atomstore.Atom {
	if resolve == nil {
		return nil
	}
	for id := range donorH.Connections {
		if parent := resolve(id); parent != nil {
			return parent
		}
	}
	return nil
}

// HBond scores a hydrogen-bond-like interaction between a polar hydrogen
// and an acceptor heavy atom as
//
//	E_HB = eps_H * (5*(r0/r)^12 - 6*(r0/r)^10) * cos(theta)
//
// where theta = angle(acceptor, donorH, donor), restricted to
// theta in [pi/2, 3pi/2] (score 0 outside that window); non donor/acceptor
// pairs score 0. When resolve is nil or the donor's parent heavy atom
// can't be found (e.g. a pseudo-atom minted without its connections), the
// angular gate can't be evaluated at all, so the term degrades to its
// distance-only magnitude rather than guessing an angle.
//
// The window is mirrored exactly as specified even though, for the
// bond-angle convention used here (theta in [0,pi]), cos(theta) <= 0
// throughout -- see DESIGN.md's open-question note on this formula's
// apparently inverted sign convention, which is carried over rather than
// silently "fixed".
func HBond(i, j *atomstore.Atom, tables *registry.Tables, resolve Resolve) float64 {
	donorH, acceptor, ok := isDonorAcceptorPair(i, j)
	if !ok {
		return 0
	}
	r := atomstore.DistanceOf(donorH, acceptor)
	if r <= 0 {
		return math.Inf(-1)
	}
	ideal := 1.8 // Angstrom, typical H...acceptor distance
	ratio := ideal / r
	r10 := math.Pow(ratio, 10)
	r12 := math.Pow(ratio, 12)
	// 5x^12 - 6x^10 has its minimum value -1 at x=1 (r=ideal), so this
	// form is already an attractive well at the target distance without
	// an extra sign flip.
	magnitude := tables.ForceField.HBondEpsilon * (5*r12 - 6*r10)

	parent := donorParent(donorH, resolve)
	if parent == nil {
		return magnitude
	}
	theta := geometry.BondAngle(acceptor.Position(), donorH.Position(), parent.Position())
	if theta < math.Pi/2 {
		return 0
	}
	return magnitude * math.Cos(theta)
}
