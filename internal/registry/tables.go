// Package registry holds the process-wide, immutable parameter tables the
// specification calls the parameter registry (component I): covalent and
// van-der-Waals radii, partial charges, per-element bond-length anchors,
// per-residue rotatable-bond topology, per-residue hydrogen-name maps, and
// the force-field coefficient bundle consumed by package potential.
//
// Every computation in this module takes a *Tables value as an explicit
// argument; there are no package-level mutable globals to avoid hidden
// coupling between sweeps running concurrently (see package sampler).
package registry

// ChiBond names the four atoms (within a residue) defining one rotatable
// bond: rotation happens about the b-c axis; atoms downstream of c (per the
// residue's connectivity) move with the angle, atoms upstream of b stay
// fixed.
type ChiBond struct {
	Name    string // e.g. "chi1", "chi2"
	A, B, C, D string
}

// CovalentRadii holds the three hybridization-indexed covalent radii (sp3,
// sp2, sp) for one element, in Angstroms.
type CovalentRadii struct {
	SP3, SP2, SP float64
}

// ForceFieldCoefficients bundles the tunable constants behind package
// potential's formulas, with the defaults documented in the specification.
type ForceFieldCoefficients struct {
	LJEpsilon    float64 // Lennard-Jones well depth epsilon, kcal/mol (sampler.Sweep also uses it as the torsion barrier V)
	HBondEpsilon float64 // H-bond energy scale, kcal/mol (epsilon_H)
	RSigma       float64 // default vdW radius fallback, Angstrom
	CoulombK     float64 // Coulomb constant, kcal*Angstrom/(mol*e^2)
	SoftSphereN  float64 // soft-sphere exponent n, default 12
	TorsionPhase float64 // torsion periodicity n passed to ClassicalTorsion (see design notes: phase=3 regardless of hybridization)

	CutoffAtom    float64 // atom-atom distance cutoff for sampler scoring
	CutoffResidue float64 // residue-residue cutoff (reserved for multi-residue sweeps)
	CutoffStart   float64 // composite potential taper start, as a multiple of sigma (c_s)
	CutoffEnd     float64 // composite potential taper end, as a multiple of sigma (c_e)

	LengthError float64 // bond-length tolerance epsilon used by the neighbor/bond builder, Angstrom
}

// Tables is the full, immutable parameter registry. Construct one with
// DefaultTables or LoadTables; never mutate a *Tables shared across
// goroutines.
type Tables struct {
	CovalentRadius map[string]CovalentRadii
	VdWRadius      map[string]float64
	PartialCharge  map[string]float64

	// BondLengths maps an element to the candidate covalent bond lengths
	// it can form with any partner. The bond builder tests the observed
	// distance against each length in either atom's list; it does not form
	// pairwise combinations of the two lists.
	BondLengths map[string][]float64

	// RotatableBonds maps a residue component id (e.g. "SER") to its
	// ordered chi-bond list.
	RotatableBonds map[string][]ChiBond

	// HydrogenNames maps a residue component id to a map from heavy-atom
	// name to the hydrogen names attached to it.
	HydrogenNames map[string]map[string][]string

	ForceField ForceFieldCoefficients
}

// CovalentRadiusFor returns the covalent radius of element for the given
// hybridization, or (0, false) if element is not in the table.
func (t *Tables) CovalentRadiusFor(element string, h int) (float64, bool) {
	r, ok := t.CovalentRadius[element]
	if !ok {
		return 0, false
	}
	switch h {
	case 2: // sp3
		return r.SP3, true
	case 1: // sp2
		return r.SP2, true
	case 0: // sp
		return r.SP, true
	default:
		return r.SP3, true
	}
}

// VdW returns the van der Waals radius of element, or (0, false) if
// element is not in the table.
func (t *Tables) VdW(element string) (float64, bool) {
	r, ok := t.VdWRadius[element]
	return r, ok
}

// Charge returns the partial charge of element, or (0, false) if element
// is not in the table.
func (t *Tables) Charge(element string) (float64, bool) {
	q, ok := t.PartialCharge[element]
	return q, ok
}

// ChiBonds returns the rotatable-bond topology for residue compID, or nil
// if compID is unknown (the UnknownResidue case, per the error-handling
// design -- callers treat a nil/empty result as "zero rotamers").
func (t *Tables) ChiBonds(compID string) []ChiBond {
	return t.RotatableBonds[compID]
}

// HydrogenNamesFor returns the hydrogen atom names attached to heavyAtom
// within residue compID, or nil if unknown.
func (t *Tables) HydrogenNamesFor(compID, heavyAtom string) []string {
	byAtom, ok := t.HydrogenNames[compID]
	if !ok {
		return nil
	}
	return byAtom[heavyAtom]
}
