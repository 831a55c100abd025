package potential

import (
	"math"

	"github.com/asymmetrica/rotaforge/internal/atomstore"
	"github.com/asymmetrica/rotaforge/internal/registry"
)

// cosineTaper returns the specified quarter-cosine blend factor for x in
// [start, end]: 1 below start, 0 above end, and cos(pi*(x-start)/(2*(end-
// start))) between -- a quarter period running from cos(0)=1 at start to
// cos(pi/2)=0 at end. It is continuous at both ends, so a potential
// multiplied by it has no jump at the taper boundary; its first derivative
// is continuous at start (slope 0) but not at end, where the slope steps
// from -pi/(2*(end-start)) to 0.
func cosineTaper(x, start, end float64) float64 {
	switch {
	case x <= start:
		return 1
	case x >= end:
		return 0
	default:
		frac := (x - start) / (end - start)
		return math.Cos(math.Pi * frac / 2)
	}
}

// Composite blends LennardJones, Coulomb and HBond with a cosine taper that
// starts at CutoffStart*sigma and reaches zero at CutoffEnd*sigma (sigma
// being the pair's combined van der Waals radius): inside the start
// radius the full LJ+Coulomb+HBond sum applies, beyond the end radius the
// interaction is exactly zero, and between the two it ramps smoothly
// (property 6).
func Composite(i, j *atomstore.Atom, tables *registry.Tables, resolve Resolve) float64 {
	sigma := vdwSum(i, j, tables)
	r := distance(i, j)

	raw := LennardJones(i, j, tables, resolve) + Coulomb(i, j, tables, resolve) + HBond(i, j, tables, resolve)
	if math.IsInf(raw, 0) {
		return raw
	}

	taper := cosineTaper(r, tables.ForceField.CutoffStart*sigma, tables.ForceField.CutoffEnd*sigma)
	return raw * taper
}
