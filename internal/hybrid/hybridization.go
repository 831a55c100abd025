// Package hybrid infers each heavy atom's hybridization state from its
// bonded-neighbor count and identity, then places generalized hydrogens
// (donor angle and bisector geometry) the same way the spatial model
// reasons about any heavy-atom/hydrogen pair, not just backbone N-H and
// C-alpha-H.
package hybrid

import (
	"github.com/asymmetrica/rotaforge/internal/atomstore"
	"github.com/asymmetrica/rotaforge/internal/rerr"
)

// Infer assigns a.Hybridization for every atom in atoms, based on the
// element and the number of covalent connections recorded by package
// neighbor. Atoms with zero connections (isolated, e.g. a lone ion) are
// left at HybridUnknown and reported via a ParameterError so the caller
// can log it, rather than silently mis-modeling their geometry.
func Infer(atoms []*atomstore.Atom) []error {
	var warnings []error
	for _, a := range atoms {
		h, ok := inferOne(a)
		if !ok {
			warnings = append(warnings, &rerr.ParameterError{
				Parameter: "hybridization",
				Detail:    "atom " + a.Name + " has no bonded neighbors to infer from",
			})
			continue
		}
		a.Hybridization = h
	}
	return warnings
}

func inferOne(a *atomstore.Atom) (atomstore.Hybridization, bool) {
	degree := len(a.Connections)
	if degree == 0 {
		return atomstore.HybridUnknown, false
	}

	switch a.Element {
	case "H":
		// Hydrogen always forms exactly one covalent bond; its
		// "hybridization" is not meaningful, report sp3 as a neutral default
		// since nothing downstream keys geometry off a hydrogen's own state.
		return atomstore.HybridSP3, true
	case "C":
		switch degree {
		case 4:
			return atomstore.HybridSP3, true
		case 3:
			return atomstore.HybridSP2, true
		default:
			return atomstore.HybridSP, true
		}
	case "N":
		switch degree {
		case 3:
			return atomstore.HybridSP3, true
		case 2:
			return atomstore.HybridSP2, true
		default:
			return atomstore.HybridSP, true
		}
	case "O":
		switch degree {
		case 2:
			return atomstore.HybridSP3, true
		case 1:
			return atomstore.HybridSP2, true
		default:
			return atomstore.HybridSP3, true
		}
	case "S":
		switch degree {
		case 2:
			return atomstore.HybridSP3, true
		default:
			return atomstore.HybridSP2, true
		}
	default:
		return atomstore.HybridSP3, true
	}
}
