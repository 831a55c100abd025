package sampler

import (
	"github.com/asymmetrica/rotaforge/internal/atomstore"
	"github.com/asymmetrica/rotaforge/internal/hybrid"
	"github.com/asymmetrica/rotaforge/internal/neighbor"
	"github.com/asymmetrica/rotaforge/internal/registry"
)

// Prepare runs the structure-wide preprocessing Sweep and SweepMany assume
// has already happened: inferring the covalent bond graph (package
// neighbor), synthesizing any hydrogens the parameter registry says a heavy
// atom should carry, and assigning each atom's hybridization from its
// finished bond graph (package hybrid) -- in that order: bonds, then
// hydrogens, then hybridization, run once over the whole loaded structure
// rather than per residue. It returns Infer's warnings.
//
// PlaceHydrogens and Infer are both idempotent (PlaceHydrogens skips a
// heavy atom that already carries its full hydrogen complement; Infer just
// recomputes the same deterministic classification), so calling Prepare
// again after the store gains more atoms is safe. Prepare itself is not
// safe to call concurrently with itself or with an in-flight sweep, since
// it mutates the shared store; SweepMany calls it once, serially, before
// fanning its sweeps out.
func Prepare(store *atomstore.Store, tables *registry.Tables) []error {
	neighbor.BuildBonds(store.All(), tables)
	hybrid.PlaceHydrogens(store, tables)
	return hybrid.Infer(store.All())
}
