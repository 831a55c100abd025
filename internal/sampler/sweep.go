// Package sampler implements the dihedral-sweep rotamer search: for one
// residue, it walks the Cartesian product of candidate chi angle values,
// scores each resulting conformation against the fixed surrounding atoms
// with a pluggable potential, and ranks the results deterministically.
package sampler

import (
	"context"
	"sort"

	"github.com/asymmetrica/rotaforge/internal/atomstore"
	"github.com/asymmetrica/rotaforge/internal/diag"
	"github.com/asymmetrica/rotaforge/internal/geometry"
	"github.com/asymmetrica/rotaforge/internal/potential"
	"github.com/asymmetrica/rotaforge/internal/registry"
	"github.com/asymmetrica/rotaforge/internal/rerr"
	"github.com/asymmetrica/rotaforge/internal/rotamer"

	"golang.org/x/sync/errgroup"
)

// DefaultGrid builds the classical 3-well staggered-rotamer grid (0, 120,
// 240 degrees, in radians) for every chi bond the registry lists for
// compID. Callers needing a finer or coarser sweep build their own
// AngleGrid instead of calling this.
func DefaultGrid(tables *registry.Tables, compID string) AngleGrid {
	const deg = 3.14159265358979323846 / 180
	values := []float64{0, 120 * deg, 240 * deg}

	grid := make(AngleGrid)
	for _, cb := range tables.ChiBonds(compID) {
		grid[cb.Name] = append([]float64(nil), values...)
	}
	return grid
}

// SweepConfig parameterizes one residue's sweep.
type SweepConfig struct {
	Grid      AngleGrid
	Potential potential.Potential
	Cutoff    float64 // atom-atom distance cutoff for scoring; 0 uses tables.ForceField.CutoffAtom
	TopRank   int     // keep only the TopRank lowest-energy conformers; 0 (default) keeps all
	Logger    diag.Logger
}

// RankedConformer is one scored point in the sweep, in final rank order
// (Rank 1 is the lowest-energy conformer found, matching the
// specification's 1-indexed rotamer_rank).
type RankedConformer struct {
	Rank      int
	Energy    float64
	Chi       Combination
	Positions map[string]atomPosition
}

type atomPosition struct {
	X, Y, Z float64
}

// Result is the outcome of sweeping one residue.
type Result struct {
	ResidueKey atomstore.ResidueKey
	CompID     string
	Conformers []RankedConformer // sorted ascending by energy, rank 1 first
}

// Sweep walks every candidate conformation of the residue identified by
// key and returns them ranked by energy. If the residue's component id has
// no rotatable-bond entry in tables, Sweep logs a "residue has no
// rotatable bonds" warning through cfg.Logger and returns an empty Result
// with a nil error; no *rerr.UnknownResidue value is created.
//
// Sweep assumes the store has already been through Prepare (or an
// equivalent bond-graph/hydrogen/hybridization pass) -- it reads the bond
// graph via the compiled rotamer.Model but does not build one itself.
//
// Sweep checks ctx for cancellation before scoring each combination, so a
// caller running many residues concurrently (see SweepMany) can abort the
// whole batch promptly.
func Sweep(ctx context.Context, store *atomstore.Store, tables *registry.Tables, key atomstore.ResidueKey, cfg SweepConfig) (Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = diag.NewNop()
	}

	residueAtoms := store.FilterByResidue(key)
	if len(residueAtoms) == 0 {
		return Result{ResidueKey: key}, &rerr.GeometryDegenerate{
			Op:     "sampler.Sweep",
			Detail: "no atoms found for residue",
		}
	}
	compID := residueAtoms[0].CompID

	chiBonds := tables.ChiBonds(compID)
	if len(chiBonds) == 0 {
		logger.Warn("residue has no rotatable bonds", diag.String("comp_id", compID))
		return Result{ResidueKey: key, CompID: compID}, nil
	}

	model, err := rotamer.Compile(residueAtoms, chiBonds)
	if err != nil {
		return Result{ResidueKey: key, CompID: compID}, err
	}

	byName := make(map[string]*atomstore.Atom, len(residueAtoms))
	for _, a := range residueAtoms {
		byName[a.Name] = a
	}

	// The grid's angle values are absolute chi_user targets (spec.md SS4.G
	// step 2): rebase each one against the residue's own observed current
	// chi so a grid value equal to the current chi (delta=0) reproduces the
	// input coordinates exactly, and a chi
	// bond the grid omits implicitly keeps its current value (delta=0,
	// since expr.Variable defaults a missing key to 0).
	currentChi := make(map[string]float64, len(chiBonds))
	for _, cb := range chiBonds {
		a, okA := byName[cb.A]
		b, okB := byName[cb.B]
		c, okC := byName[cb.C]
		d, okD := byName[cb.D]
		if okA && okB && okC && okD {
			currentChi[cb.Name] = geometry.DihedralAngle(a.Position(), b.Position(), c.Position(), d.Position())
		}
	}

	grid := cfg.Grid
	if len(grid) == 0 {
		grid = DefaultGrid(tables, compID)
	}
	combos := grid.Combinations()
	names := grid.chiOrder()

	cutoff := cfg.Cutoff
	if cutoff <= 0 {
		cutoff = tables.ForceField.CutoffAtom
	}
	pot := cfg.Potential
	if pot == nil {
		pot = potential.Composite
	}
	torsionParams := potential.TorsionParams{
		V:     tables.ForceField.LJEpsilon,
		N:     tables.ForceField.TorsionPhase,
		Gamma: 0,
	}

	surrounding := collectSurrounding(store)

	var movable []string
	for _, a := range residueAtoms {
		if len(model.AffectingChi(a.Name)) > 0 {
			movable = append(movable, a.Name)
		}
	}

	conformers := make([]RankedConformer, 0, len(combos))
	for _, combo := range combos {
		select {
		case <-ctx.Done():
			return Result{ResidueKey: key, CompID: compID}, ctx.Err()
		default:
		}

		delta := make(map[string]float64, len(combo))
		for name, v := range combo {
			delta[name] = v - currentChi[name]
		}

		// repByID lets a potential reach beyond the pair it scores (HBond's
		// angular gate needs the donor's bonded heavy atom): every residue
		// and surrounding atom resolves to itself, except the atoms this
		// combination moves, which resolve to their minted pseudo-atom.
		repByID := make(map[int]*atomstore.Atom, len(residueAtoms)+len(surrounding))
		for _, a := range residueAtoms {
			repByID[a.ID] = a
		}
		for _, a := range surrounding {
			repByID[a.ID] = a
		}

		positions := make(map[string]atomPosition, len(movable))
		cands := make(map[string]*atomstore.Atom, len(movable))
		for _, name := range movable {
			pos, ok := model.Apply(name, delta)
			if !ok {
				continue
			}
			positions[name] = atomPosition{X: pos.X, Y: pos.Y, Z: pos.Z}

			orig := byName[name]
			cand := &atomstore.Atom{
				ID:          store.NextID(),
				Element:     orig.Element,
				X:           pos.X,
				Y:           pos.Y,
				Z:           pos.Z,
				IsPseudo:    true,
				Connections: orig.Connections,
			}
			cands[name] = cand
			repByID[orig.ID] = cand
		}
		resolve := potential.Resolve(func(id int) *atomstore.Atom { return repByID[id] })

		energy := 0.0
		for _, name := range movable {
			cand := cands[name]
			if cand == nil {
				continue
			}
			for _, s := range surrounding {
				if atomstore.DistanceOf(cand, s) > cutoff {
					continue
				}
				energy += pot(cand, s, tables, resolve)
			}
		}
		for _, omega := range combo {
			energy += potential.ClassicalTorsion(omega, torsionParams)
		}

		conformers = append(conformers, RankedConformer{
			Energy:    energy,
			Chi:       combo,
			Positions: positions,
		})
	}

	sort.SliceStable(conformers, func(i, j int) bool {
		if conformers[i].Energy != conformers[j].Energy {
			return conformers[i].Energy < conformers[j].Energy
		}
		return lexLess(names, conformers[i].Chi, conformers[j].Chi)
	})
	for i := range conformers {
		conformers[i].Rank = i + 1
	}
	if cfg.TopRank > 0 && len(conformers) > cfg.TopRank {
		conformers = conformers[:cfg.TopRank]
	}

	applyWinner(residueAtoms, model, conformers)

	return Result{ResidueKey: key, CompID: compID, Conformers: conformers}, nil
}

func collectSurrounding(store *atomstore.Store) []*atomstore.Atom {
	var out []*atomstore.Atom
	for _, a := range store.All() {
		if a.SelectionState == atomstore.Surrounding {
			out = append(out, a)
		}
	}
	return out
}

// applyWinner writes the lowest-energy conformer's positions and metadata
// back onto the real atoms in the store.
func applyWinner(residueAtoms []*atomstore.Atom, model *rotamer.Model, conformers []RankedConformer) {
	if len(conformers) == 0 {
		return
	}
	best := conformers[0]
	for _, a := range residueAtoms {
		pos, ok := best.Positions[a.Name]
		if !ok {
			continue
		}
		a.X, a.Y, a.Z = pos.X, pos.Y, pos.Z
		if a.DihedralAngles == nil {
			a.DihedralAngles = make(map[string]float64)
		}
		for chi, val := range best.Chi {
			a.DihedralAngles[chi] = val
		}
		a.RotamerEnergy = best.Energy
		a.RotamerRank = best.Rank
	}
}

// SweepMany prepares the store (see Prepare), logs each warning Prepare
// returns through cfg.Logger, and then runs Sweep
// concurrently over every key in keys, bounded by concurrency (a value <= 0
// means "let errgroup pick an unbounded number of goroutines", matching
// errgroup.Group's default). It stops launching new sweeps and returns the
// first error (including ctx cancellation) any sweep reports, per
// errgroup.WithContext semantics.
func SweepMany(ctx context.Context, store *atomstore.Store, tables *registry.Tables, keys []atomstore.ResidueKey, cfg SweepConfig, concurrency int) ([]Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = diag.NewNop()
	}
	for _, w := range Prepare(store, tables) {
		logger.Warn("preparation warning", diag.Err(w))
	}

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	results := make([]Result, len(keys))
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			res, err := Sweep(gctx, store, tables, key, cfg)
			results[i] = res
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
