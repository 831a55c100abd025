package sampler

import "sort"

// AngleGrid maps a chi angle name to the ordered set of candidate values
// (radians) the sweep should try for it.
type AngleGrid map[string][]float64

// Combination is one point in the Cartesian product of an AngleGrid: a
// complete assignment of every chi name to one candidate value.
type Combination map[string]float64

// chiOrder returns the grid's chi names in a fixed, sorted order so that
// every combination, and the enumeration itself, is deterministic
// regardless of map iteration order.
func (g AngleGrid) chiOrder() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Combinations enumerates the full Cartesian product of g's angle lists, in
// a deterministic order: the first chi name (alphabetically) varies
// slowest, the last varies fastest.
func (g AngleGrid) Combinations() []Combination {
	names := g.chiOrder()
	if len(names) == 0 {
		return []Combination{{}}
	}

	combos := []Combination{{}}
	for _, name := range names {
		values := g[name]
		next := make([]Combination, 0, len(combos)*len(values))
		for _, c := range combos {
			for _, v := range values {
				nc := make(Combination, len(c)+1)
				for k, existing := range c {
					nc[k] = existing
				}
				nc[name] = v
				next = append(next, nc)
			}
		}
		combos = next
	}
	return combos
}

// lexLess reports whether a sorts before b when both are compared over the
// same sorted key set: by chi name, then by value.
func lexLess(names []string, a, b Combination) bool {
	for _, name := range names {
		av, bv := a[name], b[name]
		if av != bv {
			return av < bv
		}
	}
	return false
}
