package atomstore

import "strconv"

// attribute returns the string representation of the named atom field, and
// whether that name is recognized. Supported names cover the fields a
// caller is expected to filter or project on; unrecognized names never
// match (an include clause referencing one fails every atom, an exclude
// clause referencing one excludes none).
func attribute(a *Atom, name string) (string, bool) {
	switch name {
	case "element":
		return a.Element, true
	case "comp_id":
		return a.CompID, true
	case "chain":
		return a.Chain, true
	case "entity_id":
		return a.EntityID, true
	case "alt_id":
		return a.AltID, true
	case "name":
		return a.Name, true
	case "group_pdb":
		return a.GroupPDB, true
	case "hybridization":
		return a.Hybridization.String(), true
	case "selection_state":
		return a.SelectionState.String(), true
	case "selection_group":
		return a.SelectionGroup, true
	case "seq_id":
		return strconv.Itoa(a.SeqID), true
	case "model_num":
		return strconv.Itoa(a.ModelNum), true
	case "is_pseudo":
		return strconv.FormatBool(a.IsPseudo), true
	default:
		return "", false
	}
}

// FilterSpec describes an atom filter: include and exclude are attribute
// name -> allowed-values maps. An atom passes include iff every listed
// attribute's value is in its allowed set; it passes exclude iff no listed
// attribute matches (i.e. it is excluded as soon as one does).
type FilterSpec struct {
	Include map[string][]string
	Exclude map[string][]string
}

func matchesAny(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}

func passesInclude(a *Atom, include map[string][]string) bool {
	for attr, allowed := range include {
		value, ok := attribute(a, attr)
		if !ok || !matchesAny(value, allowed) {
			return false
		}
	}
	return true
}

func passesExclude(a *Atom, exclude map[string][]string) bool {
	for attr, disallowed := range exclude {
		value, ok := attribute(a, attr)
		if ok && matchesAny(value, disallowed) {
			return false
		}
	}
	return true
}

// Filter returns every atom passing spec's include/exclude predicates, in
// ascending atom-id order.
func (s *Store) Filter(spec FilterSpec) []*Atom {
	var out []*Atom
	for _, a := range s.All() {
		if passesInclude(a, spec.Include) && passesExclude(a, spec.Exclude) {
			out = append(out, a)
		}
	}
	return out
}

// Project returns, for each atom passing spec's predicates, the tuple of
// requested attribute values in the order given by attrs. Atoms are visited
// in ascending atom-id order, matching Filter and FilterByResidue.
func (s *Store) Project(spec FilterSpec, attrs []string) [][]string {
	matched := s.Filter(spec)
	out := make([][]string, 0, len(matched))
	for _, a := range matched {
		row := make([]string, len(attrs))
		for i, attr := range attrs {
			value, _ := attribute(a, attr)
			row[i] = value
		}
		out = append(out, row)
	}
	return out
}
