// Package rerr defines the distinct error kinds the specification's error
// handling design distinguishes: non-fatal parameter warnings, fatal
// geometry degeneracies, fatal configuration problems, and the
// unknown-residue case. Callers use errors.As to recover the concrete kind
// from an error returned (possibly wrapped) by any package in this module.
package rerr

import "fmt"

// ParameterError reports a non-fatal issue with a parameter lookup, such as
// a missing covalent radius for an element. Call sites log it (see package
// diag) and proceed with a fallback rather than aborting.
type ParameterError struct {
	Parameter string
	Detail    string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("parameter %q: %s", e.Parameter, e.Detail)
}

// GeometryDegenerate reports a fatal geometric degeneracy: a zero-length
// bond vector, three colinear reference-frame points, or any other
// configuration the affine-transform math cannot resolve. Operations
// encountering this abort and return the error to the caller.
type GeometryDegenerate struct {
	Op     string
	Detail string
}

func (e *GeometryDegenerate) Error() string {
	return fmt.Sprintf("degenerate geometry in %s: %s", e.Op, e.Detail)
}

// ConfigurationError reports a fatal, pre-flight problem with the
// configuration or parameter registry itself (e.g. a snapshot file that
// fails to parse), distinct from a per-atom ParameterError.
type ConfigurationError struct {
	Source string
	Detail string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error loading %s: %s", e.Source, e.Detail)
}

// UnknownResidue reports that a residue component id has no entry in the
// parameter registry's rotatable-bond table. Non-fatal: callers treat it as
// "this residue contributes zero rotamers" and return an empty result
// alongside the diagnostic.
type UnknownResidue struct {
	CompID string
}

func (e *UnknownResidue) Error() string {
	return fmt.Sprintf("unknown residue type %q", e.CompID)
}
