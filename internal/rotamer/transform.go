// Package rotamer builds, for one residue instance, a symbolic affine
// transform per side-chain atom expressing its position as a function of
// the residue's chi dihedral angles. Compiling the transform once and
// evaluating it per sampled angle combination (package sampler) avoids
// re-deriving the geometry from scratch at every grid point.
package rotamer

import (
	"github.com/asymmetrica/rotaforge/internal/atomstore"
	"github.com/asymmetrica/rotaforge/internal/expr"
	"github.com/asymmetrica/rotaforge/internal/geometry"
	"github.com/asymmetrica/rotaforge/internal/registry"
	"github.com/asymmetrica/rotaforge/internal/rerr"
)

// Model is the compiled rotatable-bond transform for one residue instance:
// one symbolic matrix per chi bond, and for every atom the ordered list of
// chi variable names whose rotation moves it.
type Model struct {
	ChiNames    []string
	chiMatrix   map[string]expr.Matrix4
	atomChi     map[string][]string // atom name -> chi names affecting it, innermost first
	byName      map[string]*atomstore.Atom
}

// residueBondAxis finds, within atoms, the three reference positions
// (the third atom used only to disambiguate the local frame's x axis, the
// bond's B endpoint, and its C endpoint) for chi bond cb.
func residueBondAxis(cb registry.ChiBond, byName map[string]*atomstore.Atom) (a, b, c geometry.Vector3, ok bool) {
	aa, okA := byName[cb.A]
	ab, okB := byName[cb.B]
	ac, okC := byName[cb.C]
	if !okA || !okB || !okC {
		return geometry.Vector3{}, geometry.Vector3{}, geometry.Vector3{}, false
	}
	return aa.Position(), ab.Position(), ac.Position(), true
}

// buildChiMatrix compiles the symbolic transform rotating everything
// downstream of chi bond cb by its free variable cb.Name: translate B to
// the origin, rotate into the local frame whose z axis runs B->C, apply
// the symbolic RotateZ, then undo the rotation and translation.
func buildChiMatrix(cb registry.ChiBond, byName map[string]*atomstore.Atom) (expr.Matrix4, error) {
	a, b, c, ok := residueBondAxis(cb, byName)
	if !ok {
		return expr.Matrix4{}, &rerr.GeometryDegenerate{
			Op:     "rotamer.buildChiMatrix",
			Detail: "chi bond " + cb.Name + " references an atom missing from the residue",
		}
	}
	if geometry.Distance(b, c) < 1e-6 {
		return expr.Matrix4{}, &rerr.GeometryDegenerate{
			Op:     "rotamer.buildChiMatrix",
			Detail: "chi bond " + cb.Name + " has a zero-length axis",
		}
	}

	frame := geometry.CreateRefFrame(b, c, a)
	rot := geometry.RotationFromFrame(frame)
	rotInv := rot.Inverse()
	translate := geometry.Translate(geometry.Vector3{X: -b.X, Y: -b.Y, Z: -b.Z})
	translateBack := translate.Inverse()

	symRot := expr.SymbolicRotateZ(cb.Name)
	symTranslate := expr.ConstMatrix(translate)
	symTranslateBack := expr.ConstMatrix(translateBack)
	symRotFrame := expr.ConstMatrix(rot)
	symRotFrameInv := expr.ConstMatrix(rotInv)

	return expr.MulChain(symTranslateBack, symRotFrame, symRot, symRotFrameInv, symTranslate), nil
}

// downstreamOf returns start plus the names of every atom reachable from
// start without crossing the edge start<-from. Everything in it except
// start itself (which lies on the axis) moves when the from-start bond
// rotates.
func downstreamOf(start, from string, byName map[string]*atomstore.Atom) map[string]bool {
	visited := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curAtom, ok := byName[cur]
		if !ok {
			continue
		}
		for id := range curAtom.Connections {
			var nbrName string
			for name, atom := range byName {
				if atom.ID == id {
					nbrName = name
					break
				}
			}
			if nbrName == "" || nbrName == from || visited[nbrName] {
				continue
			}
			visited[nbrName] = true
			queue = append(queue, nbrName)
		}
	}
	return visited
}

// Compile builds a Model for one residue instance's heavy+hydrogen atoms,
// given the residue's rotatable-bond topology from the parameter registry.
func Compile(residueAtoms []*atomstore.Atom, chiBonds []registry.ChiBond) (*Model, error) {
	byName := make(map[string]*atomstore.Atom, len(residueAtoms))
	for _, a := range residueAtoms {
		byName[a.Name] = a
	}

	m := &Model{
		chiMatrix: make(map[string]expr.Matrix4),
		atomChi:   make(map[string][]string),
		byName:    byName,
	}

	for _, cb := range chiBonds {
		mat, err := buildChiMatrix(cb, byName)
		if err != nil {
			return nil, err
		}
		m.ChiNames = append(m.ChiNames, cb.Name)
		m.chiMatrix[cb.Name] = mat

		moved := downstreamOf(cb.C, cb.B, byName)
		for name := range moved {
			if name == cb.C {
				continue // on the rotation axis: this chi leaves it in place
			}
			m.atomChi[name] = append(m.atomChi[name], cb.Name)
		}
	}

	return m, nil
}

// AffectingChi returns the chi names (innermost first) whose rotation
// moves atomName, or nil if atomName is unaffected by any chi bond (e.g.
// it is on the fixed backbone side of every bond).
func (m *Model) AffectingChi(atomName string) []string {
	return m.atomChi[atomName]
}

// Transform returns the combined symbolic transform for atomName: the
// chain of every chi matrix affecting it, with the innermost (closest to
// the backbone) leftmost in the product, so the outermost rotation acts on
// the point first and the innermost last. An atom with no entry is
// unaffected by any chi bond (the transform is the identity).
func (m *Model) Transform(atomName string) expr.Matrix4 {
	chis := m.atomChi[atomName]
	if len(chis) == 0 {
		return expr.ConstMatrix(geometry.Identity4())
	}
	mats := make([]expr.Matrix4, len(chis))
	for i, name := range chis {
		mats[i] = m.chiMatrix[name]
	}
	return expr.MulChain(mats...)
}

// Apply evaluates atomName's compiled transform at the given chi values
// (radians, keyed by chi name) and returns the resulting position.
func (m *Model) Apply(atomName string, chiValues map[string]float64) (geometry.Vector3, bool) {
	atom, ok := m.byName[atomName]
	if !ok {
		return geometry.Vector3{}, false
	}
	t := m.Transform(atomName)
	x, y, z := expr.ApplyPoint(t, chiValues, atom.X, atom.Y, atom.Z)
	return geometry.Vector3{X: x, Y: y, Z: z}, true
}
