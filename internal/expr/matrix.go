package expr

// Matrix4 is a 4x4 homogeneous affine transform whose entries are symbolic
// expressions rather than numbers, mirroring geometry.Matrix4 one level up
// the abstraction: the rotatable-bond model builds one of these per movable
// atom, with the dihedral angle(s) left as free variables, then evaluates
// it once per sampled angle combination via EvalMatrix.
type Matrix4 [4][4]Expr

// ConstMatrix lifts a plain 4x4 float64 array into a Matrix4 of Constant
// leaves.
func ConstMatrix(m [4][4]float64) Matrix4 {
	var out Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = Constant(m[i][j])
		}
	}
	return out
}

// MulMatrix returns the symbolic matrix product a*b.
func MulMatrix(a, b Matrix4) Matrix4 {
	var out Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			terms := make([]Expr, 4)
			for k := 0; k < 4; k++ {
				terms[k] = Product(a[i][k], b[k][j])
			}
			out[i][j] = Sum(terms...)
		}
	}
	return out
}

// MulChain multiplies a left-to-right chain of matrices, matching
// geometry.Mult's associativity.
func MulChain(ms ...Matrix4) Matrix4 {
	if len(ms) == 0 {
		return ConstMatrix([4][4]float64{
			{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1},
		})
	}
	out := ms[0]
	for _, m := range ms[1:] {
		out = MulMatrix(out, m)
	}
	return out
}

// EvalMatrix substitutes vars into every entry, returning the numeric
// 4x4 array in the same layout as geometry.Matrix4.
func EvalMatrix(m Matrix4, vars map[string]float64) [4][4]float64 {
	var out [4][4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[i][j].Eval(vars)
		}
	}
	return out
}

// ApplyPoint evaluates m at vars and applies the resulting affine
// transform to a homogeneous point (x, y, z, 1), returning the
// transformed (x, y, z).
func ApplyPoint(m Matrix4, vars map[string]float64, x, y, z float64) (float64, float64, float64) {
	n := EvalMatrix(m, vars)
	rx := n[0][0]*x + n[0][1]*y + n[0][2]*z + n[0][3]
	ry := n[1][0]*x + n[1][1]*y + n[1][2]*z + n[1][3]
	rz := n[2][0]*x + n[2][1]*y + n[2][2]*z + n[2][3]
	return rx, ry, rz
}
