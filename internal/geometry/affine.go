package geometry

import "math"

// Matrix4 is a 4x4 homogeneous transform, row-major: Rows[row][col].
type Matrix4 [4][4]float64

// Identity4 returns the 4x4 identity transform.
func Identity4() Matrix4 {
	var m Matrix4
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	return m
}

// Translate returns the homogeneous translation matrix moving the origin to t.
func Translate(t Vector3) Matrix4 {
	m := Identity4()
	m[0][3] = t.X
	m[1][3] = t.Y
	m[2][3] = t.Z
	return m
}

// RotateX returns the homogeneous rotation matrix for angle theta (radians)
// about the X axis.
func RotateX(theta float64) Matrix4 {
	m := Identity4()
	s, c := math.Sin(theta), math.Cos(theta)
	m[1][1], m[1][2] = c, -s
	m[2][1], m[2][2] = s, c
	return m
}

// RotateY returns the homogeneous rotation matrix for angle theta (radians)
// about the Y axis.
func RotateY(theta float64) Matrix4 {
	m := Identity4()
	s, c := math.Sin(theta), math.Cos(theta)
	m[0][0], m[0][2] = c, s
	m[2][0], m[2][2] = -s, c
	return m
}

// RotateZ returns the homogeneous rotation matrix for angle theta (radians)
// about the Z axis: the canonical bond-axis rotation used to realize a
// dihedral-angle delta during a rotamer sweep.
//
//	Rz(chi) = [[cos(chi), -sin(chi), 0, 0],
//	           [sin(chi),  cos(chi), 0, 0],
//	           [0,         0,        1, 0],
//	           [0,         0,        0, 1]]
func RotateZ(theta float64) Matrix4 {
	m := Identity4()
	s, c := math.Sin(theta), math.Cos(theta)
	m[0][0], m[0][1] = c, -s
	m[1][0], m[1][1] = s, c
	return m
}

// Mult returns the left-to-right matrix product of ms: ms[0] * ms[1] * ....
// With at least one matrix it always succeeds; Mult() with no arguments
// returns the identity.
func Mult(ms ...Matrix4) Matrix4 {
	if len(ms) == 0 {
		return Identity4()
	}
	acc := ms[0]
	for _, m := range ms[1:] {
		acc = mult2(acc, m)
	}
	return acc
}

func mult2(a, b Matrix4) Matrix4 {
	var out Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Inverse returns the inverse of an affine (rotation + translation, no
// scale/shear) homogeneous transform. For a pure rotation R with
// translation t, the affine inverse is [[R^T, -R^T t], [0,0,0,1]], which is
// cheaper and more numerically stable than general 4x4 inversion and is
// exactly the family of matrices this module builds (Translate, RotateX/Y/Z
// and their products).
func (m Matrix4) Inverse() Matrix4 {
	var out Matrix4
	// Transpose the rotation block.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	// -R^T * t
	t := Vector3{X: m[0][3], Y: m[1][3], Z: m[2][3]}
	rt := Matrix4{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rt[i][j] = out[i][j]
		}
	}
	neg := rt.Apply(t).Scale(-1)
	out[0][3], out[1][3], out[2][3] = neg.X, neg.Y, neg.Z
	out[3][3] = 1
	return out
}

// Apply transforms a point (not a free vector) by m, performing the
// implicit homogeneous divide (always 1 for the affine matrices this
// package constructs).
func (m Matrix4) Apply(p Vector3) Vector3 {
	return Vector3{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// RotationFromFrame builds the homogeneous rotation matrix whose columns
// are f's basis vectors, i.e. the transform that carries the global frame
// onto f. This is the matrix form of the rotation EulerAngles decomposes;
// the rotatable-bond model (package rotamer) uses it directly rather than
// re-composing Rz(alpha)*Ry(beta)*Rz(gamma), since it is exact by
// construction and avoids a second pass through the gimbal case.
func RotationFromFrame(f Frame) Matrix4 {
	m := Identity4()
	m[0][0], m[0][1], m[0][2] = f.X.X, f.Y.X, f.Z.X
	m[1][0], m[1][1], m[1][2] = f.X.Y, f.Y.Y, f.Z.Y
	m[2][0], m[2][1], m[2][2] = f.X.Z, f.Y.Z, f.Z.Z
	return m
}
