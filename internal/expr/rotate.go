package expr

// SymbolicRotateZ returns the symbolic counterpart of geometry.RotateZ: a
// rotation about the local z axis by the free variable named angleVar,
// left uninstantiated until EvalMatrix substitutes a concrete dihedral
// angle. This is the one matrix in a compiled rotatable-bond transform
// that actually depends on chi; every other factor in the chain is a
// Constant matrix lifted from the residue's fixed reference geometry.
func SymbolicRotateZ(angleVar string) Matrix4 {
	theta := Variable(angleVar)
	s := Sin(theta)
	c := Cos(theta)
	return Matrix4{
		{c, Neg(s), Constant(0), Constant(0)},
		{s, c, Constant(0), Constant(0)},
		{Constant(0), Constant(0), Constant(1), Constant(0)},
		{Constant(0), Constant(0), Constant(0), Constant(1)},
	}
}
