package geometry

import (
	"math"
	"testing"
)

func TestRotateZIdentityAtZero(t *testing.T) {
	m := RotateZ(0)
	p := Vector3{X: 1, Y: 2, Z: 3}
	got := m.Apply(p)
	if math.Abs(got.X-p.X) > 1e-12 || math.Abs(got.Y-p.Y) > 1e-12 || math.Abs(got.Z-p.Z) > 1e-12 {
		t.Errorf("RotateZ(0).Apply(p) = %v, want %v", got, p)
	}
}

func TestMultAssociativeOrder(t *testing.T) {
	t1 := Translate(Vector3{X: 1, Y: 0, Z: 0})
	rz := RotateZ(math.Pi / 2)

	combined := Mult(t1, rz)
	p := Vector3{X: 0, Y: 0, Z: 0}

	got := combined.Apply(p)
	want := t1.Apply(rz.Apply(p))

	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 {
		t.Errorf("Mult(t1, rz).Apply(p) = %v, want %v (t1 applied after rz)", got, want)
	}
}

func TestTranslateInverseUndoesTranslation(t *testing.T) {
	m := Translate(Vector3{X: 3, Y: -2, Z: 5})
	inv := m.Inverse()
	p := Vector3{X: 7, Y: 7, Z: 7}

	roundTrip := inv.Apply(m.Apply(p))
	if math.Abs(roundTrip.X-p.X) > 1e-9 || math.Abs(roundTrip.Y-p.Y) > 1e-9 || math.Abs(roundTrip.Z-p.Z) > 1e-9 {
		t.Errorf("Inverse round trip = %v, want %v", roundTrip, p)
	}
}

func TestRotationFromFrameIsOrthonormal(t *testing.T) {
	f := CreateRefFrame(
		Vector3{X: 0, Y: 0, Z: 0},
		Vector3{X: 0, Y: 0, Z: 1},
		Vector3{X: 1, Y: 0, Z: 0},
	)
	m := RotationFromFrame(f)
	p := Vector3{X: 2, Y: 3, Z: 5}
	rotated := m.Apply(p)

	if math.Abs(rotated.Length()-p.Length()) > 1e-9 {
		t.Errorf("rotation changed vector length: %v vs %v", rotated.Length(), p.Length())
	}
}

func TestEulerAnglesGimbalCase(t *testing.T) {
	f := Frame{
		X: Vector3{X: 1, Y: 0, Z: 0},
		Y: Vector3{X: 0, Y: 1, Z: 0},
		Z: Vector3{X: 0, Y: 0, Z: 1},
	}
	alpha, beta, gamma := EulerAngles(f)
	if alpha != 0 {
		t.Errorf("gimbal alpha = %v, want 0", alpha)
	}
	if beta != 0 {
		t.Errorf("gimbal beta = %v, want 0", beta)
	}
	if math.Abs(gamma) > 1e-12 {
		t.Errorf("gimbal gamma = %v, want 0 for identity frame", gamma)
	}
}
