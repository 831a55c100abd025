package expr

import (
	"math"
	"testing"
)

func TestSymbolicRotateZMatchesNumericAtZero(t *testing.T) {
	m := SymbolicRotateZ("chi")
	n := EvalMatrix(m, map[string]float64{"chi": 0})

	want := [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(n[i][j]-want[i][j]) > 1e-9 {
				t.Fatalf("RotateZ(0)[%d][%d] = %v, want %v", i, j, n[i][j], want[i][j])
			}
		}
	}
}

func TestSymbolicRotateZRotatesUnitXAtNinetyDegrees(t *testing.T) {
	m := SymbolicRotateZ("chi")
	x, y, z := ApplyPoint(m, map[string]float64{"chi": math.Pi / 2}, 1, 0, 0)

	if math.Abs(x) > 1e-9 || math.Abs(y-1) > 1e-9 || math.Abs(z) > 1e-9 {
		t.Errorf("RotateZ(pi/2) applied to (1,0,0) = (%v,%v,%v), want (0,1,0)", x, y, z)
	}
}

func TestMulChainEmptyReturnsIdentity(t *testing.T) {
	n := EvalMatrix(MulChain(), nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if n[i][j] != want {
				t.Errorf("MulChain()[%d][%d] = %v, want %v", i, j, n[i][j], want)
			}
		}
	}
}

func TestMulChainAssociativeWithConstMatrices(t *testing.T) {
	identity := ConstMatrix([4][4]float64{
		{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1},
	})
	rot := SymbolicRotateZ("chi")
	chained := MulChain(identity, rot, identity)

	got := EvalMatrix(chained, map[string]float64{"chi": 0.5})
	want := EvalMatrix(rot, map[string]float64{"chi": 0.5})
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(got[i][j]-want[i][j]) > 1e-9 {
				t.Errorf("chained[%d][%d] = %v, want %v", i, j, got[i][j], want[i][j])
			}
		}
	}
}
