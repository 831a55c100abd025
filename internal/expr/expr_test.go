package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumFoldsConstants(t *testing.T) {
	e := Sum(Constant(2), Constant(3), Variable("x"))
	got := e.Eval(map[string]float64{"x": 10})
	assert.Equal(t, 15.0, got, "Sum(2,3,x).Eval(x=10)")
}

func TestProductZeroFactorCollapses(t *testing.T) {
	e := Product(Constant(0), Variable("x"))
	_, ok := e.(constant)
	require.True(t, ok, "expected Product with a zero factor to fold to a constant, got %T", e)
	assert.Zero(t, e.Eval(nil))
}

func TestNegConstantFoldsImmediately(t *testing.T) {
	e := Neg(Constant(5))
	_, ok := e.(constant)
	require.True(t, ok, "expected Neg(Constant) to fold, got %T", e)
	assert.Equal(t, -5.0, e.Eval(nil))
}

func TestSinCosRoundTrip(t *testing.T) {
	theta := Variable("theta")
	s := Sin(theta)
	c := Cos(theta)
	identity := Sum(Product(s, s), Product(c, c))
	got := identity.Eval(map[string]float64{"theta": 1.234})
	assert.InDelta(t, 1.0, got, 1e-9, "sin^2+cos^2 should be 1")
}

func TestVariableMissingFromVarsIsZero(t *testing.T) {
	e := Variable("missing")
	assert.Zero(t, e.Eval(map[string]float64{}))
}
