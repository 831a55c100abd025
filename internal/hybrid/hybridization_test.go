package hybrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asymmetrica/rotaforge/internal/atomstore"
)

func bonded(a, b *atomstore.Atom) {
	a.AddConnection(b.ID)
	b.AddConnection(a.ID)
}

func TestInferCarbonFourNeighborsIsSP3(t *testing.T) {
	c := &atomstore.Atom{ID: 1, Element: "C"}
	for i := 2; i <= 5; i++ {
		n := &atomstore.Atom{ID: i, Element: "C"}
		bonded(c, n)
	}
	warnings := Infer([]*atomstore.Atom{c})
	assert.Empty(t, warnings)
	assert.Equal(t, atomstore.HybridSP3, c.Hybridization)
}

func TestInferCarbonThreeNeighborsIsSP2(t *testing.T) {
	c := &atomstore.Atom{ID: 1, Element: "C"}
	for i := 2; i <= 4; i++ {
		n := &atomstore.Atom{ID: i, Element: "C"}
		bonded(c, n)
	}
	Infer([]*atomstore.Atom{c})
	assert.Equal(t, atomstore.HybridSP2, c.Hybridization)
}

func TestInferIsolatedAtomReportsParameterError(t *testing.T) {
	a := &atomstore.Atom{ID: 1, Element: "C"}
	warnings := Infer([]*atomstore.Atom{a})
	require.Len(t, warnings, 1)
	assert.Equal(t, atomstore.HybridUnknown, a.Hybridization)
}

func TestInferNitrogenTwoNeighborsIsSP2(t *testing.T) {
	n := &atomstore.Atom{ID: 1, Element: "N"}
	for i := 2; i <= 3; i++ {
		x := &atomstore.Atom{ID: i, Element: "C"}
		bonded(n, x)
	}
	Infer([]*atomstore.Atom{n})
	assert.Equal(t, atomstore.HybridSP2, n.Hybridization)
}
