package pathguide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S4: seed fixed, 100000 calls to choose(4). Each outcome count within 1%
// of 25000.
func TestDefault_S4_UniformConvergence(t *testing.T) {
	seed := int64(11)
	g := NewDefault(&seed)
	c, ok := g.MakeChooser()
	require.True(t, ok, "default guide must always produce a chooser")

	counts := make([]int, 4)
	const trials = 100000
	for i := 0; i < trials; i++ {
		counts[c.Choose(4)]++
	}
	for i, n := range counts {
		assert.InDelta(t, 25000, n, 250, "bucket %d count = %d", i, n)
	}
}

// S5-adjacent: choose_weighted frequencies converge to w_i / sum(w).
func TestDefault_ChooseWeightedConvergence(t *testing.T) {
	seed := int64(12)
	g := NewDefault(&seed)
	c, _ := g.MakeChooser()

	w := []float64{1, 2, 3, 4}
	counts := make([]int, 4)
	const trials = 200000
	for i := 0; i < trials; i++ {
		counts[c.ChooseWeighted(w)]++
	}
	want := []float64{0.1, 0.2, 0.3, 0.4}
	for i, n := range counts {
		got := float64(n) / trials
		assert.InDelta(t, want[i], got, 0.01, "bucket %d frequency", i)
	}
}

func TestDefault_NoTreeAlwaysSucceeds(t *testing.T) {
	seed := int64(1)
	g := NewDefault(&seed)
	require.Equal(t, 0, g.NodeCount(), "default guide keeps no tree")
	for i := 0; i < 5; i++ {
		_, ok := g.MakeChooser()
		require.True(t, ok, "default guide's MakeChooser must never signal exhaustion")
	}
}

func TestDefault_ChooseZeroIsFatal(t *testing.T) {
	seed := int64(1)
	g := NewDefault(&seed)
	c, _ := g.MakeChooser()
	defer func() {
		r := recover()
		cv, ok := r.(*ContractViolation)
		require.True(t, ok, "panic = %v, want *ContractViolation", r)
		assert.Equal(t, InvalidArity, cv.Kind)
	}()
	c.Choose(0)
}

func TestDefault_ChooseWeightedNegativeElementIsFatal(t *testing.T) {
	seed := int64(1)
	g := NewDefault(&seed)
	c, _ := g.MakeChooser()
	defer func() {
		r := recover()
		cv, ok := r.(*ContractViolation)
		require.True(t, ok, "panic = %v, want *ContractViolation", r)
		assert.Equal(t, InvalidWeights, cv.Kind)
	}()
	c.ChooseWeighted([]float64{-1, 5})
}

func TestDefault_ChooseWeightedNonPositiveTotalIsFatal(t *testing.T) {
	seed := int64(1)
	g := NewDefault(&seed)
	c, _ := g.MakeChooser()
	defer func() {
		r := recover()
		cv, ok := r.(*ContractViolation)
		require.True(t, ok, "panic = %v, want *ContractViolation", r)
		assert.Equal(t, InvalidWeights, cv.Kind)
	}()
	c.ChooseWeighted([]float64{0, 0})
}

func TestDefault_Determinism(t *testing.T) {
	drive := func(seed int64) []int {
		g := NewDefault(&seed)
		c, _ := g.MakeChooser()
		out := make([]int, 20)
		for i := range out {
			out[i] = c.Choose(6)
		}
		return out
	}
	a, b := drive(99), drive(99)
	assert.Equal(t, a, b)
}
