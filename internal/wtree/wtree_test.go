package wtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitInstallsUniformWeightsByDefault(t *testing.T) {
	tr := New()
	root := tr.Root()
	tr.Visit(root, 4, nil)

	require.Equal(t, 4, tr.Arity(root))
	for _, v := range tr.Weights(root) {
		assert.Equal(t, 0.25, v)
	}
	assert.Equal(t, 4.0, tr.SizeEstimate(root))
}

func TestVisitNormalizesClientWeights(t *testing.T) {
	tr := New()
	root := tr.Root()
	tr.Visit(root, 2, []float64{1, 3})
	w := tr.Weights(root)
	require.Len(t, w, 2)
	assert.Equal(t, 0.25, w[0])
	assert.Equal(t, 0.75, w[1])
}

func TestVisitTwicePanics(t *testing.T) {
	tr := New()
	root := tr.Root()
	tr.Visit(root, 2, nil)
	assert.Panics(t, func() { tr.Visit(root, 2, nil) })
}

func TestAllocateThenExists(t *testing.T) {
	tr := New()
	root := tr.Root()
	tr.Visit(root, 2, nil)
	require.False(t, tr.Exists(root, 0))

	child := tr.Allocate(root, 0)
	assert.True(t, tr.Exists(root, 0))
	assert.Equal(t, child, tr.ChildAt(root, 0))
	assert.False(t, tr.IsVisited(child))
}

func TestCommitTrailBalancedBinary(t *testing.T) {
	tr := New()
	root := tr.Root()
	tr.Visit(root, 2, nil)
	child := tr.Allocate(root, 0)
	tr.Visit(child, 2, nil)
	leaf := tr.Allocate(child, 1)

	tr.CommitTrail([]int{root, child, leaf})

	assert.Equal(t, 1.0, tr.SizeEstimate(leaf))
	// child has one allocated slot (0.5 mass) whose leaf size estimate is 1;
	// occupied = 0.5, n_v = 2, so estimate = 2 / 0.5 = 4.
	assert.Equal(t, 4.0, tr.SizeEstimate(child))
	// root has one allocated slot (0.5 mass) whose child size estimate is 4;
	// occupied = 0.5, n_v = 2, so estimate = 2 / 0.5 = 4.
	assert.Equal(t, 4.0, tr.SizeEstimate(root))
}
