// Package wtree implements the arena-indexed tree used by the
// weighted-sampler guide: each node carries a visited flag, a cached base
// distribution over its children, and a running size estimate.
//
// Grounded on original_source/guide.h's WeightedSamplerChooser: unlike
// internal/bfstree, there is no synthetic wrapper root — the sampler's
// trail starts directly at the root node, which is itself the first real
// decision point (see SPEC_FULL.md §13). Children are allocated eagerly the
// moment they are chosen, but stay unvisited (no arity, no distribution)
// until their own first choose call.
package wtree

import "github.com/kuandriy/pathguide/internal/wsample"

const unallocated = -1

type node struct {
	visited      bool
	children     []int
	weights      []float64
	sizeEstimate float64
}

// Tree is the weighted sampler's arena. The zero value is not usable;
// construct with New.
type Tree struct {
	nodes []node
}

// New returns a tree containing a single unvisited root.
func New() *Tree {
	return &Tree{nodes: []node{{}}}
}

// Root returns the arena index of the root node.
func (t *Tree) Root() int { return 0 }

// IsVisited reports whether the node at idx has had its first choose call.
func (t *Tree) IsVisited(idx int) bool { return t.nodes[idx].visited }

// Visit performs first-visit initialization of the node at idx: it records
// the arity n and installs the base distribution (spec.md §4.3 step 1).
// weights may be nil, meaning "no client weights, use uniform." It is a
// contract violation to call Visit on an already-visited node.
func (t *Tree) Visit(idx, n int, weights []float64) {
	if t.nodes[idx].visited {
		panic("wtree: Visit called twice on the same node")
	}
	children := make([]int, n)
	for i := range children {
		children[i] = unallocated
	}
	base := weights
	if base == nil {
		base = wsample.UniformWeights(n)
	} else {
		base = wsample.Normalize(base)
	}
	t.nodes[idx].visited = true
	t.nodes[idx].children = children
	t.nodes[idx].weights = base
	t.nodes[idx].sizeEstimate = float64(n)
}

// Arity returns the node's child count. Only valid after Visit.
func (t *Tree) Arity(idx int) int { return len(t.nodes[idx].children) }

// Weights returns the node's cached base distribution. Only valid after
// Visit. The caller must not mutate the returned slice.
func (t *Tree) Weights(idx int) []float64 { return t.nodes[idx].weights }

// ChildAt returns the arena index allocated at slot i of the node at idx,
// or -1 if that child has not been allocated yet.
func (t *Tree) ChildAt(idx, i int) int { return t.nodes[idx].children[i] }

// Exists reports whether slot i of the node at idx has an allocated child.
func (t *Tree) Exists(idx, i int) bool { return t.nodes[idx].children[i] != unallocated }

// SizeEstimate returns the node's current subtree leaf-count estimate.
func (t *Tree) SizeEstimate(idx int) float64 { return t.nodes[idx].sizeEstimate }

// Allocate creates a new unvisited placeholder node and installs it as the
// child at slot i of the node at idx, mirroring the original's eager
// std::make_unique<Node>() placeholder allocation at choose time. Returns
// the new node's arena index.
func (t *Tree) Allocate(idx, i int) int {
	childIdx := len(t.nodes)
	t.nodes = append(t.nodes, node{})
	t.nodes[idx].children[i] = childIdx
	return childIdx
}

// CommitTrail updates size estimates bottom-up along trail, the sequence of
// node indices visited during one traversal in root-to-leaf order
// (spec.md §4.3 "Commit"). The leaf's estimate is reset to 1; each
// ancestor's estimate becomes n_v / occupied, where occupied is the base
// weight mass covered by children that were actually allocated for this
// traversal (or any prior one).
func (t *Tree) CommitTrail(trail []int) {
	if len(trail) == 0 {
		return
	}
	leaf := trail[len(trail)-1]
	t.nodes[leaf].sizeEstimate = 1

	for i := len(trail) - 2; i >= 0; i-- {
		v := trail[i]
		n := t.nodes[v]
		var occupied, total float64
		for slot, w := range n.weights {
			if n.children[slot] == unallocated {
				continue
			}
			occupied += w
			total += w * t.nodes[n.children[slot]].sizeEstimate
		}
		_ = total // spec.md §9 Open Question: computed for parity, intentionally unused
		if occupied <= 0 {
			continue
		}
		t.nodes[v].sizeEstimate = float64(len(n.children)) / occupied
	}
}
