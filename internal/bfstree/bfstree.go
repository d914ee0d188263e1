// Package bfstree implements the arena-indexed decision tree used by the
// BFS guide: a rooted tree of child-slot vectors where each slot is either
// an owned child (an arena index) or an unexplored sentinel.
//
// Grounded on internal/forest's tree.go/node.go (map-of-pointers tree with
// parent back-references and child ID slices), rebuilt as an index-addressed
// arena per spec.md §9's note that this avoids recursive destruction and
// gives O(1) allocation, with an explicit "invalid index" sentinel standing
// in for the unexplored slot.
package bfstree

import (
	"fmt"
	"math/rand"

	"github.com/bits-and-blooms/bitset"
)

// Sentinel marks a child slot that has never been materialized.
const Sentinel = -1

// NoParent marks the root's own parent slot.
const NoParent = -1

type node struct {
	parent     int
	parentSlot int
	level      int
	children   []int
	unexplored *bitset.BitSet // bit i set iff children[i] == Sentinel
}

// Tree is the arena-indexed decision tree. The zero value is not usable;
// construct with New.
type Tree struct {
	nodes []node
}

// New returns a tree containing only the synthetic one-child root
// (spec.md §3: "The root is a synthetic one-child node; slot 0 is the
// entry for all traversals").
func New() *Tree {
	t := &Tree{}
	t.nodes = append(t.nodes, node{
		parent:     NoParent,
		parentSlot: NoParent,
		level:      0,
		children:   []int{Sentinel},
		unexplored: mustSet(1),
	})
	return t
}

func mustSet(n int) *bitset.BitSet {
	b := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		b.Set(uint(i))
	}
	return b
}

// Root returns the arena index of the synthetic root.
func (t *Tree) Root() int { return 0 }

// NodeCount returns the total number of allocated nodes, including the
// synthetic root.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// Arity returns the number of child slots of the node at idx.
func (t *Tree) Arity(idx int) int { return len(t.nodes[idx].children) }

// Level returns the depth of the node at idx below the root.
func (t *Tree) Level(idx int) int { return t.nodes[idx].level }

// ChildAt returns the arena index stored at slot of the node at idx, or
// Sentinel if that slot is unexplored.
func (t *Tree) ChildAt(idx, slot int) int { return t.nodes[idx].children[slot] }

// IsSentinel reports whether slot of the node at idx is unexplored.
func (t *Tree) IsSentinel(idx, slot int) bool { return t.nodes[idx].children[slot] == Sentinel }

// ParentSlot returns the slot index the node at idx occupies within its
// parent. Used to walk from a frontier node back up to the root and
// recover the planned prefix (spec.md §4.2).
func (t *Tree) ParentSlot(idx int) int { return t.nodes[idx].parentSlot }

// Parent returns the arena index of the parent of the node at idx, or
// NoParent for the root.
func (t *Tree) Parent(idx int) int { return t.nodes[idx].parent }

// HasUnexplored reports whether the node at idx has at least one
// unexplored slot, the condition for frontier membership (spec.md §3).
func (t *Tree) HasUnexplored(idx int) bool { return t.nodes[idx].unexplored.Count() > 0 }

// UnexploredCount returns the number of unexplored slots at idx.
func (t *Tree) UnexploredCount(idx int) uint { return t.nodes[idx].unexplored.Count() }

// PickUnexplored chooses one of the node's unexplored slots uniformly at
// random and returns its index. This implements the randomized variant of
// spec.md §9's "untaken-slot selection at a frontier node" open question,
// which the spec prefers over deterministic "last untaken" selection since
// it removes structural bias. Panics if the node has no unexplored slots.
func (t *Tree) PickUnexplored(rng *rand.Rand, idx int) int {
	n := t.nodes[idx]
	count := n.unexplored.Count()
	if count == 0 {
		panic("bfstree: PickUnexplored called on a node with no unexplored slots")
	}
	target := uint(rng.Intn(int(count)))
	var seen uint
	for i, e := n.unexplored.NextSet(0); e; i, e = n.unexplored.NextSet(i + 1) {
		if seen == target {
			return int(i)
		}
		seen++
	}
	panic("bfstree: unreachable, bitset count desynced from iteration")
}

// Materialize allocates a new node with n child slots as the child at slot
// of the node at idx, and returns its arena index. It is a contract
// violation to allocate a node whose parent slot is already materialized.
func (t *Tree) Materialize(idx, slot, n int) int {
	if !t.IsSentinel(idx, slot) {
		panic(fmt.Sprintf("bfstree: slot %d of node %d is already materialized", slot, idx))
	}
	childIdx := len(t.nodes)
	children := make([]int, n)
	for i := range children {
		children[i] = Sentinel
	}
	t.nodes = append(t.nodes, node{
		parent:     idx,
		parentSlot: slot,
		level:      t.nodes[idx].level + 1,
		children:   children,
		unexplored: mustSet(n),
	})
	t.nodes[idx].children[slot] = childIdx
	t.nodes[idx].unexplored.Clear(uint(slot))
	return childIdx
}

// MaterializeTerminal allocates an empty (zero-slot, leaf) node as the
// child at slot of the node at idx. Used at traversal commit to promote a
// still-sentinel current slot to a terminal node so frontier invariants
// hold for its siblings (spec.md §4.2 "Traversal commit").
func (t *Tree) MaterializeTerminal(idx, slot int) int {
	return t.Materialize(idx, slot, 0)
}
