// Package frontier implements the BFS guide's pending frontier: a priority
// queue keyed by tree level, FIFO within a level, used to guarantee the
// monotonic shallow-to-deep exploration order spec.md §4.2/§9 requires.
//
// Grounded on internal/forest's LeafHeap (a container/heap.Interface
// min-heap ordered by a float score); adapted here to order by (level,
// insertion sequence) instead of a recency-weighted score.
package frontier

import "container/heap"

// entry is one frontier slot: a node identified by its arena index, at a
// given level, tagged with a monotonic sequence number so that nodes at
// the same level pop in the order they were inserted.
type entry struct {
	nodeIdx int
	level   int
	seq     uint64
}

type minHeap []entry

func (h minHeap) Len() int { return len(h) }

func (h minHeap) Less(i, j int) bool {
	if h[i].level != h[j].level {
		return h[i].level < h[j].level
	}
	return h[i].seq < h[j].seq
}

func (h minHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *minHeap) Push(x any) { *h = append(*h, x.(entry)) }

func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Frontier is the level-ordered, FIFO-within-level pending queue.
type Frontier struct {
	h       minHeap
	nextSeq uint64
}

// New returns an empty frontier.
func New() *Frontier {
	f := &Frontier{}
	heap.Init(&f.h)
	return f
}

// Push inserts nodeIdx at level. Re-insertion (spec.md §4.2's "re-insert T
// at the same level") is just another Push; it receives a fresh sequence
// number, so it goes to the back of that level's queue, behind siblings
// that have not yet been popped this round.
func (f *Frontier) Push(nodeIdx, level int) {
	heap.Push(&f.h, entry{nodeIdx: nodeIdx, level: level, seq: f.nextSeq})
	f.nextSeq++
}

// Pop removes and returns the lowest-level, earliest-inserted node index.
// ok is false when the frontier is empty.
func (f *Frontier) Pop() (nodeIdx int, ok bool) {
	if f.h.Len() == 0 {
		return 0, false
	}
	e := heap.Pop(&f.h).(entry)
	return e.nodeIdx, true
}

// Len reports the number of pending nodes.
func (f *Frontier) Len() int { return f.h.Len() }

// Empty reports whether the frontier has no pending nodes.
func (f *Frontier) Empty() bool { return f.h.Len() == 0 }
