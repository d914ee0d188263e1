package pathguide

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/kuandriy/pathguide/internal/bfstree"
	"github.com/kuandriy/pathguide/internal/frontier"
	"github.com/kuandriy/pathguide/internal/wsample"
)

// BFSGuide exhaustively explores a generator's decision tree breadth-first,
// falling back to random choices beyond the current frontier (spec.md
// §4.2). Only one chooser may be alive at a time.
type BFSGuide struct {
	tree     *bfstree.Tree
	frontier *frontier.Frontier
	rng      *rand.Rand

	began         bool
	outstanding   bool
	maxSavedLevel int

	opts    *options
	metrics *guideMetrics
}

// NewBFS constructs a BFS guide. seed selects the PRNG stream used both for
// random-mode choices and for the randomized untaken-slot selection at a
// frontier node; pass nil to seed from platform entropy.
func NewBFS(seed *int64, opts ...Option) *BFSGuide {
	o := newOptions(opts)
	return &BFSGuide{
		tree:          bfstree.New(),
		frontier:      frontier.New(),
		rng:           rand.New(rand.NewSource(resolveSeed(seed))),
		maxSavedLevel: -1,
		opts:          o,
		metrics:       newGuideMetrics(o.registry, "bfs"),
	}
}

// NodeCount reports the total number of tree nodes allocated so far.
func (g *BFSGuide) NodeCount() int { return g.tree.NodeCount() }

// MaxFullyExploredLevel reports the level of the deepest node the frontier
// has popped so far (spec.md §4.2 "Why the priority queue by level"); every
// node above that level has no unexplored slots left. -1 before the first
// frontier node has been popped.
func (g *BFSGuide) MaxFullyExploredLevel() int { return g.maxSavedLevel }

// MakeChooser implements the three regimes of spec.md §4.2's algorithm.
func (g *BFSGuide) MakeChooser() (Chooser, bool) {
	if g.outstanding {
		violate(ReentrantChooser, "MakeChooser called while a chooser is still live")
	}

	// Regime 1: first traversal.
	if !g.began {
		g.began = true
		g.outstanding = true
		return &bfsChooser{
			guide:       g,
			currentNode: g.tree.Root(),
			lastChoice:  0,
			id:          newChooserID(),
		}, true
	}

	// Regime 2: frontier has pending decisions.
	target, ok := g.frontier.Pop()
	if !ok {
		// Regime 3: exhaustion.
		return nil, false
	}

	level := g.tree.Level(target)
	if level > g.maxSavedLevel {
		g.maxSavedLevel = level
	}
	g.metrics.setMaxLevel(g.maxSavedLevel)

	prefix, unexploredBefore := buildPlannedPrefix(g.tree, g.rng, target)
	if unexploredBefore > 1 {
		g.frontier.Push(target, level)
	}

	g.outstanding = true
	return &bfsChooser{
		guide:         g,
		currentNode:   g.tree.Root(),
		lastChoice:    0,
		plannedPrefix: prefix,
		id:            newChooserID(),
	}, true
}

// buildPlannedPrefix walks from target up to (but excluding) the root's own
// trivial entry slot, collecting the branch index at each level, then
// appends one freshly-chosen unexplored slot at target. It returns the
// prefix in consumption order (root-side first) and the number of
// unexplored slots target had before that slot was chosen, so the caller
// can decide whether to re-insert target (spec.md §4.2: re-insert iff more
// than one unexplored slot existed at pop time).
func buildPlannedPrefix(tree *bfstree.Tree, rng *rand.Rand, target int) ([]int, uint) {
	unexploredBefore := tree.UnexploredCount(target)

	var slots []int
	cur := target
	for {
		parent := tree.Parent(cur)
		if parent == bfstree.NoParent {
			break
		}
		slot := tree.ParentSlot(cur)
		if parent == tree.Root() {
			break
		}
		slots = append(slots, slot)
		cur = parent
	}
	for i, j := 0, len(slots)-1; i < j; i, j = i+1, j-1 {
		slots[i], slots[j] = slots[j], slots[i]
	}

	chosen := tree.PickUnexplored(rng, target)
	slots = append(slots, chosen)
	return slots, unexploredBefore
}

type bfsChooser struct {
	guide         *BFSGuide
	currentNode   int
	lastChoice    int
	level         int
	plannedPrefix []int
	prefixPos     int
	id            uuid.UUID
}

func (c *bfsChooser) chooseCommon(n int, weights []float64) int {
	if n < 1 {
		violate(InvalidArity, "choose(%d): n must be >= 1", n)
	}
	tree := c.guide.tree
	slot := tree.ChildAt(c.currentNode, c.lastChoice)

	var choice int
	if slot != bfstree.Sentinel {
		if tree.Arity(slot) != n {
			violate(ArityMismatch, "node revisited with n=%d, previously n=%d", n, tree.Arity(slot))
		}
		if c.prefixPos >= len(c.plannedPrefix) {
			violate(ReplayOverrun, "planned prefix exhausted while still inside replay window")
		}
		choice = c.plannedPrefix[c.prefixPos]
		c.prefixPos++
		c.currentNode = slot
	} else {
		if c.prefixPos != len(c.plannedPrefix) {
			violate(ReplayOverrun, "reached unexplored territory with unconsumed planned choices")
		}
		newIdx := tree.Materialize(c.currentNode, c.lastChoice, n)
		if weights != nil {
			choice = wsample.Weighted(c.guide.rng, weights)
		} else {
			choice = wsample.Uniform(c.guide.rng, n)
		}
		if n > 1 {
			c.guide.frontier.Push(newIdx, tree.Level(newIdx))
		}
		c.currentNode = newIdx
	}
	c.lastChoice = choice
	c.level++
	debugLog(c.guide.opts.logger, "bfs", c.id.String(), c.currentNode, c.level, n)
	if t := c.guide.opts.trace; t != nil {
		t.add(TraceEntry{ChooserID: c.id.String(), NodeIdx: c.currentNode, Level: c.level, Choice: choice})
	}
	return choice
}

func (c *bfsChooser) Choose(n int) int { return c.chooseCommon(n, nil) }

func (c *bfsChooser) Flip() int { return c.Choose(2) }

func (c *bfsChooser) ChooseWeighted(w []float64) int {
	checkWeights(w)
	return c.chooseCommon(len(w), w)
}

func (c *bfsChooser) ChooseUnimportant() int64 {
	return wsample.FullRange(c.guide.rng)
}

// Commit materializes any still-sentinel current slot as an empty terminal
// node (spec.md §4.2 "Traversal commit") and releases the guide.
func (c *bfsChooser) Commit() {
	if c.prefixPos != len(c.plannedPrefix) {
		violate(ReplayOverrun, "planned prefix not fully consumed at commit")
	}
	tree := c.guide.tree
	if tree.ChildAt(c.currentNode, c.lastChoice) == bfstree.Sentinel {
		tree.MaterializeTerminal(c.currentNode, c.lastChoice)
	}
	c.guide.outstanding = false
	c.guide.metrics.setNodeCount(tree.NodeCount())
}

func (c *bfsChooser) ID() uuid.UUID { return c.id }
