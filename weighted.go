package pathguide

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/kuandriy/pathguide/internal/wsample"
	"github.com/kuandriy/pathguide/internal/wtree"
)

// WeightedGuide approximates uniform-over-leaves sampling by reweighting
// exploration toward branches whose estimated subtree size looks large and
// away from branches already sampled often (spec.md §4.3). It never
// signals exhaustion; it is intended for open-ended generation.
//
// Unlike BFSGuide, the sampler's tree has no synthetic wrapper root: the
// root node is itself the first real decision point, matching
// original_source/guide.h's WeightedSamplerChooser (see SPEC_FULL.md §13).
type WeightedGuide struct {
	tree *wtree.Tree
	rng  *rand.Rand

	outstanding bool
	// lastTrailNodeCount is a best-effort NodeCount surrogate: the length
	// of the most recently committed trail. The sampler's tree is
	// unbounded and never walked for a global count, so this deliberately
	// does not claim to be the true total across all traversals.
	lastTrailNodeCount int

	opts    *options
	metrics *guideMetrics
}

// NewWeighted constructs a weighted-sampler guide. seed selects the PRNG
// stream; pass nil to seed from platform entropy.
func NewWeighted(seed *int64, opts ...Option) *WeightedGuide {
	o := newOptions(opts)
	return &WeightedGuide{
		tree:    wtree.New(),
		rng:     rand.New(rand.NewSource(resolveSeed(seed))),
		opts:    o,
		metrics: newGuideMetrics(o.registry, "weighted"),
	}
}

// NodeCount reports the length of the most recently committed traversal's
// trail (see lastTrailNodeCount).
func (g *WeightedGuide) NodeCount() int { return g.lastTrailNodeCount }

type weightedChooser struct {
	guide *WeightedGuide
	trail []int
	id    uuid.UUID
}

func (g *WeightedGuide) MakeChooser() (Chooser, bool) {
	if g.outstanding {
		violate(ReentrantChooser, "MakeChooser called while a chooser is still live")
	}
	g.outstanding = true
	return &weightedChooser{
		guide: g,
		trail: []int{g.tree.Root()},
		id:    newChooserID(),
	}, true
}

func (c *weightedChooser) current() int { return c.trail[len(c.trail)-1] }

func (c *weightedChooser) chooseCommon(n int, clientWeights []float64) int {
	if n < 1 {
		violate(InvalidArity, "choose(%d): n must be >= 1", n)
	}
	tree := c.guide.tree
	cur := c.current()

	if !tree.IsVisited(cur) {
		tree.Visit(cur, n, clientWeights)
	} else if tree.Arity(cur) != n {
		violate(ArityMismatch, "node revisited with n=%d, previously n=%d", n, tree.Arity(cur))
	}

	base := tree.Weights(cur)
	r0 := wsample.Weighted(c.guide.rng, base)

	var choice int
	if !tree.Exists(cur, r0) {
		// First-visit honesty: accept the base-distribution draw outright.
		choice = r0
	} else {
		reweighted := make([]float64, len(base))
		for i, w := range base {
			if tree.Exists(cur, i) {
				reweighted[i] = w * tree.SizeEstimate(tree.ChildAt(cur, i))
			}
		}
		choice = wsample.Weighted(c.guide.rng, reweighted)
	}

	if !tree.Exists(cur, choice) {
		tree.Allocate(cur, choice)
	}
	child := tree.ChildAt(cur, choice)
	c.trail = append(c.trail, child)

	debugLog(c.guide.opts.logger, "weighted", c.id.String(), child, len(c.trail)-1, n)
	if t := c.guide.opts.trace; t != nil {
		t.add(TraceEntry{ChooserID: c.id.String(), NodeIdx: child, Level: len(c.trail) - 1, Choice: choice})
	}
	return choice
}

func (c *weightedChooser) Choose(n int) int { return c.chooseCommon(n, nil) }

func (c *weightedChooser) Flip() int { return c.Choose(2) }

func (c *weightedChooser) ChooseWeighted(w []float64) int {
	checkWeights(w)
	return c.chooseCommon(len(w), w)
}

func (c *weightedChooser) ChooseUnimportant() int64 {
	return wsample.FullRange(c.guide.rng)
}

// Commit updates size estimates bottom-up along the traversal's trail
// (spec.md §4.3 "Commit") and releases the guide.
func (c *weightedChooser) Commit() {
	c.guide.tree.CommitTrail(c.trail)
	c.guide.outstanding = false
	c.guide.lastTrailNodeCount = len(c.trail)
	c.guide.metrics.setNodeCount(len(c.trail))
}

func (c *weightedChooser) ID() uuid.UUID { return c.id }
