package pathguide

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/kuandriy/pathguide/internal/wsample"
)

// DefaultGuide is stateless aside from its seeded PRNG (spec.md §4.1). It
// keeps no tree and never signals exhaustion.
type DefaultGuide struct {
	rng     *rand.Rand
	opts    *options
	metrics *guideMetrics
}

// NewDefault constructs a default guide. seed selects the PRNG stream;
// pass nil to seed from platform entropy (spec.md §6).
func NewDefault(seed *int64, opts ...Option) *DefaultGuide {
	s := resolveSeed(seed)
	o := newOptions(opts)
	return &DefaultGuide{
		rng:     rand.New(rand.NewSource(s)),
		opts:    o,
		metrics: newGuideMetrics(o.registry, "default"),
	}
}

func resolveSeed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return time.Now().UnixNano()
}

// MakeChooser always succeeds for the default guide.
func (g *DefaultGuide) MakeChooser() (Chooser, bool) {
	return &defaultChooser{guide: g, id: newChooserID()}, true
}

// NodeCount is always 0: the default guide keeps no tree.
func (g *DefaultGuide) NodeCount() int { return 0 }

type defaultChooser struct {
	guide *DefaultGuide
	id    uuid.UUID
}

func (c *defaultChooser) Choose(n int) int {
	if n < 1 {
		violate(InvalidArity, "choose(%d): n must be >= 1", n)
	}
	choice := wsample.Uniform(c.guide.rng, n)
	c.logChoice(n, choice)
	return choice
}

func (c *defaultChooser) Flip() int { return c.Choose(2) }

func (c *defaultChooser) ChooseWeighted(w []float64) int {
	checkWeights(w)
	choice := wsample.Weighted(c.guide.rng, w)
	c.logChoice(len(w), choice)
	return choice
}

// logChoice records the decision even though the default guide keeps no
// tree; nodeIdx and level are meaningless here, so both are logged as -1
// rather than reusing bfs.go/weighted.go's node-indexed convention.
func (c *defaultChooser) logChoice(n, choice int) {
	debugLog(c.guide.opts.logger, "default", c.id.String(), -1, -1, n)
	if t := c.guide.opts.trace; t != nil {
		t.add(TraceEntry{ChooserID: c.id.String(), NodeIdx: -1, Level: -1, Choice: choice})
	}
}

func (c *defaultChooser) ChooseUnimportant() int64 {
	return wsample.FullRange(c.guide.rng)
}

func (c *defaultChooser) Commit() {}

func (c *defaultChooser) ID() uuid.UUID { return c.id }
