package pathguide

import "github.com/google/uuid"

// Chooser answers choose-style queries for a single traversal (spec.md
// §3). It is not safe for concurrent use, and must not outlive the
// traversal it was obtained for.
type Chooser interface {
	// Choose returns an integer in [0, n). n must be >= 1.
	Choose(n int) int
	// Flip is shorthand for Choose(2).
	Flip() int
	// ChooseWeighted returns an index into w with probability
	// proportional to w[i]. w must be non-empty with a positive total.
	ChooseWeighted(w []float64) int
	// ChooseUnimportant returns a pseudo-random int64 spanning the full
	// signed range. It never touches tree, frontier, or chooser state,
	// so it never adds a node or a branch to the decision tree. It does
	// advance the guide's PRNG, which later random choices also draw from.
	ChooseUnimportant() int64
	// Commit releases the chooser and applies its bookkeeping to the
	// owning guide. It must be called exactly once, after the traversal
	// ends, before the next MakeChooser call.
	Commit()
	// ID identifies this chooser for trace/log correlation across a long
	// running session.
	ID() uuid.UUID
}

// Guide produces choosers and owns whatever long-lived state a strategy
// needs (tree, PRNG, frontier).
type Guide interface {
	// MakeChooser returns a fresh chooser, or ok=false if the guide has
	// signaled exhaustion (BFS only; default and weighted guides always
	// return ok=true).
	MakeChooser() (c Chooser, ok bool)
	// NodeCount reports the guide's total tree node count (BFS guide), the
	// length of the most recently committed trail (weighted guide), or 0
	// for the default guide, which keeps no tree.
	NodeCount() int
}

func newChooserID() uuid.UUID {
	return uuid.New()
}
