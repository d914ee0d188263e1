package pathguide

import "fmt"

// ViolationKind classifies a client contract violation (spec.md §7).
type ViolationKind int

const (
	// ReentrantChooser means MakeChooser was called while a chooser from
	// the same guide was still live.
	ReentrantChooser ViolationKind = iota
	// ArityMismatch means a generator presented a different n at a tree
	// node than the n it presented the first time that node was visited.
	ArityMismatch
	// InvalidArity means choose was called with n < 1.
	InvalidArity
	// InvalidWeights means choose_weighted was called with an empty
	// weight slice, a negative element, or a non-positive total weight.
	InvalidWeights
	// ReplayOverrun means a BFS chooser's planned prefix was exhausted
	// while the invariant required at least one more planned choice, or
	// a planned choice remained unconsumed at drop time.
	ReplayOverrun
)

func (k ViolationKind) String() string {
	switch k {
	case ReentrantChooser:
		return "reentrant chooser"
	case ArityMismatch:
		return "arity mismatch"
	case InvalidArity:
		return "invalid arity"
	case InvalidWeights:
		return "invalid weights"
	case ReplayOverrun:
		return "replay overrun"
	default:
		return "unknown violation"
	}
}

// ContractViolation reports a fatal client contract violation. Per
// spec.md §7, these indicate a bug in the generator, not the guide; the
// library panics with a ContractViolation value rather than returning an
// error, since Choose and friends have no error return in the contract.
type ContractViolation struct {
	Kind ViolationKind
	Msg  string
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("pathguide: %s: %s", e.Kind, e.Msg)
}

func violate(kind ViolationKind, format string, args ...any) {
	panic(&ContractViolation{Kind: kind, Msg: fmt.Sprintf(format, args...)})
}

// checkWeights enforces spec.md §3's "non-negative" requirement on a
// choose_weighted argument before it ever reaches internal/wsample: an
// empty slice, a negative element, or a non-positive total are all fatal.
func checkWeights(w []float64) {
	if len(w) == 0 {
		violate(InvalidWeights, "choose_weighted: weights must be non-empty")
	}
	var total float64
	for i, v := range w {
		if v < 0 {
			violate(InvalidWeights, "choose_weighted: weight[%d] = %v, must be non-negative", i, v)
		}
		total += v
	}
	if total <= 0 {
		violate(InvalidWeights, "choose_weighted: weights must have a positive total, got %v", total)
	}
}
