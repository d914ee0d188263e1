// Package demogen provides sample decision-tree generators that exercise
// the Chooser contract from outside pathguide, the same role
// original_source/tester.cpp's test1/test2 play for the reference
// implementation: an external client repeatedly calling choose/flip while
// building up a result.
//
// This is deliberately outside the core library (spec.md §1 names "any
// particular generator of test programs" as an external collaborator, not
// part of the core) but is needed by cmd/pathguide and by integration
// tests to drive the guides against a concrete decision tree.
package demogen

import "github.com/kuandriy/pathguide"

// FixedArity builds a path of depth choose(arity) calls and returns the
// resulting digits, most significant first, mirroring tester.cpp's
// test2_helper (depth-bounded recursion accumulating choose(2) results).
func FixedArity(c pathguide.Chooser, depth, arity int) []int {
	path := make([]int, depth)
	for i := 0; i < depth; i++ {
		path[i] = c.Choose(arity)
	}
	return path
}

// FlipUntilZero repeatedly flips up to maxDepth times, stopping as soon as
// a flip returns 0, and returns the number of flips taken. This mirrors
// tester.cpp's test1 (flip-until-zero loop over a fixed depth bound) and is
// used to exercise spec.md §8's S2 scenario shape.
func FlipUntilZero(c pathguide.Chooser, maxDepth int) int {
	for i := 0; i < maxDepth; i++ {
		if c.Flip() == 0 {
			return i
		}
	}
	return maxDepth
}

// WeightedArity builds a path of depth choose_weighted(weights) calls and
// returns the resulting digits. Used to exercise the weighted-sampler
// guide's base-distribution installation and the default guide's
// choose_weighted convergence property (spec.md §8 S5/S4).
func WeightedArity(c pathguide.Chooser, depth int, weights []float64) []int {
	path := make([]int, depth)
	for i := 0; i < depth; i++ {
		path[i] = c.ChooseWeighted(weights)
	}
	return path
}

// EncodeBinaryPath folds a binary decision path (each element 0 or 1) into
// a single integer leaf index, most significant bit first, so leaves of a
// balanced binary generator can be counted and compared directly (spec.md
// §8 S3/S5 need a canonical leaf identifier).
func EncodeBinaryPath(path []int) int {
	n := 0
	for _, bit := range path {
		n = n<<1 | bit
	}
	return n
}
