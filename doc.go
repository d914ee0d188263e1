// Package pathguide is a decision-tree guidance library for randomized test
// generators. A generator repeatedly asks a Chooser "given N alternatives,
// which one should I take?"; the library answers with an integer in
// [0, N) and, depending on the guide backing the chooser, schedules future
// traversals to explore the generator's decision space.
//
// Three guides are provided: NewDefault (memoryless uniform/weighted
// sampling), NewBFS (exhaustive breadth-first exploration via a priority
// frontier), and NewWeighted (adaptive sampling that reweights by
// estimated subtree size to approximate uniform-over-leaves sampling).
//
// A guide is not safe for concurrent use. Exactly one Chooser may be alive
// per guide at a time; obtain one with MakeChooser, drive a single
// generator traversal with it, then call Commit to release it and apply
// its bookkeeping.
package pathguide
