package pathguide

// debugLog records one structured decision event on l, falling back to the
// build-tag-selected default when a guide was constructed without
// WithLogger. Guides call this once per Choose/ChooseWeighted call;
// ChooseUnimportant never calls it, since logging it would create the same
// accidental-branching-signal risk spec.md §4.2 warns choose_unimportant
// must avoid.
func debugLog(l sugaredLogger, guideKind, chooserID string, nodeIdx, level, arity int) {
	if l == nil {
		l = debugLogger
	}
	l.Debugw("choose",
		"guide", guideKind,
		"chooser", chooserID,
		"node", nodeIdx,
		"level", level,
		"arity", arity,
	)
}
