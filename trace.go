package pathguide

import (
	"fmt"
	"strings"
	"time"
)

// TraceEntry records one materialized decision: which tree node it
// happened at, what level, and the value chosen.
//
// Grounded on internal/guide/guide.go's Entry (an AI response summary
// linked to an intent node); re-themed from "response summary linked to
// an intent node" to "decision linked to a tree node ID" with the same
// eviction mechanics.
type TraceEntry struct {
	ChooserID string
	NodeIdx   int
	Level     int
	Choice    int
	Timestamp int64
}

// Trace is a fixed-capacity ring buffer of trace entries. It is optional
// observability plumbing (spec.md §6): guides work identically whether or
// not one is attached.
type Trace struct {
	entries []TraceEntry
	maxSize int
}

// NewTrace returns a trace buffer holding at most maxSize entries.
func NewTrace(maxSize int) *Trace {
	return &Trace{maxSize: maxSize}
}

// add appends an entry, evicting the oldest if the buffer is full.
func (t *Trace) add(e TraceEntry) {
	e.Timestamp = time.Now().UnixMilli()
	t.entries = append(t.entries, e)
	if len(t.entries) > t.maxSize {
		t.entries = t.entries[len(t.entries)-t.maxSize:]
	}
}

// Entries returns the buffered trace entries, oldest first.
func (t *Trace) Entries() []TraceEntry {
	out := make([]TraceEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Render formats the trace as a human-readable multi-line report.
func (t *Trace) Render() string {
	if len(t.entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Trace:\n")
	for _, e := range t.entries {
		fmt.Fprintf(&b, "  - chooser=%s node=%d level=%d choice=%d\n", e.ChooserID, e.NodeIdx, e.Level, e.Choice)
	}
	return b.String()
}
