package demogen

import (
	"testing"

	"github.com/kuandriy/pathguide"
)

func TestFixedArityCoversAllLeavesUnderBFS(t *testing.T) {
	seed := int64(1)
	g := pathguide.NewBFS(&seed)

	seen := map[int]bool{}
	for {
		c, ok := g.MakeChooser()
		if !ok {
			break
		}
		path := FixedArity(c, 2, 3)
		seen[path[0]*3+path[1]] = true
		c.Commit()
	}
	if len(seen) != 9 {
		t.Fatalf("saw %d distinct leaves, want 9 (3^2)", len(seen))
	}
}

func TestFlipUntilZeroExhaustsUnderBFS(t *testing.T) {
	seed := int64(2)
	g := pathguide.NewBFS(&seed)

	count := 0
	for {
		c, ok := g.MakeChooser()
		if !ok {
			break
		}
		FlipUntilZero(c, 3)
		c.Commit()
		count++
		if count > 100 {
			t.Fatal("BFS guide never exhausted")
		}
	}
	// Early-stop-at-level-k contributes one leaf per level (1..maxDepth),
	// plus one leaf for running out the clock without stopping: maxDepth+1.
	if count != 4 {
		t.Fatalf("traversal count = %d, want 4 (maxDepth+1 distinct stop points)", count)
	}
}

func TestEncodeBinaryPath(t *testing.T) {
	if got := EncodeBinaryPath([]int{1, 0, 1}); got != 5 {
		t.Fatalf("EncodeBinaryPath = %d, want 5", got)
	}
}
