package frontier

import "testing"

func TestPopOrdersByLevelThenFIFO(t *testing.T) {
	f := New()
	f.Push(10, 2)
	f.Push(11, 0)
	f.Push(12, 1)
	f.Push(13, 0)

	want := []int{11, 13, 12, 10}
	for _, w := range want {
		got, ok := f.Pop()
		if !ok {
			t.Fatalf("Pop() ok=false, want more entries")
		}
		if got != w {
			t.Fatalf("Pop() = %d, want %d", got, w)
		}
	}
	if _, ok := f.Pop(); ok {
		t.Fatal("expected frontier to be empty")
	}
}

func TestReinsertionGoesBehindSiblings(t *testing.T) {
	f := New()
	f.Push(1, 0)
	f.Push(2, 0)

	got, _ := f.Pop()
	if got != 1 {
		t.Fatalf("Pop() = %d, want 1", got)
	}
	f.Push(1, 0) // re-insert at same level

	got, _ = f.Pop()
	if got != 2 {
		t.Fatalf("Pop() = %d, want 2 (sibling ahead of re-inserted node)", got)
	}
	got, _ = f.Pop()
	if got != 1 {
		t.Fatalf("Pop() = %d, want 1", got)
	}
}

func TestEmptyAndLen(t *testing.T) {
	f := New()
	if !f.Empty() {
		t.Fatal("new frontier should be empty")
	}
	f.Push(1, 0)
	if f.Empty() || f.Len() != 1 {
		t.Fatalf("Empty()=%v Len()=%d after one push", f.Empty(), f.Len())
	}
}
