package rrbtree

import (
	"errors"
	"testing"
)

func TestSliceBasic(t *testing.T) {
	s := pushRange(Empty[int](), 0, 100)
	sub, err := s.Slice(2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mustMatchRange(t, sub, 2, 7)
	mustMatchRange(t, s, 0, 100)
}

func TestSliceRanges(t *testing.T) {
	s := pushRange(Empty[int](), 0, 1000)
	ranges := [][2]int{
		{0, 1000}, {0, 1}, {999, 1}, {0, 993}, {31, 33}, {32, 32},
		{100, 500}, {500, 500}, {963, 37}, {990, 10}, {7, 985},
	}
	for _, r := range ranges {
		sub, err := s.Slice(r[0], r[1])
		if err != nil {
			t.Fatalf("unexpected error for range (%d,%d): %v", r[0], r[1], err)
		}
		mustMatchRange(t, sub, r[0], r[0]+r[1])
	}
}

func TestSliceBounds(t *testing.T) {
	s := pushRange(Empty[int](), 0, 100)
	for _, r := range [][2]int{{-1, 5}, {0, 101}, {50, 51}, {100, 1}, {0, -1}} {
		if _, err := s.Slice(r[0], r[1]); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("expected out-of-bounds error for range (%d,%d), got %v", r[0], r[1], err)
		}
	}
	empty, err := s.Slice(100, 0)
	if err != nil || empty.Len() != 0 {
		t.Fatalf("expected valid empty slice at the right edge, got %v", err)
	}
}

func TestSliceTailInteraction(t *testing.T) {
	// 1056 pushed elements leave 1024 in the trie and 32 in the tail.
	s := pushRange(Empty[int](), 0, Degree*Degree+Degree)
	off := s.tailOffset()
	if off != Degree*Degree {
		t.Fatalf("expected trie to hold %d elements, holds %d", Degree*Degree, off)
	}
	// Range ending inside the tail keeps the trie's right edge untouched.
	sub, err := s.Slice(10, off-10+5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mustMatchRange(t, sub, 10, off+5)
	// Range confined to the tail builds a tail-only tree.
	sub, err = s.Slice(off+3, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.root != nil {
		t.Fatalf("expected a tail-only tree for a pure tail range")
	}
	mustMatchRange(t, sub, off+3, off+23)
}

func TestSliceThenPushRelaxedIndexing(t *testing.T) {
	// A dense 1025-element tree sliced to 993 leaves a root whose last child
	// holds a single element and an empty tail. Pushing must keep indexing
	// into the new elements correct even though the trie is now relaxed.
	s := pushRange(Empty[int](), 0, 1025)
	sliced, err := s.Slice(0, 993)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sliced.tail) != 0 {
		t.Fatalf("expected the slice to leave an empty tail, has %d values", len(sliced.tail))
	}
	pushed := sliced
	for v := 993; v < 993+33; v++ {
		pushed = pushed.Push(v)
	}
	if v, _ := pushed.At(1000); v != 1000 {
		t.Fatalf("expected the 8th pushed value (1000) at index 1000, have %d", v)
	}
	mustMatchRange(t, pushed, 0, 993+33)
}

func TestPopFirstWalks(t *testing.T) {
	s := pushRange(Empty[int](), 0, 300)
	for from := 1; from <= 300; from++ {
		var err error
		s, err = s.PopFirst()
		if err != nil {
			t.Fatalf("unexpected error at %d: %v", from, err)
		}
		if s.Len() != 300-from {
			t.Fatalf("expected %d elements, have %d", 300-from, s.Len())
		}
		if s.Len() > 0 {
			if v, _ := s.At(0); v != from {
				t.Fatalf("expected %d at the front, have %d", from, v)
			}
		}
	}
	if _, err := s.PopFirst(); !errors.Is(err, ErrEmptyTree) {
		t.Fatalf("expected empty-tree error, got %v", err)
	}
}

func TestSplitInTail(t *testing.T) {
	s := pushRange(Empty[int](), 0, Degree*2+10)
	off := s.tailOffset()
	l, r, err := s.SplitAt(off + 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mustMatchRange(t, l, 0, off+4)
	mustMatchRange(t, r, off+4, Degree*2+10)
}

func TestSplitBounds(t *testing.T) {
	s := pushRange(Empty[int](), 0, 10)
	if _, _, err := s.SplitAt(-1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected out-of-bounds error, got %v", err)
	}
	if _, _, err := s.SplitAt(11); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected out-of-bounds error, got %v", err)
	}
}
