package rrb

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func setupTracing(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

func TestVectorZeroValue(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	var v Vector[string]
	if !v.IsEmpty() || v.Len() != 0 {
		t.Errorf("expected zero-value vector to be empty")
	}
	if _, err := v.At(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected out-of-bounds error, got %v", err)
	}
	if err := v.Check(); err != nil {
		t.Errorf("expected zero-value vector to pass integrity check, got %v", err)
	}
}

func TestVectorPushAndIndex(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	v := Empty[int]()
	for i := 0; i < 10000; i++ {
		v = v.Push(i)
	}
	if v.Len() != 10000 {
		t.Fatalf("expected 10000 elements, have %d", v.Len())
	}
	for _, i := range []int{0, 5000, 9999} {
		if v.MustAt(i) != i {
			t.Errorf("expected %d at index %d, have %d", i, i, v.MustAt(i))
		}
	}
}

func TestVectorWithIsNonDestructive(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	s1 := Empty[int]().Push(1).Push(2).Push(3)
	s2, err := s1.With(1, 999)
	if err != nil {
		t.Fatal(err.Error())
	}
	if s1.MustAt(1) != 2 {
		t.Errorf("expected original vector to keep 2 at index 1, has %d", s1.MustAt(1))
	}
	if s2.MustAt(1) != 999 {
		t.Errorf("expected updated vector to hold 999 at index 1, has %d", s2.MustAt(1))
	}
}

func TestVectorPushPopRoundTrip(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	v := FromSlice([]int{1, 2, 3, 4, 5})
	w := v.Push(6)
	if w.MustAt(v.Len()) != 6 {
		t.Errorf("expected pushed 6 at index %d", v.Len())
	}
	back, err := w.Pop()
	if err != nil {
		t.Fatal(err.Error())
	}
	if back.Len() != v.Len() {
		t.Errorf("expected pop to undo push, lengths %d != %d", back.Len(), v.Len())
	}
	for i := 0; i < v.Len(); i++ {
		if back.MustAt(i) != v.MustAt(i) {
			t.Errorf("mismatch at index %d after push/pop", i)
		}
	}
	if _, err := Empty[int]().Pop(); !errors.Is(err, ErrEmptyVector) {
		t.Errorf("expected empty-vector error, got %v", err)
	}
}

func TestVectorFromIterator(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	v := From(func(yield func(int) bool) {
		for i := 0; i < 100; i++ {
			if !yield(i * i) {
				return
			}
		}
	})
	if v.Len() != 100 {
		t.Fatalf("expected 100 elements, have %d", v.Len())
	}
	if v.MustAt(9) != 81 {
		t.Errorf("expected 81 at index 9, have %d", v.MustAt(9))
	}
}

func TestVectorRange(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	v := FromSlice([]int{10, 20, 30})
	sum := 0
	for x := range v.Range() {
		sum += x
	}
	if sum != 60 {
		t.Errorf("expected range sum 60, have %d", sum)
	}
	count := 0
	err := v.Each(func(i int, x int) error {
		if x != (i+1)*10 {
			t.Errorf("unexpected element %d at index %d", x, i)
		}
		count++
		return nil
	})
	if err != nil || count != 3 {
		t.Errorf("expected 3 visits, had %d (%v)", count, err)
	}
}

func TestVectorSliceAndSplit(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	v := Empty[int]()
	for i := 0; i < 100; i++ {
		v = v.Push(i)
	}
	sub, err := v.Slice(2, 5)
	if err != nil {
		t.Fatal(err.Error())
	}
	if sub.Len() != 5 || sub.MustAt(0) != 2 || sub.MustAt(4) != 6 {
		t.Errorf("unexpected slice contents")
	}
	l, r, err := v.Split(40)
	if err != nil {
		t.Fatal(err.Error())
	}
	if l.Len() != 40 || r.Len() != 60 {
		t.Errorf("unexpected split lengths %d/%d", l.Len(), r.Len())
	}
	if r.MustAt(0) != 40 {
		t.Errorf("expected right part to start at 40, has %d", r.MustAt(0))
	}
}

func TestVectorInsertRemove(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	v := Empty[int]()
	for i := 0; i < 1000; i++ {
		v = v.Push(i)
	}
	ins, err := v.Insert(4, 3)
	if err != nil {
		t.Fatal(err.Error())
	}
	if ins.Len() != 1001 || ins.MustAt(4) != 3 || ins.MustAt(5) != 4 {
		t.Errorf("unexpected insert result")
	}
	back, err := ins.Remove(4)
	if err != nil {
		t.Fatal(err.Error())
	}
	if back.Len() != 1000 || back.MustAt(4) != 4 {
		t.Errorf("expected remove to undo insert")
	}
}

func TestVectorStats(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	v := Empty[int]()
	for i := 0; i < 3000; i++ {
		v = v.Push(i)
	}
	s := v.Stats()
	if s.Count != 3000 || s.Height == 0 {
		t.Errorf("unexpected stats %+v", s)
	}
}
