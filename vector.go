package rrb

import (
	"errors"
	"iter"

	"github.com/npillmayer/rrb/rrbtree"
)

// LeafCapacity is the trie branching factor and the maximum tail length of a
// vector. Builder capacities are multiples of it.
const LeafCapacity = rrbtree.Degree

// FatTailCapacity is the builder tail capacity used for bulk construction.
const FatTailCapacity = 32 * LeafCapacity

// Vector stores an immutable sequence of values in a persistent RRB trie.
//
// A vector created by
//
//	Vector[int]{}
//
// is a valid object and behaves like the empty sequence.
//
// All editing methods return a new vector; the receiver stays valid and
// observably unchanged. Vectors therefore share structure liberally and are
// safe for concurrent reads once fully constructed.
type Vector[T any] struct {
	tree *rrbtree.Tree[T]
}

// Empty returns the empty vector.
func Empty[T any]() Vector[T] {
	return Vector[T]{}
}

// From builds a vector from an iterator, going through a builder.
func From[T any](values iter.Seq[T]) Vector[T] {
	b, err := NewBuilderWith[T](FatTailCapacity)
	assert(err == nil, "vector From: cannot create builder")
	for v := range values {
		b.Push(v)
	}
	return b.Vector()
}

// FromSlice builds a vector holding the values of a slice.
func FromSlice[T any](values []T) Vector[T] {
	return From(func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	})
}

func vectorOf[T any](t *rrbtree.Tree[T]) Vector[T] {
	return Vector[T]{tree: t}
}

func (v Vector[T]) treeOrEmpty() *rrbtree.Tree[T] {
	if v.tree == nil {
		return rrbtree.Empty[T]()
	}
	return v.tree
}

// mapErr translates engine errors into the package error vocabulary.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, rrbtree.ErrIndexOutOfBounds):
		return ErrIndexOutOfBounds
	case errors.Is(err, rrbtree.ErrEmptyTree):
		return ErrEmptyVector
	case errors.Is(err, rrbtree.ErrInvalidCapacity):
		return ErrInvalidCapacity
	}
	return err
}

// Len returns the number of elements in the vector.
func (v Vector[T]) Len() int {
	return v.tree.Len()
}

// IsEmpty reports whether the vector has no elements.
func (v Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// At returns the element at index i.
func (v Vector[T]) At(i int) (T, error) {
	x, err := v.treeOrEmpty().At(i)
	return x, mapErr(err)
}

// MustAt returns the element at index i and panics on an out-of-range index.
func (v Vector[T]) MustAt(i int) T {
	x, err := v.At(i)
	assert(err == nil, "vector index out of bounds")
	return x
}

// With returns a new vector with the element at index i replaced by x.
func (v Vector[T]) With(i int, x T) (Vector[T], error) {
	t, err := v.treeOrEmpty().With(i, x)
	if err != nil {
		return Vector[T]{}, mapErr(err)
	}
	return vectorOf(t), nil
}

// Push returns a new vector with x appended.
func (v Vector[T]) Push(x T) Vector[T] {
	return vectorOf(v.treeOrEmpty().Push(x))
}

// Pop returns a new vector without the last element.
func (v Vector[T]) Pop() (Vector[T], error) {
	t, err := v.treeOrEmpty().Pop()
	if err != nil {
		return Vector[T]{}, mapErr(err)
	}
	return vectorOf(t), nil
}

// PopFirst returns a new vector without the first element.
func (v Vector[T]) PopFirst() (Vector[T], error) {
	t, err := v.treeOrEmpty().PopFirst()
	if err != nil {
		return Vector[T]{}, mapErr(err)
	}
	return vectorOf(t), nil
}

// Insert returns a new vector with x inserted before index i; i may equal
// Len(), which appends.
func (v Vector[T]) Insert(i int, x T) (Vector[T], error) {
	t, err := v.treeOrEmpty().InsertAt(i, x)
	if err != nil {
		return Vector[T]{}, mapErr(err)
	}
	return vectorOf(t), nil
}

// Remove returns a new vector without the element at index i.
func (v Vector[T]) Remove(i int) (Vector[T], error) {
	t, err := v.treeOrEmpty().DeleteAt(i)
	if err != nil {
		return Vector[T]{}, mapErr(err)
	}
	return vectorOf(t), nil
}

// Slice returns the contiguous subrange [start, start+count) as a new
// vector.
func (v Vector[T]) Slice(start, count int) (Vector[T], error) {
	t, err := v.treeOrEmpty().Slice(start, count)
	if err != nil {
		return Vector[T]{}, mapErr(err)
	}
	return vectorOf(t), nil
}

// Split returns the two vectors meeting at index i:
// Split(v,i) => split v into v1 and v2, with v1=x0,...,xi-1 and v2=xi,...,xn.
func (v Vector[T]) Split(i int) (Vector[T], Vector[T], error) {
	l, r, err := v.treeOrEmpty().SplitAt(i)
	if err != nil {
		return Vector[T]{}, Vector[T]{}, mapErr(err)
	}
	return vectorOf(l), vectorOf(r), nil
}

// Concat returns a new vector holding the receiver's elements followed by
// other's.
func (v Vector[T]) Concat(other Vector[T]) Vector[T] {
	return vectorOf(v.treeOrEmpty().Concat(other.treeOrEmpty()))
}

// Range returns an iterator over all elements in order.
func (v Vector[T]) Range() iter.Seq[T] {
	return v.treeOrEmpty().Values()
}

// Each visits all elements in order together with their index. Iteration
// stops at the first callback error and returns that error to the caller.
func (v Vector[T]) Each(f func(i int, x T) error) error {
	return v.treeOrEmpty().Each(f)
}

// Check verifies the structural invariants of the vector's trie. It is a
// testing aid; a healthy vector always passes.
func (v Vector[T]) Check() error {
	return v.treeOrEmpty().Check()
}

// Stats reports occupancy figures of the vector's trie (for diagnostics).
func (v Vector[T]) Stats() rrbtree.Stats {
	return v.treeOrEmpty().Stats()
}

// EachNode visits the trie nodes of the vector pre-order (for diagnostics;
// see Vector2Dot and package dump).
func (v Vector[T]) EachNode(f func(rrbtree.NodeInfo) bool) {
	v.treeOrEmpty().EachNode(f)
}
