package rrb

import (
	"github.com/npillmayer/rrb/rrbtree"
)

// Builder incrementally collects values and freezes them into a Vector.
//
// The builder owns a transient version of the trie: nodes created under its
// owner token are mutated in place, and appends go through a widened tail
// buffer, making bulk construction O(N). Calling Vector freezes the staged
// contents; unlike with one-shot builders it is legal to keep pushing
// afterwards — the frozen vector is not affected.
//
// A builder is exclusively owned by the code path holding it; concurrent
// mutation of a single builder is undefined. Clients must use NewBuilder,
// NewBuilderWith or BuilderOf.
type Builder[T any] struct {
	tr *rrbtree.Transient[T]
}

// NewBuilder creates a new and empty vector builder with the default tail
// capacity of LeafCapacity.
func NewBuilder[T any]() *Builder[T] {
	b, err := NewBuilderWith[T](LeafCapacity)
	assert(err == nil, "builder: default tail capacity rejected")
	return b
}

// NewBuilderWith creates a new and empty vector builder with the given tail
// capacity, which must be a positive multiple of LeafCapacity. Large
// capacities (typically FatTailCapacity) amortize long push sequences.
func NewBuilderWith[T any](capacity int) (*Builder[T], error) {
	tr, err := rrbtree.NewTransient[T](capacity)
	if err != nil {
		return nil, ErrInvalidCapacity
	}
	return &Builder[T]{tr: tr}, nil
}

// BuilderOf creates a builder holding the contents of v. The vector's trie
// is shared until the builder writes to it.
func BuilderOf[T any](v Vector[T]) *Builder[T] {
	tr, err := rrbtree.TransientOf(v.treeOrEmpty(), LeafCapacity)
	assert(err == nil, "builder: transient of vector failed")
	return &Builder[T]{tr: tr}
}

// Len returns the number of staged values.
func (b *Builder[T]) Len() int {
	if b == nil {
		return 0
	}
	return b.tr.Len()
}

// At returns the staged value at index i.
func (b *Builder[T]) At(i int) (T, error) {
	var zero T
	if b == nil {
		return zero, ErrIndexOutOfBounds
	}
	x, err := b.tr.At(i)
	return x, mapErr(err)
}

// Set replaces the staged value at index i in place.
func (b *Builder[T]) Set(i int, x T) error {
	if b == nil {
		return ErrIndexOutOfBounds
	}
	return mapErr(b.tr.Set(i, x))
}

// Push appends x to the staged values.
func (b *Builder[T]) Push(x T) {
	b.tr.Push(x)
}

// Vector freezes the staged values into a vector. The builder stays usable
// and still holds the same values; edits after freezing copy on write and
// leave the returned vector unchanged.
func (b *Builder[T]) Vector() Vector[T] {
	if b == nil {
		return Vector[T]{}
	}
	t := b.tr.Freeze()
	if t.Len() == 0 {
		tracer().Debugf("vector builder: vector is empty")
	}
	return vectorOf(t)
}
