package rrbtree

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("rrbtree: index out of bounds")
	// ErrEmptyTree signals a pop operation on an empty tree.
	ErrEmptyTree = errors.New("rrbtree: tree is empty")
	// ErrInvalidCapacity signals a transient tail capacity that is not a
	// positive multiple of Degree.
	ErrInvalidCapacity = errors.New("rrbtree: invalid transient tail capacity")
	// ErrIntegrity signals a structural invariant violation found by Check.
	ErrIntegrity = errors.New("rrbtree: integrity violation")
)
