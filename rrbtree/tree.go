package rrbtree

import "iter"

// Tree is a persistent indexed sequence over an RRB trie with a tail buffer.
//
// A tree value consists of the trie root (nil when all elements live in the
// tail), the root's shift (Bits times the trie height, 0 for a leaf root),
// the tail (a frozen slice of at most Degree values), and the total element
// count. All mutating operations are persistent: they path-copy the touched
// spine and share everything else, leaving the receiver observably unchanged.
//
// The nil tree is a valid empty tree.
type Tree[T any] struct {
	root  treeNode[T]
	shift int
	tail  []T
	count int
}

// Empty returns the empty tree.
func Empty[T any]() *Tree[T] {
	return &Tree[T]{}
}

// Len returns the number of elements.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// tailOffset returns the number of elements held by the trie part.
func (t *Tree[T]) tailOffset() int {
	return t.count - len(t.tail)
}

func (t *Tree[T]) clone() *Tree[T] {
	c := *t
	return &c
}

// At returns the element at index.
func (t *Tree[T]) At(index int) (T, error) {
	var zero T
	if t == nil || index < 0 || index >= t.count {
		return zero, ErrIndexOutOfBounds
	}
	if off := t.tailOffset(); index >= off {
		return t.tail[index-off], nil
	}
	n, shift := t.root, t.shift
	for shift > 0 {
		b := n.(*branchNode[T])
		slot, sub := b.navigate(shift, index)
		n, index = b.children[slot], sub
		shift -= Bits
	}
	return n.(*leafNode[T]).items[index], nil
}

// With returns a new tree with the element at index replaced by v.
func (t *Tree[T]) With(index int, v T) (*Tree[T], error) {
	if t == nil || index < 0 || index >= t.count {
		return nil, ErrIndexOutOfBounds
	}
	c := t.clone()
	if off := t.tailOffset(); index >= off {
		tail := append([]T(nil), t.tail...)
		tail[index-off] = v
		c.tail = tail
		return c, nil
	}
	c.root = updateNode(t.root, t.shift, index, v, nil)
	return c, nil
}

// updateNode path-copies the root-to-leaf walk of a point write. Nodes owned
// by tag are edited in place instead.
func updateNode[T any](n treeNode[T], shift, index int, v T, tag *owner) treeNode[T] {
	if shift == 0 {
		leaf := n.(*leafNode[T]).editable(tag)
		leaf.items[index] = v
		return leaf
	}
	b := n.(*branchNode[T])
	slot, sub := b.navigate(shift, index)
	nb := b.editable(tag)
	nb.children[slot] = updateNode(nb.children[slot], shift-Bits, sub, v, tag)
	return nb
}

// normalize enforces the root collapse rule: the root is never a branch with
// a single child, and shift reflects the actual trie height.
func (t *Tree[T]) normalize() {
	for t.root != nil && !t.root.isLeaf() {
		b := t.root.(*branchNode[T])
		if len(b.children) != 1 {
			break
		}
		t.root = b.children[0]
		t.shift -= Bits
	}
	if t.root == nil || t.root.isLeaf() {
		t.shift = 0
	}
}

// Each visits all elements in order together with their index. Iteration
// stops at the first callback error and returns that error to the caller.
func (t *Tree[T]) Each(fn func(index int, v T) error) error {
	if t == nil || fn == nil {
		return nil
	}
	index := 0
	var err error
	step := func(v T) bool {
		err = fn(index, v)
		index++
		return err == nil
	}
	if t.root != nil && !forEachNode(t.root, step) {
		return err
	}
	for _, v := range t.tail {
		if !step(v) {
			return err
		}
	}
	return err
}

// Values returns an iterator over all elements in order.
func (t *Tree[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t == nil {
			return
		}
		if t.root != nil && !forEachNode(t.root, yield) {
			return
		}
		for _, v := range t.tail {
			if !yield(v) {
				return
			}
		}
	}
}

func forEachNode[T any](n treeNode[T], fn func(v T) bool) bool {
	if n.isLeaf() {
		for _, v := range n.(*leafNode[T]).items {
			if !fn(v) {
				return false
			}
		}
		return true
	}
	for _, child := range n.(*branchNode[T]).children {
		if !forEachNode(child, fn) {
			return false
		}
	}
	return true
}
