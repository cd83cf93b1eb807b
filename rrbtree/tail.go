package rrbtree

// Pop returns a new tree without the last element. When the tail empties the
// rightmost leaf of the trie is promoted to become the new tail, so repeated
// pops stay amortized constant.
func (t *Tree[T]) Pop() (*Tree[T], error) {
	if t == nil || t.count == 0 {
		return nil, ErrEmptyTree
	}
	if t.count == 1 {
		return Empty[T](), nil
	}
	c := t.clone()
	c.count--
	switch {
	case len(t.tail) > 1:
		c.tail = append([]T(nil), t.tail[:len(t.tail)-1]...)
	case len(t.tail) == 1:
		root, promoted := popTail(t.root, t.shift, nil)
		c.root, c.tail = root, promoted
		c.normalize()
	default:
		// Slicing can leave the tail empty; promote first, then drop.
		root, promoted := popTail(t.root, t.shift, nil)
		c.root, c.tail = root, promoted[:len(promoted)-1]
		c.normalize()
	}
	return c, nil
}

// popTail extracts the rightmost leaf of the subtree. It returns the
// remaining subtree (nil when it became empty) and the leaf's items.
func popTail[T any](n treeNode[T], shift int, tag *owner) (treeNode[T], []T) {
	if shift == 0 {
		return nil, n.(*leafNode[T]).items
	}
	b := n.(*branchNode[T])
	last := len(b.children) - 1
	child, promoted := popTail(b.children[last], shift-Bits, tag)
	if child == nil && last == 0 {
		return nil, promoted
	}
	nb := b.editable(tag)
	if child == nil {
		nb.children = nb.children[:last]
		if nb.sizes != nil {
			nb.sizes = nb.sizes[:last]
		}
	} else {
		nb.children[last] = child
		if nb.sizes != nil {
			nb.sizes[last] -= len(promoted)
		}
	}
	return nb, promoted
}
