package rrbtree

// SplitAt returns the two trees meeting at index: the left holds elements
// 0..index-1, the right holds the rest. When the seam falls inside the trie,
// the left tree receives an empty tail and the right tree inherits the
// receiver's tail; when it falls inside the tail, the left tree keeps the
// trie and the tail is divided between the two.
func (t *Tree[T]) SplitAt(index int) (*Tree[T], *Tree[T], error) {
	if index < 0 || index > t.Len() {
		return nil, nil, ErrIndexOutOfBounds
	}
	if index == 0 {
		return Empty[T](), t, nil
	}
	if index == t.count {
		return t, Empty[T](), nil
	}
	off := t.tailOffset()
	if index >= off {
		// The seam falls into the tail: the trie goes left unchanged.
		left := &Tree[T]{root: t.root, shift: t.shift, count: index}
		if cut := index - off; cut > 0 {
			left.tail = append([]T(nil), t.tail[:cut]...)
		}
		right := &Tree[T]{
			tail:  append([]T(nil), t.tail[index-off:]...),
			count: t.count - index,
		}
		return left, right, nil
	}
	ln, rn := splitNode(t.root, t.shift, index)
	left := &Tree[T]{root: ln, shift: t.shift, count: index}
	left.normalize()
	right := &Tree[T]{root: rn, shift: t.shift, tail: t.tail, count: t.count - index}
	right.normalize()
	return left, right, nil
}

// splitNode splits the subtree before index; 0 < index < nodeCount(n). Each
// reconstructed branch on the seam recomputes its size table; siblings off
// the seam are shared.
func splitNode[T any](n treeNode[T], shift, index int) (treeNode[T], treeNode[T]) {
	if shift == 0 {
		items := n.(*leafNode[T]).items
		return newLeaf(append([]T(nil), items[:index]...), nil),
			newLeaf(append([]T(nil), items[index:]...), nil)
	}
	b := n.(*branchNode[T])
	slot, sub := b.navigate(shift, index)
	if sub == 0 {
		// The seam falls on a child boundary; no child needs splitting.
		lc := append([]treeNode[T](nil), b.children[:slot]...)
		rc := append([]treeNode[T](nil), b.children[slot:]...)
		return newBranch(shift, nil, lc...), newBranch(shift, nil, rc...)
	}
	cl, cr := splitNode(b.children[slot], shift-Bits, sub)
	lc := make([]treeNode[T], 0, slot+1)
	lc = append(lc, b.children[:slot]...)
	lc = append(lc, cl)
	rc := make([]treeNode[T], 0, len(b.children)-slot)
	rc = append(rc, cr)
	rc = append(rc, b.children[slot+1:]...)
	return newBranch(shift, nil, lc...), newBranch(shift, nil, rc...)
}
