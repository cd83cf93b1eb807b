package rrbtree

// DeleteAt returns a new tree without the element at index. Children that
// empty out are dropped on the unwind; a root left with a single child
// collapses, reducing the trie height.
func (t *Tree[T]) DeleteAt(index int) (*Tree[T], error) {
	if t == nil || index < 0 || index >= t.count {
		return nil, ErrIndexOutOfBounds
	}
	if t.count == 1 {
		return Empty[T](), nil
	}
	c := t.clone()
	c.count--
	off := t.tailOffset()
	if index >= off {
		pos := index - off
		tail := make([]T, 0, len(t.tail)-1)
		tail = append(tail, t.tail[:pos]...)
		tail = append(tail, t.tail[pos+1:]...)
		c.tail = tail
		return c, nil
	}
	c.root = removeNode(t.root, t.shift, index)
	c.normalize()
	return c, nil
}

// removeNode removes the element at index from the subtree, returning nil
// when the subtree becomes empty.
func removeNode[T any](n treeNode[T], shift, index int) treeNode[T] {
	if shift == 0 {
		items := n.(*leafNode[T]).items
		if len(items) == 1 {
			return nil
		}
		rest := make([]T, 0, len(items)-1)
		rest = append(rest, items[:index]...)
		rest = append(rest, items[index+1:]...)
		return newLeaf(rest, nil)
	}
	b := n.(*branchNode[T])
	slot, sub := b.navigate(shift, index)
	child := removeNode(b.children[slot], shift-Bits, sub)
	if child == nil {
		if len(b.children) == 1 {
			return nil
		}
		children := make([]treeNode[T], 0, len(b.children)-1)
		children = append(children, b.children[:slot]...)
		children = append(children, b.children[slot+1:]...)
		return newBranch(shift, nil, children...)
	}
	children := append([]treeNode[T](nil), b.children...)
	children[slot] = child
	return newBranch(shift, nil, children...)
}
