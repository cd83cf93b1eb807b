package rrbtree

// Push returns a new tree with v appended. While the tail has room the trie
// is untouched; a full tail is installed as the rightmost leaf first.
func (t *Tree[T]) Push(v T) *Tree[T] {
	if t == nil {
		t = Empty[T]()
	}
	c := t.clone()
	c.count++
	if len(t.tail) < Degree {
		tail := make([]T, len(t.tail)+1)
		copy(tail, t.tail)
		tail[len(t.tail)] = v
		c.tail = tail
		return c
	}
	c.root, c.shift = pushLeaf(t.root, t.shift, newLeaf(t.tail, nil), nil)
	c.tail = []T{v}
	return c
}

// pushLeaf installs leaf as the new rightmost leaf of the trie, growing the
// trie by one level when the right spine is full.
func pushLeaf[T any](root treeNode[T], shift int, leaf *leafNode[T], tag *owner) (treeNode[T], int) {
	if root == nil {
		return leaf, 0
	}
	if shift == 0 {
		return newBranch(Bits, tag, root, leaf), Bits
	}
	b := root.(*branchNode[T])
	if pushed := pushLeafDown(b, shift, leaf, tag); pushed != nil {
		return pushed, shift
	}
	grown := newBranch(shift+Bits, tag, root, newPath(shift, leaf, tag))
	return grown, shift + Bits
}

// pushLeafDown descends the right spine and installs leaf at the lowest
// level with room. It returns nil when every slot on the spine is full.
func pushLeafDown[T any](b *branchNode[T], shift int, leaf *leafNode[T], tag *owner) treeNode[T] {
	last := len(b.children) - 1
	if shift == Bits {
		lastLeaf := b.children[last].(*leafNode[T])
		if len(lastLeaf.items)+len(leaf.items) <= Degree {
			merged := make([]T, 0, len(lastLeaf.items)+len(leaf.items))
			merged = append(merged, lastLeaf.items...)
			merged = append(merged, leaf.items...)
			nb := b.editable(tag)
			nb.children[last] = newLeaf(merged, tag)
			if nb.sizes != nil {
				nb.sizes[last] += len(leaf.items)
			}
			return nb
		}
		if len(b.children) < Degree {
			nb := b.editable(tag)
			if nb.sizes == nil && len(lastLeaf.items) < Degree {
				// Appending after a partial leaf would break dense
				// bit-shift navigation into the new slot.
				nb.materializeSizes(shift)
			}
			nb.children = append(nb.children, leaf)
			if nb.sizes != nil {
				nb.sizes = append(nb.sizes, nb.sizes[last]+len(leaf.items))
			}
			return nb
		}
		return nil
	}
	child := b.children[last].(*branchNode[T])
	if pushed := pushLeafDown(child, shift-Bits, leaf, tag); pushed != nil {
		nb := b.editable(tag)
		nb.children[last] = pushed
		if nb.sizes != nil {
			nb.sizes[last] += len(leaf.items)
		} else if isRelaxed(pushed) {
			// A dense branch must not hold a relaxed child.
			nb.materializeSizes(shift)
		}
		return nb
	}
	if len(b.children) < Degree {
		nb := b.editable(tag)
		if nb.sizes == nil &&
			(isRelaxed(nb.children[last]) || nodeCount(nb.children[last], shift-Bits) != 1<<shift) {
			// The last child is about to become an interior child; unless it
			// is exactly full for the level, dense navigation would compute
			// wrong residuals for everything appended after it.
			nb.materializeSizes(shift)
		}
		nb.children = append(nb.children, newPath(shift-Bits, leaf, tag))
		if nb.sizes != nil {
			nb.sizes = append(nb.sizes, nb.sizes[last]+len(leaf.items))
		}
		return nb
	}
	return nil
}
