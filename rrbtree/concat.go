package rrbtree

// Concat returns a new tree holding the receiver's elements followed by
// other's. The receiver's tail is first installed into its trie; the result
// inherits other's tail. Both operands remain valid.
func (t *Tree[T]) Concat(other *Tree[T]) *Tree[T] {
	if t == nil || t.count == 0 {
		if other == nil {
			return Empty[T]()
		}
		return other
	}
	if other == nil || other.count == 0 {
		return t
	}
	lroot, lshift := t.root, t.shift
	if len(t.tail) > 0 {
		lroot, lshift = pushLeaf(lroot, lshift, newLeaf(t.tail, nil), nil)
	}
	c := &Tree[T]{tail: other.tail, count: t.count + other.count}
	if other.root == nil {
		c.root, c.shift = lroot, lshift
	} else {
		c.root, c.shift = concatNodes(lroot, lshift, other.root, other.shift)
	}
	c.normalize()
	return c
}

// concatNodes joins two subtrees at possibly different shifts and returns
// the merged subtree with its shift. The trees meet at matching heights
// along the inner spines; every meeting level runs the redistribution plan.
func concatNodes[T any](l treeNode[T], lshift int, r treeNode[T], rshift int) (treeNode[T], int) {
	switch {
	case lshift > rshift:
		lb := l.(*branchNode[T])
		mid, mshift := concatNodes(lb.children[len(lb.children)-1], lshift-Bits, r, rshift)
		return rebalance(lb, mid, mshift, nil, lshift)
	case lshift < rshift:
		rb := r.(*branchNode[T])
		mid, mshift := concatNodes(l, lshift, rb.children[0], rshift-Bits)
		return rebalance(nil, mid, mshift, rb, rshift)
	case lshift == 0:
		ll := l.(*leafNode[T])
		rl := r.(*leafNode[T])
		if len(ll.items)+len(rl.items) <= Degree {
			merged := make([]T, 0, len(ll.items)+len(rl.items))
			merged = append(merged, ll.items...)
			merged = append(merged, rl.items...)
			return newLeaf(merged, nil), 0
		}
		return newBranch(Bits, nil, l, r), Bits
	default:
		lb := l.(*branchNode[T])
		rb := r.(*branchNode[T])
		mid, mshift := concatNodes(lb.children[len(lb.children)-1], lshift-Bits, rb.children[0], lshift-Bits)
		return rebalance(lb, mid, mshift, rb, lshift)
	}
}

// rebalance runs the redistribution plan at one meeting level. The candidate
// children are: all but the last of left's children, the recursion result
// (either itself, when it sits one level below, or its children when it sits
// at this level), and all but the first of right's children.
func rebalance[T any](left *branchNode[T], center treeNode[T], centerShift int, right *branchNode[T], shift int) (treeNode[T], int) {
	cands := make([]treeNode[T], 0, 2*Degree+1)
	if left != nil {
		cands = append(cands, left.children[:len(left.children)-1]...)
	}
	if centerShift == shift {
		cands = append(cands, center.(*branchNode[T]).children...)
	} else {
		cands = append(cands, center)
	}
	if right != nil {
		cands = append(cands, right.children[1:]...)
	}
	plan, n := redistributionPlan(cands)
	if n < len(cands) {
		tracer().Debugf("rrb concat: rebalance packs %d candidate slots into %d", len(cands), n)
	}
	packed := executePlan(cands, plan[:n], shift)
	if len(packed) <= Degree {
		return newBranch(shift, nil, packed...), shift
	}
	lb := newBranch(shift, nil, packed[:Degree]...)
	rb := newBranch(shift, nil, packed[Degree:]...)
	return newBranch(shift+Bits, nil, lb, rb), shift + Bits
}

// redistributionPlan computes target slot counts for the packed output
// children: greedily slide slots leftward out of underfilled candidates
// until the child count is within extraSlots of the optimum.
func redistributionPlan[T any](cands []treeNode[T]) ([]int, int) {
	plan := make([]int, len(cands))
	total := 0
	for i, c := range cands {
		plan[i] = c.slots()
		total += plan[i]
	}
	optimal := (total + Degree - 1) >> Bits
	n := len(plan)
	i := 0
	for optimal+extraSlots < n {
		for plan[i] > Degree-invariantTolerance {
			i++
		}
		// Steal from the right neighbor until this slot is consumed,
		// carrying overflow along; then compact the emptied slot away.
		remaining := plan[i]
		for remaining > 0 {
			assert(i+1 < n, "redistribution plan ran out of slots")
			size := min(remaining+plan[i+1], Degree)
			plan[i] = size
			remaining = remaining + plan[i+1] - size
			i++
		}
		for j := i; j < n-1; j++ {
			plan[j] = plan[j+1]
		}
		n--
		i--
	}
	return plan, n
}

// executePlan emits one node per plan entry, walking the candidates with a
// cursor. A source node matching its target exactly while the cursor sits at
// offset 0 is reused by reference, which preserves structural sharing on
// already balanced inputs.
func executePlan[T any](cands []treeNode[T], plan []int, shift int) []treeNode[T] {
	out := make([]treeNode[T], len(plan))
	src, offset := 0, 0
	for pi, target := range plan {
		if offset == 0 && cands[src].slots() == target {
			out[pi] = cands[src]
			src++
			continue
		}
		if shift == Bits {
			items := make([]T, 0, target)
			for len(items) < target {
				leaf := cands[src].(*leafNode[T])
				take := min(len(leaf.items)-offset, target-len(items))
				items = append(items, leaf.items[offset:offset+take]...)
				offset += take
				if offset == len(leaf.items) {
					src++
					offset = 0
				}
			}
			out[pi] = newLeaf(items, nil)
		} else {
			children := make([]treeNode[T], 0, target)
			for len(children) < target {
				br := cands[src].(*branchNode[T])
				take := min(len(br.children)-offset, target-len(children))
				children = append(children, br.children[offset:offset+take]...)
				offset += take
				if offset == len(br.children) {
					src++
					offset = 0
				}
			}
			out[pi] = newBranch(shift-Bits, nil, children...)
		}
	}
	return out
}
