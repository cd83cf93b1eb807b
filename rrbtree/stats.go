package rrbtree

// Stats reports occupancy figures of a tree, mainly for diagnostics and
// structure dumps.
type Stats struct {
	Count    int     // total number of elements
	Height   int     // trie height; 0 means the trie is empty
	Leaves   int     // number of trie leaves
	Branches int     // number of trie branches
	Relaxed  int     // number of branches carrying a size table
	TailLen  int     // values currently buffered in the tail
	Fill     float64 // mean slot occupancy of trie nodes, in [0,1]
}

// Stats collects occupancy figures by walking the trie.
func (t *Tree[T]) Stats() Stats {
	var s Stats
	if t == nil {
		return s
	}
	s.Count = t.count
	s.TailLen = len(t.tail)
	if t.root == nil {
		return s
	}
	s.Height = t.shift/Bits + 1
	used := 0
	nodes := 0
	var walk func(n treeNode[T])
	walk = func(n treeNode[T]) {
		nodes++
		used += n.slots()
		if n.isLeaf() {
			s.Leaves++
			return
		}
		b := n.(*branchNode[T])
		s.Branches++
		if b.relaxed() {
			s.Relaxed++
		}
		for _, child := range b.children {
			walk(child)
		}
	}
	walk(t.root)
	s.Fill = float64(used) / float64(nodes*Degree)
	return s
}

// NodeInfo describes one trie node for structure dumps.
type NodeInfo struct {
	ID      int   // pre-order number, root is 1
	Parent  int   // parent's ID; 0 for the root
	Depth   int   // root is at depth 0
	Leaf    bool  // leaf or branch
	Relaxed bool  // branch carries a size table
	Slots   int   // used child slots or leaf values
	Count   int   // elements in the subtree
	Sizes   []int // copy of the size table, nil for dense branches
}

// EachNode visits all trie nodes pre-order, parents before children.
// Iteration stops early if the callback returns false. The tail buffer is
// not part of the trie and not visited; see Stats.TailLen.
func (t *Tree[T]) EachNode(fn func(NodeInfo) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	next := 1
	var walk func(n treeNode[T], shift, parent, depth int) bool
	walk = func(n treeNode[T], shift, parent, depth int) bool {
		id := next
		next++
		info := NodeInfo{
			ID:     id,
			Parent: parent,
			Depth:  depth,
			Leaf:   n.isLeaf(),
			Slots:  n.slots(),
			Count:  nodeCount(n, shift),
		}
		if b, ok := n.(*branchNode[T]); ok {
			info.Relaxed = b.relaxed()
			if b.sizes != nil {
				info.Sizes = append([]int(nil), b.sizes...)
			}
		}
		if !fn(info) {
			return false
		}
		if b, ok := n.(*branchNode[T]); ok {
			for _, child := range b.children {
				if !walk(child, shift-Bits, id, depth+1) {
					return false
				}
			}
		}
		return true
	}
	walk(t.root, t.shift, 0, 0)
}
