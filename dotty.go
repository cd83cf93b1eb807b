package rrb

import (
	"fmt"
	"io"

	"github.com/npillmayer/rrb/rrbtree"
)

// Vector2Dot outputs the internal structure of a Vector in Graphviz DOT
// format (for debugging purposes).
//
// Branch nodes are labeled with their subtree element count; relaxed
// branches additionally show their cumulative size table. Leaves show their
// value count, the tail buffer is drawn as a separate box.
func Vector2Dot[T any](v Vector[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	v.EachNode(func(info rrbtree.NodeInfo) bool {
		var label, styles string
		switch {
		case info.Leaf:
			label = fmt.Sprintf("%d", info.Slots)
			styles = "style=filled,fillcolor=lightgray,shape=box"
		case info.Relaxed:
			label = fmt.Sprintf("%d\\n%v", info.Count, info.Sizes)
			styles = "style=filled,fillcolor=lightyellow,shape=ellipse"
		default:
			label = fmt.Sprintf("%d", info.Count)
			styles = "style=filled,fillcolor=lightblue,shape=ellipse"
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", info.ID, label, styles)
		if info.Parent > 0 {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", info.Parent, info.ID)
		}
		return true
	})
	if tl := v.Stats().TailLen; tl > 0 {
		nodelist += fmt.Sprintf("\"tail\" [label=\"tail %d\" style=filled,fillcolor=lightgray,shape=box];\n", tl)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}
