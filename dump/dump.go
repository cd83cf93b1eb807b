/*
Package dump renders the internal structure of rrb vectors for debugging on
a console.

Output is one line per trie node, indented by depth, followed by a summary
line. Dense branches, relaxed branches, leaves and the tail buffer are
color-coded when the output goes to a terminal; styled terminal output is not
clipped. On non-terminal writers the output is plain text and long lines are
clipped to 80 columns.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package dump

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/rrb/rrbtree"
	"golang.org/x/term"
)

// Structure is the part of a vector the printer inspects. rrb.Vector and
// every type forwarding to the engine tree satisfy it.
type Structure interface {
	EachNode(func(rrbtree.NodeInfo) bool)
	Stats() rrbtree.Stats
}

// Printer renders vector structures, coloring them when writing to a
// terminal.
//
// Clients must create printers with NewPrinter.
type Printer struct {
	width    int
	colorize bool
	dense    *color.Color
	relaxed  *color.Color
	leaf     *color.Color
	tail     *color.Color
}

// NewPrinter creates a printer for the given writer. Styling is enabled when
// w is a terminal, and styled lines are not clipped. For other writers, long
// lines are clipped to 80 columns.
func NewPrinter(w io.Writer) *Printer {
	p := &Printer{
		width:   80,
		dense:   color.New(color.FgCyan),
		relaxed: color.New(color.FgYellow),
		leaf:    color.New(color.FgGreen),
		tail:    color.New(color.FgMagenta),
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.colorize = true
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			p.width = cols
		}
	}
	return p
}

// Print renders the trie structure of v to w with default styling.
func Print(w io.Writer, v Structure) {
	NewPrinter(w).Print(w, v)
}

// Print renders the trie structure of v to w.
func (p *Printer) Print(w io.Writer, v Structure) {
	v.EachNode(func(info rrbtree.NodeInfo) bool {
		fmt.Fprintln(w, p.clip(p.nodeLine(info)))
		return true
	})
	stats := v.Stats()
	if stats.TailLen > 0 {
		fmt.Fprintln(w, p.paint(p.tail, fmt.Sprintf("tail    %d value(s)", stats.TailLen)))
	}
	fmt.Fprintln(w, p.clip(summaryLine(stats)))
}

func (p *Printer) nodeLine(info rrbtree.NodeInfo) string {
	indent := strings.Repeat("  ", info.Depth)
	switch {
	case info.Leaf:
		return indent + p.paint(p.leaf, fmt.Sprintf("leaf    %d value(s)", info.Slots))
	case info.Relaxed:
		return indent + p.paint(p.relaxed,
			fmt.Sprintf("relaxed %d child(ren), %d value(s), sizes=%v", info.Slots, info.Count, info.Sizes))
	default:
		return indent + p.paint(p.dense,
			fmt.Sprintf("dense   %d child(ren), %d value(s)", info.Slots, info.Count))
	}
}

func (p *Printer) paint(c *color.Color, s string) string {
	if !p.colorize {
		return s
	}
	return c.Sprint(s)
}

// clip cuts a line down to the output width. Styled lines are never clipped,
// as escape sequences would tear.
func (p *Printer) clip(s string) string {
	if p.colorize || len(s) <= p.width {
		return s
	}
	if p.width <= 1 {
		return s[:1]
	}
	return s[:p.width-1] + "…"
}

func summaryLine(s rrbtree.Stats) string {
	return fmt.Sprintf("%d element(s), height %d, %d branch(es) (%d relaxed), %d leaf(s), fill %.2f",
		s.Count, s.Height, s.Branches, s.Relaxed, s.Leaves, s.Fill)
}
