package render

import (
	"cmp"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/avl"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// to control the branch drawn in front of a node
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

var connectors = [...]string{
	rootBranch:  "|------+ ",
	leftBranch:  "\\------+ ",
	rightBranch: "/------+ ",
}

const (
	indent      = "       "
	indentGuide = "|      "
	ellipsis    = "…"
)

// Console writes a sideways ASCII picture of tree to w, one node per line.
// The root is at the left margin, right subtrees are printed above and left
// subtrees below their parent. Every node is labelled with its key (and value,
// if config.ShowValues is set), followed by its height and balance factor:
//
//	       /------+ 30 [h=0 bf=+0]
//	|------+ 20 [h=1 bf=+0]
//	       \------+ 10 [h=0 bf=+0]
//
// Labels which do not fit into config.LineWidth are truncated.
// If config is nil, a configuration is derived from the terminal.
func Console[K cmp.Ordered, V any](tree *avl.Tree[K, V], w io.Writer, config *Config) error {
	if tree == nil || w == nil {
		return ErrIllegalArguments
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p := &consolePrinter[K, V]{w: w, config: config.normalized()}
	p.print(tree.Root(), "", rootBranch)
	return p.err
}

type consolePrinter[K cmp.Ordered, V any] struct {
	w      io.Writer
	config *Config
	err    error // first write error
}

func (p *consolePrinter[K, V]) print(n *avl.Node[K, V], prefix string, br branch) {
	if n == nil || p.err != nil {
		return
	}
	if r := n.Right(); r != nil {
		ext := indent
		if br == leftBranch {
			ext = indentGuide
		}
		p.print(r, prefix+ext, rightBranch)
	}
	p.line(n, prefix+connectors[br])
	if l := n.Left(); l != nil {
		ext := indent
		if br == rightBranch {
			ext = indentGuide
		}
		p.print(l, prefix+ext, leftBranch)
	}
}

func (p *consolePrinter[K, V]) line(n *avl.Node[K, V], lead string) {
	if p.err != nil {
		return
	}
	label := fmt.Sprintf("%v", n.Key())
	if p.config.ShowValues {
		label += fmt.Sprintf(" → %v", n.Value())
	}
	label += fmt.Sprintf(" [h=%d bf=%+d]", n.Height(), n.BalanceFactor())
	if p.config.LineWidth > 0 {
		label = truncate(label, p.config.LineWidth-displayWidth(lead, p.config.Context), p.config.Context)
	}
	var b strings.Builder
	if p.config.Color {
		b.WriteString(p.config.Palette.Branch.Sprint(lead))
		b.WriteString(p.config.Palette.forBalance(n.BalanceFactor()).Sprint(label))
	} else {
		b.WriteString(lead)
		b.WriteString(label)
	}
	b.WriteByte('\n')
	_, p.err = io.WriteString(p.w, b.String())
	if p.err != nil {
		tracer().Errorf("render console: %s", p.err.Error())
	}
}

func displayWidth(s string, context *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// truncate shortens s to at most width cells, marking a cut with an ellipsis.
func truncate(s string, width int, context *uax11.Context) string {
	if displayWidth(s, context) <= width {
		return s
	}
	if width <= 0 {
		return ""
	}
	avail := width - displayWidth(ellipsis, context)
	for len(s) > 0 && displayWidth(s, context) > avail {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
	}
	if avail < 0 {
		return s
	}
	return s + ellipsis
}
