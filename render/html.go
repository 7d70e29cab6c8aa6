package render

import (
	"cmp"
	"fmt"
	"io"

	"github.com/npillmayer/avl"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes tree as a fragment of nested unordered lists:
//
//	<ul class="avl">
//	  <li><span class="key">20</span><span class="value">…</span><span class="meta">h=1 bf=+0</span>
//	    <ul><li>…10…</li><li>…30…</li></ul>
//	  </li>
//	</ul>
//
// Children are listed left before right. If only one child of a node is
// present, the absent one is rendered as an empty <li class="nil">.
// (Whitespace above is for readability only; no indentation is written.)
func HTML[K cmp.Ordered, V any](tree *avl.Tree[K, V], w io.Writer) error {
	if tree == nil || w == nil {
		return ErrIllegalArguments
	}
	list := element(atom.Ul, "avl")
	if root := tree.Root(); root != nil {
		list.AppendChild(listItem(root))
	}
	if err := html.Render(w, list); err != nil {
		tracer().Errorf("render HTML: %s", err.Error())
		return err
	}
	return nil
}

func listItem[K, V any](n *avl.Node[K, V]) *html.Node {
	li := element(atom.Li, "")
	li.AppendChild(span("key", fmt.Sprintf("%v", n.Key())))
	li.AppendChild(span("value", fmt.Sprintf("%v", n.Value())))
	li.AppendChild(span("meta", fmt.Sprintf("h=%d bf=%+d", n.Height(), n.BalanceFactor())))
	if n.Left() == nil && n.Right() == nil {
		return li
	}
	children := element(atom.Ul, "")
	for _, child := range [...]*avl.Node[K, V]{n.Left(), n.Right()} {
		if child == nil {
			children.AppendChild(element(atom.Li, "nil"))
		} else {
			children.AppendChild(listItem(child))
		}
	}
	li.AppendChild(children)
	return li
}

func span(class, text string) *html.Node {
	s := element(atom.Span, class)
	s.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return s
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
