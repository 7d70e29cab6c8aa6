package avl

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K, V any] struct {
	idTable map[*Node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*Node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(node *Node[K, V]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K, V]) alloc(node *Node[K, V]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// WriteDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Absent children of inner nodes are drawn as small
// empty circles.
func (t *Tree[K, V]) WriteDot(w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[K, V]()
	nilid := 0
	t.preorder(func(node *Node[K, V]) {
		ID := ids.alloc(node)
		label := dotEscape(fmt.Sprintf("%v", node.key))
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\\nh=%d bf=%+d\" %s];\n",
			ID, label, node.height, node.BalanceFactor(), nodeDotStyles(node))
		if node.left == nil && node.right == nil {
			return
		}
		for _, child := range [...]*Node[K, V]{node.left, node.right} {
			if child == nil {
				nilid--
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		}
	})
	var bf strings.Builder
	bf.WriteString("strict digraph {\n")
	bf.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	bf.WriteString(nodelist.String())
	bf.WriteString(edgelist.String())
	bf.WriteString("}\n")
	_, err := io.WriteString(w, bf.String())
	if err != nil {
		T().Errorf("avl DOT: %s", err.Error())
	}
	return err
}

// preorder visits every node before its children.
func (t *Tree[K, V]) preorder(fn func(*Node[K, V])) {
	if t.IsEmpty() {
		return
	}
	stack := []*Node[K, V]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(n)
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[K, V any](node *Node[K, V]) string {
	s := ",style=filled,shape=box"
	bf := node.BalanceFactor()
	if bf < -1 || bf > 1 {
		bf = 0
	}
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[bf+1])
	return s
}

// fill colors for balance factors -1, 0, +1
var hexcolors = [...]string{"#FFCCAA", "white", "#AACCFF"}
