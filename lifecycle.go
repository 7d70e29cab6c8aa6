package avl

// Clone returns a deep copy of the tree. The copy shares no nodes with t,
// and the two trees evolve independently afterwards.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	c := New[K, V]()
	if t == nil {
		return c
	}
	c.root = cloneNodes(t.root)
	c.count = t.count
	return c
}

// Assign replaces the contents of t with a deep copy of other.
// Assigning a tree to itself is a no-op; assigning nil empties t.
func (t *Tree[K, V]) Assign(other *Tree[K, V]) {
	if t == other {
		return
	}
	t.Clear()
	if other == nil {
		return
	}
	t.root = cloneNodes(other.root)
	t.count = other.count
}

// Clear removes all entries from the tree. Nodes are released in post-order,
// children before their parent, with every link severed. The tree remains
// usable.
func (t *Tree[K, V]) Clear() {
	if t == nil {
		return
	}
	if n := release(t.root); n > 0 {
		T().Debugf("avl: released %d nodes", n)
	}
	t.root = nil
	t.count = 0
}

func cloneNodes[K, V any](src *Node[K, V]) *Node[K, V] {
	if src == nil {
		return nil
	}
	type edge struct {
		from, to *Node[K, V]
	}
	root := copyNode(src)
	stack := []edge{{src, root}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.from.left != nil {
			e.to.left = copyNode(e.from.left)
			e.to.left.parent = e.to
			stack = append(stack, edge{e.from.left, e.to.left})
		}
		if e.from.right != nil {
			e.to.right = copyNode(e.from.right)
			e.to.right.parent = e.to
			stack = append(stack, edge{e.from.right, e.to.right})
		}
	}
	return root
}

func copyNode[K, V any](n *Node[K, V]) *Node[K, V] {
	return &Node[K, V]{key: n.key, value: n.value, height: n.height}
}

// release tears down a subtree iteratively and returns the number of nodes
// released. A child is unlinked from its parent when it is pushed, so a node
// is only popped after both of its subtrees are gone.
func release[K, V any](root *Node[K, V]) int {
	if root == nil {
		return 0
	}
	var cnt int
	stack := make([]*Node[K, V], 0, root.height+1)
	stack = append(stack, root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		if l := n.left; l != nil {
			n.left = nil
			stack = append(stack, l)
			continue
		}
		if r := n.right; r != nil {
			n.right = nil
			stack = append(stack, r)
			continue
		}
		stack = stack[:len(stack)-1]
		n.detach()
		cnt++
	}
	return cnt
}
