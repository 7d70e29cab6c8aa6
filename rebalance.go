package avl

// retraceInsert walks up from a freshly attached leaf. A single (possibly
// double) rotation at the lowest unbalanced ancestor restores the subtree to
// its height before the insert, so the walk ends there. It also ends as soon
// as an ancestor's height did not change.
func (t *Tree[K, V]) retraceInsert(leaf *Node[K, V]) {
	for n := leaf.parent; n != nil; n = n.parent {
		h := n.height
		n.updateHeight()
		if !n.isBalanced() {
			t.rebalance(n)
			return
		}
		if n.height == h {
			return
		}
	}
}

// retraceRemove walks up from the parent of a physically removed node to the
// root. Deletion may shrink a subtree even after a rotation, so every
// ancestor has to be inspected.
func (t *Tree[K, V]) retraceRemove(n *Node[K, V]) {
	for n != nil {
		n.updateHeight()
		if !n.isBalanced() {
			n = t.rebalance(n)
		}
		n = n.parent
	}
}

// rebalance restores the AVL property at n and returns the new root of the
// subtree formerly rooted at n.
func (t *Tree[K, V]) rebalance(n *Node[K, V]) *Node[K, V] {
	switch bf := n.BalanceFactor(); {
	case bf > MaxBalanceFactor: // right heavy
		if n.right.BalanceFactor() < 0 {
			T().Debugf("avl: right-left rotation at %v", n.key)
			t.rotateRight(n.right)
		}
		return t.rotateLeft(n)
	case bf < MinBalanceFactor: // left heavy
		if n.left.BalanceFactor() > 0 {
			T().Debugf("avl: left-right rotation at %v", n.key)
			t.rotateLeft(n.left)
		}
		return t.rotateRight(n)
	}
	return n
}

// rotateLeft lifts the right child of pivot into pivot's slot:
//
//	  p              r
//	 / \            / \
//	a   r    =>    p   c
//	   / \        / \
//	  b   c      a   b
func (t *Tree[K, V]) rotateLeft(pivot *Node[K, V]) *Node[K, V] {
	r := pivot.right
	assert(r != nil, "rotateLeft called without right child")
	T().Debugf("avl: rotate left at %v", pivot.key)
	pivot.right = r.left
	setParent(r.left, pivot)
	t.replace(pivot, r)
	r.left = pivot
	pivot.parent = r
	pivot.updateHeight()
	r.updateHeight()
	return r
}

// rotateRight is the mirror image of rotateLeft.
func (t *Tree[K, V]) rotateRight(pivot *Node[K, V]) *Node[K, V] {
	l := pivot.left
	assert(l != nil, "rotateRight called without left child")
	T().Debugf("avl: rotate right at %v", pivot.key)
	pivot.left = l.right
	setParent(l.right, pivot)
	t.replace(pivot, l)
	l.right = pivot
	pivot.parent = l
	pivot.updateHeight()
	l.updateHeight()
	return l
}
