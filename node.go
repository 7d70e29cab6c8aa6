package avl

// Node is a single entry of an AVL tree.
//
// Nodes are owned by their tree and are handed out read-only, e.g. for
// rendering. All accessors are safe to call on a nil node, which stands for an
// absent child.
type Node[K, V any] struct {
	parent *Node[K, V] // non-owning back-reference, nil for the root
	left   *Node[K, V]
	right  *Node[K, V]
	key    K
	value  V
	height int // leaves have height 0
}

func newNode[K, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{key: key, value: value}
}

// Key returns the key of a node.
func (n *Node[K, V]) Key() K {
	if n == nil {
		var zero K
		return zero
	}
	return n.key
}

// Value returns the value stored with a node's key.
func (n *Node[K, V]) Value() V {
	if n == nil {
		var zero V
		return zero
	}
	return n.value
}

// Left returns the left child of a node, or nil.
func (n *Node[K, V]) Left() *Node[K, V] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of a node, or nil.
func (n *Node[K, V]) Right() *Node[K, V] {
	if n == nil {
		return nil
	}
	return n.right
}

// Parent returns the parent of a node, or nil for the root.
func (n *Node[K, V]) Parent() *Node[K, V] {
	if n == nil {
		return nil
	}
	return n.parent
}

// Height returns the cached height of a node. Leaves have height 0, an absent
// node has height -1.
func (n *Node[K, V]) Height() int {
	if n == nil {
		return -1
	}
	return n.height
}

// BalanceFactor returns height(right) − height(left) of a node. For a valid
// tree it is within [MinBalanceFactor, MaxBalanceFactor].
func (n *Node[K, V]) BalanceFactor() int {
	if n == nil {
		return 0
	}
	return n.right.Height() - n.left.Height()
}

func (n *Node[K, V]) isBalanced() bool {
	bf := n.BalanceFactor()
	return bf >= MinBalanceFactor && bf <= MaxBalanceFactor
}

func (n *Node[K, V]) updateHeight() {
	n.height = 1 + max(n.left.Height(), n.right.Height())
}

func (n *Node[K, V]) leftmost() *Node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *Node[K, V]) rightmost() *Node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// detach severs all links of a node and drops its payload.
func (n *Node[K, V]) detach() {
	var zk K
	var zv V
	n.parent, n.left, n.right = nil, nil, nil
	n.key, n.value = zk, zv
}

func setParent[K, V any](n, parent *Node[K, V]) {
	if n != nil {
		n.parent = parent
	}
}
