package avl

import (
	"cmp"
	"fmt"
)

// Check validates the structural invariants of a tree:
//
//   - keys are in strict binary search tree order,
//   - every node has a balance factor within [MinBalanceFactor, MaxBalanceFactor],
//   - cached heights equal 1 + max(height(left), height(right)),
//   - parent back-references mirror the child links,
//   - Size equals the number of reachable nodes.
//
// The first violation found is returned as an error wrapping ErrCorrupt.
// Check is intended for tests and debugging.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorrupt)
	}
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("%w: root %v has a parent", ErrCorrupt, t.root.key)
	}
	cnt, _, err := checkNode(t.root, nil, nil)
	if err == nil && cnt != t.count {
		err = fmt.Errorf("%w: size is %d, but %d nodes are reachable", ErrCorrupt, t.count, cnt)
	}
	if err != nil {
		T().Errorf("avl check: %s", err.Error())
	}
	return err
}

// checkNode validates the subtree at n, whose keys have to be strictly
// between lo and hi (where nil means unbounded). It returns the number of
// nodes and the height of the subtree.
func checkNode[K cmp.Ordered, V any](n *Node[K, V], lo, hi *K) (count int, height int, err error) {
	if n == nil {
		return 0, -1, nil
	}
	if lo != nil && cmp.Compare(n.key, *lo) <= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not greater than %v", ErrCorrupt, n.key, *lo)
	}
	if hi != nil && cmp.Compare(n.key, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not less than %v", ErrCorrupt, n.key, *hi)
	}
	for _, child := range [...]*Node[K, V]{n.left, n.right} {
		if child != nil && child.parent != n {
			return 0, 0, fmt.Errorf("%w: child %v of %v has wrong parent", ErrCorrupt, child.key, n.key)
		}
	}
	lcnt, lh, err := checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rcnt, rh, err := checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	height = 1 + max(lh, rh)
	if n.height != height {
		return 0, 0, fmt.Errorf("%w: node %v has cached height %d, actual height is %d",
			ErrCorrupt, n.key, n.height, height)
	}
	if bf := rh - lh; bf < MinBalanceFactor || bf > MaxBalanceFactor {
		return 0, 0, fmt.Errorf("%w: node %v has balance factor %d", ErrCorrupt, n.key, bf)
	}
	return lcnt + rcnt + 1, height, nil
}
