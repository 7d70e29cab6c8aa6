package avl

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
)

// Tree is an ordered map from keys of type K to values of type V.
//
// A tree created by
//
//	Tree[K, V]{}
//
// is a valid object and behaves like an empty map.
//
//	Operation     |   Tree          |  Go map
//	--------------+-----------------+---------------
//	Lookup        |   O(log n)      |   O(1) average
//	Insert        |   O(log n)      |   O(1) average
//	Remove        |   O(log n)      |   O(1) average
//	Ordered walk  |   O(n)          |   O(n log n)
//
// Trees trade average-case speed for a predictable depth and deterministic
// ordering.
type Tree[K cmp.Ordered, V any] struct {
	root  *Node[K, V]
	count int
}

// New creates an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Size returns the number of entries in the tree.
func (t *Tree[K, V]) Size() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the height of the root node: -1 for an empty tree, 0 for a
// tree with a single entry.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return -1
	}
	return t.root.Height()
}

// Root returns the root node of the tree, or nil if the tree is empty.
// The node graph must not be modified by clients.
func (t *Tree[K, V]) Root() *Node[K, V] {
	if t == nil {
		return nil
	}
	return t.root
}

// Lookup returns the value stored for key. If key is not present, Lookup
// returns an error wrapping ErrNotFound.
func (t *Tree[K, V]) Lookup(key K) (V, error) {
	if n := t.search(key); n != nil {
		return n.value, nil
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", ErrNotFound, key)
}

// Contains reports whether key is present in the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.search(key) != nil
}

// Min returns the entry with the smallest key. ok is false for an empty tree.
func (t *Tree[K, V]) Min() (key K, value V, ok bool) {
	if t.IsEmpty() {
		return
	}
	n := t.root.leftmost()
	return n.key, n.value, true
}

// Max returns the entry with the largest key. ok is false for an empty tree.
func (t *Tree[K, V]) Max() (key K, value V, ok bool) {
	if t.IsEmpty() {
		return
	}
	n := t.root.rightmost()
	return n.key, n.value, true
}

func (t *Tree[K, V]) search(key K) *Node[K, V] {
	if t == nil {
		return nil
	}
	n := t.root
	for n != nil {
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Insert adds an entry for key. If key is already present, the tree is left
// unchanged (the stored value is not overwritten) and Insert returns false.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	var parent *Node[K, V]
	var c int
	n := t.root
	for n != nil {
		c = cmp.Compare(key, n.key)
		if c == 0 {
			return false
		}
		parent = n
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	leaf := newNode(key, value)
	leaf.parent = parent
	switch {
	case parent == nil:
		t.root = leaf
	case c < 0:
		parent.left = leaf
	default:
		parent.right = leaf
	}
	t.count++
	t.retraceInsert(leaf)
	return true
}

// Remove deletes the entry for key. If key is not present, the tree is left
// unchanged and Remove returns false.
func (t *Tree[K, V]) Remove(key K) bool {
	n := t.search(key)
	if n == nil {
		return false
	}
	if n.left != nil && n.right != nil {
		// The in-order predecessor takes the place of the removed entry and
		// is the node physically unlinked. It has no right child.
		pred := n.left.rightmost()
		T().Debugf("avl: remove %v via predecessor %v", n.key, pred.key)
		n.key, n.value = pred.key, pred.value
		n = pred
	}
	child := n.left
	if child == nil {
		child = n.right
	}
	parent := n.parent
	t.replace(n, child)
	n.detach()
	t.count--
	t.retraceRemove(parent)
	return true
}

// replace puts repl into the slot currently occupied by n.
func (t *Tree[K, V]) replace(n, repl *Node[K, V]) {
	parent := n.parent
	switch {
	case parent == nil:
		t.root = repl
	case parent.left == n:
		parent.left = repl
	default:
		parent.right = repl
	}
	setParent(repl, parent)
}
