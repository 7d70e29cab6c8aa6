package avl

import "iter"

// Ascend walks all entries in ascending key order.
//
// Iteration stops early if fn returns false. The tree must not be modified
// during the walk.
func (t *Tree[K, V]) Ascend(fn func(key K, value V) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	stack := make([]*Node[K, V], 0, t.root.height+1)
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n.key, n.value) {
			return
		}
		n = n.right
	}
}

// All returns an iterator over all entries in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.Ascend(yield)
	}
}

// Keys returns all keys in ascending order. Every call allocates a new slice;
// for an empty tree the slice is empty.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.Size())
	t.Ascend(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Values returns all values, ordered by ascending key. The order matches the
// one of Keys at the time of the call.
func (t *Tree[K, V]) Values() []V {
	values := make([]V, 0, t.Size())
	t.Ascend(func(_ K, v V) bool {
		values = append(values, v)
		return true
	})
	return values
}
