package avl

import (
	"cmp"
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustCheck[K cmp.Ordered, V any](t *testing.T, tree *Tree[K, V]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("inconsistent tree: %v", err)
	}
}

func buildTree(t *testing.T, keys ...int) *Tree[int, string] {
	t.Helper()
	tree := New[int, string]()
	for _, k := range keys {
		if !tree.Insert(k, valueFor(k)) {
			t.Fatalf("Insert(%d) reported duplicate", k)
		}
		mustCheck(t, tree)
	}
	return tree
}

func valueFor(k int) string {
	return "data:" + string(rune('a'+k%26))
}

func TestEmptyTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var tree Tree[int, string]
	if tree.Size() != 0 || !tree.IsEmpty() || tree.Height() != -1 {
		t.Fatalf("unexpected empty tree state size=%d height=%d", tree.Size(), tree.Height())
	}
	mustCheck(t, &tree)
	if _, err := tree.Lookup(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for lookup in empty tree, got %v", err)
	}
	if keys := tree.Keys(); keys == nil || len(keys) != 0 {
		t.Fatalf("expected empty non-nil key slice, got %#v", keys)
	}
	if values := tree.Values(); values == nil || len(values) != 0 {
		t.Fatalf("expected empty non-nil value slice, got %#v", values)
	}
	if _, _, ok := tree.Min(); ok {
		t.Fatalf("expected no minimum in empty tree")
	}
	if tree.Remove(1) {
		t.Fatalf("Remove on empty tree reported success")
	}
}

func TestSingleLeftRotation(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildTree(t, 10, 20, 30)
	if !slices.Equal(tree.Keys(), []int{10, 20, 30}) {
		t.Fatalf("unexpected keys %v", tree.Keys())
	}
	if tree.Height() != 1 {
		t.Errorf("expected height 1 after left rotation, is %d", tree.Height())
	}
	if tree.Root().Key() != 20 {
		t.Errorf("expected 20 to be rotated up to the root, root is %d", tree.Root().Key())
	}
}

func TestSingleRightRotation(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildTree(t, 30, 20, 10)
	if !slices.Equal(tree.Keys(), []int{10, 20, 30}) {
		t.Fatalf("unexpected keys %v", tree.Keys())
	}
	if tree.Height() != 1 || tree.Root().Key() != 20 {
		t.Errorf("expected root 20 with height 1, have root %d with height %d",
			tree.Root().Key(), tree.Height())
	}
}

func TestDoubleRotations(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, input := range [][]int{{30, 10, 20}, {10, 30, 20}} {
		tree := buildTree(t, input...)
		if !slices.Equal(tree.Keys(), []int{10, 20, 30}) {
			t.Fatalf("input %v: unexpected keys %v", input, tree.Keys())
		}
		root := tree.Root()
		if root.Key() != 20 || root.Left().Key() != 10 || root.Right().Key() != 30 {
			t.Errorf("input %v: expected 20 with children 10 and 30 at root", input)
		}
		if root.Left().Parent() != root || root.Right().Parent() != root {
			t.Errorf("input %v: parent links not updated by double rotation", input)
		}
	}
}

func TestRemoveTwoChildren(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildTree(t, 1, 2, 3, 4, 5, 6, 7)
	if tree.Root().Key() != 4 || tree.Height() != 2 {
		t.Fatalf("expected perfect tree rooted at 4, root is %d", tree.Root().Key())
	}
	if !tree.Remove(4) {
		t.Fatalf("Remove(4) failed")
	}
	mustCheck(t, tree)
	if !slices.Equal(tree.Keys(), []int{1, 2, 3, 5, 6, 7}) {
		t.Fatalf("unexpected keys %v", tree.Keys())
	}
	if tree.Size() != 6 {
		t.Errorf("expected size 6, is %d", tree.Size())
	}
	if tree.Root().Key() != 3 {
		t.Errorf("expected predecessor 3 to replace the root, root is %d", tree.Root().Key())
	}
	if v, err := tree.Lookup(3); err != nil || v != valueFor(3) {
		t.Errorf("value of predecessor not moved along with its key: %q, %v", v, err)
	}
}

func TestRemoveLeafAndSingleChild(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildTree(t, 20, 10, 30, 25)
	if !tree.Remove(30) { // one child
		t.Fatalf("Remove(30) failed")
	}
	mustCheck(t, tree)
	if tree.Root().Right().Key() != 25 {
		t.Errorf("expected 25 to be spliced into the slot of 30")
	}
	if !tree.Remove(10) { // leaf
		t.Fatalf("Remove(10) failed")
	}
	mustCheck(t, tree)
	if !slices.Equal(tree.Keys(), []int{20, 25}) {
		t.Fatalf("unexpected keys %v", tree.Keys())
	}
	tree.Remove(20)
	tree.Remove(25)
	mustCheck(t, tree)
	if !tree.IsEmpty() || tree.Size() != 0 {
		t.Fatalf("expected empty tree, size is %d", tree.Size())
	}
}

func TestRemoveRebalancesUpToRoot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// A Fibonacci-shaped tree: removing its shallowest leaf needs a rotation
	// at more than one level.
	tree := buildTree(t, 8, 5, 11, 3, 7, 10, 12, 2, 4, 6, 9, 1)
	h := tree.Height()
	if !tree.Remove(12) {
		t.Fatalf("Remove(12) failed")
	}
	mustCheck(t, tree)
	if tree.Height() > h {
		t.Errorf("height grew on removal: %d > %d", tree.Height(), h)
	}
	if !slices.Equal(tree.Keys(), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}) {
		t.Fatalf("unexpected keys %v", tree.Keys())
	}
}

func TestInsertDuplicateKeepsValue(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := New[string, int]()
	if !tree.Insert("key", 1) {
		t.Fatalf("first insert failed")
	}
	if tree.Insert("key", 2) {
		t.Fatalf("duplicate insert reported success")
	}
	if v, err := tree.Lookup("key"); err != nil || v != 1 {
		t.Fatalf("expected original value 1, have %d (%v)", v, err)
	}
	if tree.Size() != 1 {
		t.Fatalf("duplicate insert changed size to %d", tree.Size())
	}
	mustCheck(t, tree)
}

func TestRemoveAbsentKeepsTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildTree(t, 5, 3, 8)
	keys, values := tree.Keys(), tree.Values()
	if tree.Remove(4) {
		t.Fatalf("Remove of absent key reported success")
	}
	if !slices.Equal(keys, tree.Keys()) || !slices.Equal(values, tree.Values()) || tree.Size() != 3 {
		t.Fatalf("Remove of absent key changed the tree")
	}
}

func TestLookupNotFound(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildTree(t, 5, 3, 8)
	_, err := tree.Lookup(7)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if tree.Contains(7) || !tree.Contains(8) {
		t.Fatalf("Contains does not agree with tree contents")
	}
}

func TestMinMax(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildTree(t, 50, 20, 80, 10, 90, 60)
	if k, v, ok := tree.Min(); !ok || k != 10 || v != valueFor(10) {
		t.Errorf("unexpected minimum %d/%q/%v", k, v, ok)
	}
	if k, _, ok := tree.Max(); !ok || k != 90 {
		t.Errorf("unexpected maximum %d/%v", k, ok)
	}
}

func TestNodeAccessorsNilSafe(t *testing.T) {
	var n *Node[int, string]
	if n.Height() != -1 || n.BalanceFactor() != 0 || n.Left() != nil || n.Right() != nil ||
		n.Parent() != nil || n.Key() != 0 || n.Value() != "" {
		t.Fatalf("accessors of absent node do not return neutral values")
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildTree(t, 2, 1, 3)
	tree.root.left.key = 5
	if err := tree.Check(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ordering violation, got %v", err)
	}
	tree = buildTree(t, 2, 1, 3)
	tree.root.height = 7
	if err := tree.Check(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected height violation, got %v", err)
	}
	tree = buildTree(t, 2, 1, 3)
	tree.root.right.parent = nil
	if err := tree.Check(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected parent violation, got %v", err)
	}
	tree = buildTree(t, 2, 1, 3)
	tree.count = 4
	if err := tree.Check(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected size violation, got %v", err)
	}
	tree = New[int, string]()
	tree.root = newNode(1, "a")
	tree.root.right = newNode(2, "b")
	tree.root.right.parent = tree.root
	tree.root.right.right = newNode(3, "c")
	tree.root.right.right.parent = tree.root.right
	tree.root.right.height = 1
	tree.root.height = 2
	tree.count = 3
	if err := tree.Check(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected balance violation, got %v", err)
	}
}
