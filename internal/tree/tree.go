package tree

import (
	"cmp"
	"slices"

	"github.com/arboriq/btreeset/pkg/logger"
)

// LessFunc reports whether a sorts strictly before b under the ordering a
// tree is configured with. The value type is polymorphic over this single
// capability: total order plus the equality it implies (neither less(a, b)
// nor less(b, a)).
type LessFunc[T any] func(a, b T) bool

// Tree is an in-memory ordered set backed by a B-tree of the given minimum
// degree. The zero value is not usable; construct one with NewTree or
// NewOrderedTree.
type Tree[T any] struct {
	root   *Node[T]
	degree int
	size   int
	less   LessFunc[T]
	logger *logger.Logger
}

// NewTree constructs an empty set ordered by less, with minimum degree
// degree. A degree below 2 is a programming error and is fatal to the call,
// per this package's contract: there is no recoverable path for a
// malformed tree shape.
func NewTree[T any](degree int, less LessFunc[T], log *logger.Logger) *Tree[T] {
	if degree < 2 {
		log.Panicf("tree: minimum degree must be at least 2, got %d", degree)
	}
	return &Tree[T]{
		root:   &Node[T]{},
		degree: degree,
		less:   less,
		logger: log,
	}
}

// NewOrderedTree constructs an empty set over a built-in ordered type,
// using its natural order. It is a convenience wrapper around NewTree for
// the common case where the caller doesn't need a custom comparator.
func NewOrderedTree[T cmp.Ordered](degree int, log *logger.Logger) *Tree[T] {
	return NewTree(degree, func(a, b T) bool { return a < b }, log)
}

func (t *Tree[T]) maxKeys() int { return 2*t.degree - 1 }
func (t *Tree[T]) minKeys() int { return t.degree - 1 }

// Size returns the number of values currently in the set.
func (t *Tree[T]) Size() int {
	return t.size
}

// Contains reports whether v is in the set.
func (t *Tree[T]) Contains(v T) bool {
	node := t.root
	for {
		found, i := node.search(v, t.less)
		if found {
			return true
		}
		if node.isLeaf() {
			return false
		}
		node = node.Children[i]
	}
}

// Insert adds v to the set. It returns true if v was not previously
// present, false if it was already present (the set is left unchanged).
//
// The algorithm is proactive and top-down: every full node encountered on
// the way down is split before being entered, so insertion needs only a
// single downward pass and never needs to climb back up.
func (t *Tree[T]) Insert(v T) bool {
	if t.root.full(t.maxKeys()) {
		oldRoot := t.root
		t.root = &Node[T]{Children: []*Node[T]{oldRoot}}
		t.root.splitChild(0, t.degree)
	}

	node := t.root
	for {
		found, i := node.search(v, t.less)
		if found {
			return false
		}
		if node.isLeaf() {
			node.Values = slices.Insert(node.Values, i, v)
			t.size++
			return true
		}

		if node.Children[i].full(t.maxKeys()) {
			node.splitChild(i, t.degree)
			switch {
			case !t.less(v, node.Values[i]) && !t.less(node.Values[i], v):
				return false
			case t.less(node.Values[i], v):
				i++
			}
		}
		node = node.Children[i]
	}
}

// Remove deletes v from the set. It returns true if v was present and has
// been removed, false otherwise (the set is left unchanged).
//
// The algorithm is proactive and top-down: before descending into a child,
// the child is first guaranteed to hold more than the minimum number of
// values (by rotation or merge), so a deletion along the path never leaves
// a node underfull.
func (t *Tree[T]) Remove(v T) bool {
	removed := t.removeFrom(t.root, v)
	if removed {
		t.size--
	}
	if !t.root.isLeaf() && len(t.root.Values) == 0 {
		t.root = t.root.Children[0]
	}
	return removed
}

func (t *Tree[T]) removeFrom(node *Node[T], v T) bool {
	found, i := node.search(v, t.less)

	if node.isLeaf() {
		if !found {
			return false
		}
		node.Values = slices.Delete(node.Values, i, i+1)
		return true
	}

	if found {
		t.deleteInternal(node, i, v)
		return true
	}

	if node.Children[i].minimal(t.minKeys()) {
		i = node.ensureChildNotMinimal(i, t.degree)
	}
	return t.removeFrom(node.Children[i], v)
}

// deleteInternal removes the value at index i of an internal node, which
// equals v. It borrows a predecessor or successor from whichever adjacent
// child can spare one, or merges the two children around v and continues
// the deletion into the merged node.
func (t *Tree[T]) deleteInternal(node *Node[T], i int, v T) {
	left, right := node.Children[i], node.Children[i+1]

	switch {
	case len(left.Values) > t.minKeys():
		pred := left.maxValue()
		node.Values[i] = pred
		t.removeFrom(left, pred)
	case len(right.Values) > t.minKeys():
		succ := right.minValue()
		node.Values[i] = succ
		t.removeFrom(right, succ)
	default:
		node.mergeChildren(i)
		t.removeFrom(left, v)
	}
}
