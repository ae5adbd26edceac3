package tree

import "sort"

// Node is a fixed-capacity container holding an ordered run of values and,
// unless it is a leaf, one more child link than it has values. Node
// operations are purely structural: they never recurse into a subtree.
type Node[T any] struct {
	Values   []T
	Children []*Node[T]
}

// isLeaf reports whether n has no children. Leafness is derivable from this
// alone; there is no separate flag to keep in sync.
func (n *Node[T]) isLeaf() bool {
	return len(n.Children) == 0
}

// full reports whether n already holds the maximum number of values.
func (n *Node[T]) full(maxKeys int) bool {
	return len(n.Values) == maxKeys
}

// minimal reports whether n holds exactly the minimum number of values.
func (n *Node[T]) minimal(minKeys int) bool {
	return len(n.Values) == minKeys
}

// search returns (found, index). If v is present, found is true and index
// is its position. Otherwise found is false and index is the position of
// the child to descend into: the first position whose value exceeds v, or
// len(n.Values) if none does.
func (n *Node[T]) search(v T, less LessFunc[T]) (bool, int) {
	idx := sort.Search(len(n.Values), func(i int) bool {
		return !less(n.Values[i], v)
	})
	if idx < len(n.Values) && !less(v, n.Values[idx]) {
		return true, idx
	}
	return false, idx
}

// maxValue returns the largest value in the subtree rooted at n, following
// rightmost children down to a leaf.
func (n *Node[T]) maxValue() T {
	cur := n
	for !cur.isLeaf() {
		cur = cur.Children[len(cur.Children)-1]
	}
	return cur.Values[len(cur.Values)-1]
}

// minValue returns the smallest value in the subtree rooted at n, following
// leftmost children down to a leaf.
func (n *Node[T]) minValue() T {
	cur := n
	for !cur.isLeaf() {
		cur = cur.Children[0]
	}
	return cur.Values[0]
}
