package tree

import "slices"

// splitChild splits the full child at position i into two nodes, lifting
// its median value up into n at position i. Precondition: n is internal and
// n.Children[i] is full. Postcondition: n.Children[i] and the new sibling
// each hold degree-1 values; n holds one more value and one more child.
func (n *Node[T]) splitChild(i, degree int) {
	child := n.Children[i]
	mid := degree - 1
	median := child.Values[mid]

	sibling := &Node[T]{Values: append([]T(nil), child.Values[mid+1:]...)}
	child.Values = child.Values[:mid:mid]

	if !child.isLeaf() {
		sibling.Children = append([]*Node[T](nil), child.Children[degree:]...)
		child.Children = child.Children[:degree:degree]
	}

	n.Values = slices.Insert(n.Values, i, median)
	n.Children = slices.Insert(n.Children, i+1, sibling)
}

// rotateRight moves the parent's separator at i-1 down into the front of
// children[i], and the left sibling's last value up into the parent,
// restoring children[i] to more than minKeys values without changing
// height.
func (n *Node[T]) rotateRight(i int) {
	child := n.Children[i]
	sibling := n.Children[i-1]

	child.Values = slices.Insert(child.Values, 0, n.Values[i-1])
	n.Values[i-1] = sibling.Values[len(sibling.Values)-1]
	sibling.Values = sibling.Values[:len(sibling.Values)-1]

	if !child.isLeaf() {
		moved := sibling.Children[len(sibling.Children)-1]
		sibling.Children = sibling.Children[:len(sibling.Children)-1]
		child.Children = slices.Insert(child.Children, 0, moved)
	}
}

// rotateLeft is the mirror of rotateRight, borrowing from the right
// sibling.
func (n *Node[T]) rotateLeft(i int) {
	child := n.Children[i]
	sibling := n.Children[i+1]

	child.Values = append(child.Values, n.Values[i])
	n.Values[i] = sibling.Values[0]
	sibling.Values = slices.Delete(sibling.Values, 0, 1)

	if !child.isLeaf() {
		moved := sibling.Children[0]
		sibling.Children = slices.Delete(sibling.Children, 0, 1)
		child.Children = append(child.Children, moved)
	}
}

// mergeChildren combines children[i], the separator at i, and children[i+1]
// into children[i], which then holds exactly 2*degree-1 values. The
// separator and the emptied right sibling are removed from n.
func (n *Node[T]) mergeChildren(i int) {
	left, right := n.Children[i], n.Children[i+1]

	left.Values = append(left.Values, n.Values[i])
	left.Values = append(left.Values, right.Values...)
	if !left.isLeaf() {
		left.Children = append(left.Children, right.Children...)
	}

	n.Values = slices.Delete(n.Values, i, i+1)
	n.Children = slices.Delete(n.Children, i+1, i+2)
}

// ensureChildNotMinimal guarantees that children[i] holds more than minKeys
// values before the caller descends into it: it rotates from a non-minimal
// sibling if one exists (preferring the left sibling, a deterministic but
// otherwise arbitrary tie-break), or merges with a sibling otherwise. It
// returns the index to descend into, which shifts left by one if children[i]
// ends up folded into its left sibling by a merge.
func (n *Node[T]) ensureChildNotMinimal(i, degree int) int {
	minKeys := degree - 1
	if !n.Children[i].minimal(minKeys) {
		return i
	}

	if i > 0 && !n.Children[i-1].minimal(minKeys) {
		n.rotateRight(i)
		return i
	}
	if i < len(n.Children)-1 && !n.Children[i+1].minimal(minKeys) {
		n.rotateLeft(i)
		return i
	}

	if i < len(n.Children)-1 {
		n.mergeChildren(i)
		return i
	}
	n.mergeChildren(i - 1)
	return i - 1
}
