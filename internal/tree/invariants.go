package tree

// CheckStructure walks the entire tree and verifies every structural
// invariant: sortedness and capacity bounds within each node, ordering of
// every subtree relative to its separators, uniform leaf depth, and that
// the cached size matches the number of values actually reachable from the
// root. It panics on the first violation found; a well-formed tree returns
// normally. This is a diagnostic for tests, not something the hot path
// calls.
func (t *Tree[T]) CheckStructure() {
	leafDepth := -1
	count := t.checkNode(t.root, true, &leafDepth, 0)
	if count != t.size {
		t.logger.Panicf("check_structure: cached size %d but counted %d reachable values", t.size, count)
	}
}

func (t *Tree[T]) checkNode(n *Node[T], isRoot bool, leafDepth *int, depth int) int {
	if !isRoot && len(n.Values) < t.minKeys() {
		t.logger.Panicf("check_structure: non-root node has %d values, fewer than minimum %d", len(n.Values), t.minKeys())
	}
	if len(n.Values) > t.maxKeys() {
		t.logger.Panicf("check_structure: node has %d values, more than maximum %d", len(n.Values), t.maxKeys())
	}
	if isRoot && !n.isLeaf() && len(n.Values) == 0 {
		t.logger.Panicf("check_structure: internal root has zero values")
	}

	for i := 1; i < len(n.Values); i++ {
		if !t.less(n.Values[i-1], n.Values[i]) {
			t.logger.Panicf("check_structure: values not strictly increasing at position %d", i)
		}
	}

	if n.isLeaf() {
		switch {
		case *leafDepth == -1:
			*leafDepth = depth
		case *leafDepth != depth:
			t.logger.Panicf("check_structure: leaf at depth %d, expected %d", depth, *leafDepth)
		}
		return len(n.Values)
	}

	if len(n.Children) != len(n.Values)+1 {
		t.logger.Panicf("check_structure: internal node has %d values but %d children", len(n.Values), len(n.Children))
	}

	count := len(n.Values)
	for i, child := range n.Children {
		if i > 0 && !t.less(n.Values[i-1], child.minValue()) {
			t.logger.Panicf("check_structure: subtree %d is not entirely greater than separator %d", i, i-1)
		}
		if i < len(n.Values) && !t.less(child.maxValue(), n.Values[i]) {
			t.logger.Panicf("check_structure: subtree %d is not entirely less than separator %d", i, i)
		}
		count += t.checkNode(child, false, leafDepth, depth+1)
	}
	return count
}
