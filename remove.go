package rstar

// removeFrom recursively searches n's children for an object matching
// sel, removing it in place. On success it also condenses any child
// that drops below minSize children, returning evicted subtrees so the
// caller can reinsert them; recursive descent makes the collected
// orphan list unwind naturally level by level as the call stack pops.
func removeFrom[S Scalar, T Entry[S]](n *node[S, T], sel Selector[S, T], minSize int) (T, bool, []*node[S, T]) {
	for i, c := range n.children {
		if c.leaf {
			if !sel.ShouldYield(c.object) {
				continue
			}
			obj := c.object
			n.children = append(n.children[:i:i], n.children[i+1:]...)
			n.recomputeEnvelope()
			return obj, true, nil
		}

		if !sel.ShouldDescend(c.envelope) {
			continue
		}
		obj, ok, orphans := removeFrom(c, sel, minSize)
		if !ok {
			continue
		}

		if len(c.children) < minSize {
			n.children = append(n.children[:i:i], n.children[i+1:]...)
			orphans = append(orphans, c)
		} else {
			c.recomputeEnvelope()
		}
		n.recomputeEnvelope()
		return obj, true, orphans
	}
	var zero T
	return zero, false, nil
}

// RemoveWithSelector removes and returns the first object for which sel
// yields true, descending only into subtrees sel.ShouldDescend accepts.
// Nodes left underflowing by the removal are dissolved, and each of their
// remaining children is reinserted at its own level.
func (t *Tree[S, T]) RemoveWithSelector(sel Selector[S, T]) (T, bool) {
	obj, ok, orphans := removeFrom(t.root, sel, t.params.MinSize)
	if !ok {
		var zero T
		return zero, false
	}
	t.size--

	// A dissolved node is itself underfull, so it can't go back in as
	// one unit; its surviving children are each still valid subtrees and
	// reinsert at their own level.
	reinserted := map[int]bool{}
	for _, o := range orphans {
		for _, c := range o.children {
			t.insertEntryAtLevel(c, reinserted)
		}
	}
	t.shrinkRoot()
	if t.size == 0 {
		t.root = newParent[S, T](nil, 1)
	}
	return obj, true
}

// RemoveAtPoint removes and returns one object located at p. When
// several objects sit at the same point, which one is removed is
// unspecified.
func (t *Tree[S, T]) RemoveAtPoint(p Point[S]) (T, bool) {
	return t.RemoveWithSelector(SelectAtPoint[S, T](p))
}

// Remove removes obj, requiring T's equality.
func (t *Tree[S, T]) Remove(obj T) (T, bool) {
	return t.RemoveWithSelector(SelectEquals[S, T](obj))
}

// Contains reports whether obj is present in the tree.
func (t *Tree[S, T]) Contains(obj T) bool {
	it := newIterator[S, T](t.root, SelectEquals[S, T](obj))
	return it.Next()
}

// shrinkRoot collapses a chain of single-Parent-child roots down to the
// lowest root that still carries real fan-out, keeping tree height equal
// to the true depth of its content.
func (t *Tree[S, T]) shrinkRoot() {
	for !t.root.leaf && len(t.root.children) == 1 && !t.root.children[0].leaf {
		t.root = t.root.children[0]
	}
}
