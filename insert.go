package rstar

import "sort"

// insertEntryAtLevel inserts entry (a leaf or a whole subtree) so that
// it becomes a child of a parent at height entry.height+1, performing
// the R* subtree-choice descent and any resulting overflow treatment.
// reinserted tracks, for the whole top-level Insert call, which levels
// have already performed a forced reinsertion; a map is used instead of
// a fixed-size bitmask so that a root split mid-insertion (which grows
// the valid level range) never needs resizing.
func (t *Tree[S, T]) insertEntryAtLevel(entry *node[S, T], reinserted map[int]bool) {
	targetParentHeight := entry.height + 1
	for t.root.height < targetParentHeight {
		t.root = newParent([]*node[S, T]{t.root}, t.root.height+1)
	}
	path := t.chooseSubtreePath(entry.envelope, targetParentHeight)

	parent := path[len(path)-1]
	parent.children = append(parent.children, entry)
	for _, p := range path {
		p.envelope = p.envelope.Merged(entry.envelope)
	}

	t.handleOverflow(path, reinserted)
}

// chooseSubtreePath descends from the root, picking at each Parent the
// child minimizing overlap enlargement (if that child's own children are
// Leaves) or area enlargement (otherwise). It stops upon reaching a node at
// targetHeight, returning the full path from root to that node
// (inclusive).
func (t *Tree[S, T]) chooseSubtreePath(e Envelope[S], targetHeight int) []*node[S, T] {
	path := make([]*node[S, T], 0, t.root.height-targetHeight+1)
	cur := t.root
	path = append(path, cur)
	for cur.height > targetHeight {
		var chosen *node[S, T]
		if cur.height == 2 {
			chosen = chooseByOverlapEnlargement(cur.children, e)
		} else {
			chosen = chooseByAreaEnlargement(cur.children, e)
		}
		path = append(path, chosen)
		cur = chosen
	}
	return path
}

func chooseByAreaEnlargement[S Scalar, T Entry[S]](children []*node[S, T], e Envelope[S]) *node[S, T] {
	var chosen *node[S, T]
	bestEnlargement := Infinity[S]()
	bestArea := Infinity[S]()
	for _, c := range children {
		area := c.envelope.Area()
		enlargement := c.envelope.Merged(e).Area() - area
		if enlargement < bestEnlargement || (enlargement == bestEnlargement && area < bestArea) {
			bestEnlargement = enlargement
			bestArea = area
			chosen = c
		}
	}
	return chosen
}

func chooseByOverlapEnlargement[S Scalar, T Entry[S]](children []*node[S, T], e Envelope[S]) *node[S, T] {
	var chosen *node[S, T]
	bestOverlapEnl := Infinity[S]()
	bestAreaEnl := Infinity[S]()
	bestArea := Infinity[S]()
	for i, c := range children {
		merged := c.envelope.Merged(e)
		overlapBefore := Zero[S]()
		overlapAfter := Zero[S]()
		for j, o := range children {
			if i == j {
				continue
			}
			overlapBefore += c.envelope.IntersectionArea(o.envelope)
			overlapAfter += merged.IntersectionArea(o.envelope)
		}
		overlapEnl := overlapAfter - overlapBefore
		area := c.envelope.Area()
		areaEnl := merged.Area() - area

		better := overlapEnl < bestOverlapEnl ||
			(overlapEnl == bestOverlapEnl && areaEnl < bestAreaEnl) ||
			(overlapEnl == bestOverlapEnl && areaEnl == bestAreaEnl && area < bestArea)
		if better {
			bestOverlapEnl = overlapEnl
			bestAreaEnl = areaEnl
			bestArea = area
			chosen = c
		}
	}
	return chosen
}

// handleOverflow walks path from the inserted-into node up to the root,
// splitting or forced-reinserting any node that now exceeds MaxSize
// children.
func (t *Tree[S, T]) handleOverflow(path []*node[S, T], reinserted map[int]bool) {
	for level := len(path) - 1; level >= 0; level-- {
		n := path[level]
		if len(n.children) <= t.params.MaxSize {
			return
		}
		isRoot := level == 0

		if !isRoot && !reinserted[n.height] {
			reinserted[n.height] = true
			t.forcedReinsertion(path, level, reinserted)
			return
		}

		right := splitNode(n, t.params)
		if isRoot {
			t.root = newParent([]*node[S, T]{n, right}, n.height+1)
			return
		}
		parentOfN := path[level-1]
		parentOfN.children = append(parentOfN.children, right)
		// continue the loop to check parentOfN for overflow too.
	}
}

// forcedReinsertion evicts the ReinsertionCount children of path[level]
// farthest from its envelope center and reinserts them via the normal
// insertion path. This gives an overflowing node one chance per level
// to recover spatial locality by redistributing its worst-placed
// children before resorting to a split.
func (t *Tree[S, T]) forcedReinsertion(path []*node[S, T], level int, reinserted map[int]bool) {
	n := path[level]
	center := n.envelope.Center()

	sort.Slice(n.children, func(i, j int) bool {
		di := n.children[i].envelope.Center().Distance2(center)
		dj := n.children[j].envelope.Center().Distance2(center)
		return di > dj // farthest first
	})

	count := t.params.ReinsertionCount
	if count > len(n.children) {
		count = len(n.children)
	}
	evicted := append([]*node[S, T]{}, n.children[:count]...)
	n.children = n.children[count:]

	for i := level; i >= 0; i-- {
		path[i].recomputeEnvelope()
	}

	for _, e := range evicted {
		t.insertEntryAtLevel(e, reinserted)
	}
}

// splitNode splits an overflowing node (MaxSize+1 children) into two,
// reducing n in place to the first group and returning a new node
// holding the second. The split axis is chosen by summing group margins
// across every valid split position, sorting candidates by both their
// lower and upper bound on each axis; the split position on the chosen
// axis is then the one minimizing overlap area between the two groups.
func splitNode[S Scalar, T Entry[S]](n *node[S, T], params Parameters) *node[S, T] {
	min := params.MinSize
	count := len(n.children)
	dim := n.envelope.Dim()

	bestAxis := 0
	bestByUpper := false
	bestMargin := Infinity[S]()

	for axis := 0; axis < dim; axis++ {
		sortByLower(n.children, axis)
		if m := allDistMargin(n.children, min, count); m < bestMargin {
			bestMargin = m
			bestAxis = axis
			bestByUpper = false
		}
		sortByUpper(n.children, axis)
		if m := allDistMargin(n.children, min, count); m < bestMargin {
			bestMargin = m
			bestAxis = axis
			bestByUpper = true
		}
	}

	if bestByUpper {
		sortByUpper(n.children, bestAxis)
	} else {
		sortByLower(n.children, bestAxis)
	}

	splitIndex := chooseSplitIndex(n.children, min, count)

	right := newParent(append([]*node[S, T]{}, n.children[splitIndex:]...), n.height)
	n.children = n.children[:splitIndex]
	n.recomputeEnvelope()
	return right
}

func sortByLower[S Scalar, T Entry[S]](entries []*node[S, T], axis int) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].envelope.Lower[axis] < entries[j].envelope.Lower[axis]
	})
}

func sortByUpper[S Scalar, T Entry[S]](entries []*node[S, T], axis int) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].envelope.Upper[axis] < entries[j].envelope.Upper[axis]
	})
}

// allDistMargin sums the MarginValue of both groups across every valid
// split position [min, count-min].
func allDistMargin[S Scalar, T Entry[S]](entries []*node[S, T], min, count int) S {
	leftEnv := unionEnvelopes(entries[0:min])
	rightEnv := unionEnvelopes(entries[count-min : count])
	margin := leftEnv.MarginValue() + rightEnv.MarginValue()

	for i := min; i < count-min; i++ {
		leftEnv = leftEnv.Merged(entries[i].envelope)
		margin += leftEnv.MarginValue()
	}
	for i := count - min - 1; i >= min; i-- {
		rightEnv = rightEnv.Merged(entries[i].envelope)
		margin += rightEnv.MarginValue()
	}
	return margin
}

// chooseSplitIndex picks the split position minimizing the overlap area
// between the two groups, tie-breaking on total area.
func chooseSplitIndex[S Scalar, T Entry[S]](entries []*node[S, T], min, count int) int {
	minOverlap := Infinity[S]()
	minArea := Infinity[S]()
	idx := count - min

	for i := min; i <= count-min; i++ {
		leftEnv := unionEnvelopes(entries[:i])
		rightEnv := unionEnvelopes(entries[i:])
		overlap := leftEnv.IntersectionArea(rightEnv)
		area := leftEnv.Area() + rightEnv.Area()

		if overlap < minOverlap || (overlap == minOverlap && area < minArea) {
			minOverlap = overlap
			minArea = area
			idx = i
		}
	}
	return idx
}

func unionEnvelopes[S Scalar, T Entry[S]](entries []*node[S, T]) Envelope[S] {
	e := entries[0].envelope
	for _, c := range entries[1:] {
		e = e.Merged(c.envelope)
	}
	return e
}
