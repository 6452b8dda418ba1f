package rstar

import "container/heap"

// nnItem is one entry in the best-first search frontier: either an
// unexpanded node (isObj false, key is the envelope's lower-bound
// squared distance to the query point) or a leaf whose exact distance
// has been computed and is now waiting to be delivered (isObj true).
type nnItem[S Scalar, T Entry[S]] struct {
	key   S
	n     *node[S, T]
	isObj bool
}

type nnHeap[S Scalar, T Entry[S]] []nnItem[S, T]

func (h nnHeap[S, T]) Len() int            { return len(h) }
func (h nnHeap[S, T]) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h nnHeap[S, T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nnHeap[S, T]) Push(x interface{}) { *h = append(*h, x.(nnItem[S, T])) }
func (h *nnHeap[S, T]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// NearestNeighborIterator yields a tree's objects in non-decreasing
// distance order from a query point, via a container/heap best-first
// search: nodes are expanded smallest-lower-bound-first, and a leaf is
// only yielded once its exact distance has been computed and shown to
// still be the smallest key in the frontier.
type NearestNeighborIterator[S Scalar, T Entry[S]] struct {
	heap *nnHeap[S, T]
	p    Point[S]
	cur  T
}

func newNearestNeighborIter[S Scalar, T Entry[S]](root *node[S, T], p Point[S]) *NearestNeighborIterator[S, T] {
	h := &nnHeap[S, T]{}
	heap.Init(h)
	if root != nil {
		pushNode(h, root, p)
	}
	return &NearestNeighborIterator[S, T]{heap: h, p: p}
}

func pushNode[S Scalar, T Entry[S]](h *nnHeap[S, T], n *node[S, T], p Point[S]) {
	heap.Push(h, nnItem[S, T]{key: n.envelope.MinDistance2ToPoint(p), n: n})
}

// Next advances to the next-nearest object, returning false once every
// object has been yielded.
func (it *NearestNeighborIterator[S, T]) Next() bool {
	for it.heap.Len() > 0 {
		top := heap.Pop(it.heap).(nnItem[S, T])
		if top.isObj {
			it.cur = top.n.object
			return true
		}
		n := top.n
		if n.leaf {
			exact := exactDistance2(n.object, it.p)
			heap.Push(it.heap, nnItem[S, T]{key: exact, n: n, isObj: true})
			continue
		}
		for _, c := range n.children {
			pushNode(it.heap, c, it.p)
		}
	}
	return false
}

// Item returns the object found by the most recent call to Next.
func (it *NearestNeighborIterator[S, T]) Item() T {
	return it.cur
}

// exactDistance2 returns an object's true squared distance to p,
// preferring its PointLocator.Distance2 when the object implements that
// optional capability and otherwise falling back to the envelope's
// lower-bound distance, which is then exact only in the degenerate case
// where the object's envelope is a single point.
func exactDistance2[S Scalar, T Entry[S]](obj T, p Point[S]) S {
	if pl, ok := any(obj).(PointLocator[S]); ok {
		return pl.Distance2(p)
	}
	return obj.Envelope().MinDistance2ToPoint(p)
}

// NearestNeighborIter returns an iterator over the tree's objects in
// non-decreasing distance order from p.
func (t *Tree[S, T]) NearestNeighborIter(p Point[S]) *NearestNeighborIterator[S, T] {
	return newNearestNeighborIter(t.root, p)
}

// NearestNeighbor returns the object closest to p. If the best-first
// search yields nothing but the tree is non-empty — a degenerate case
// that can only arise from pathological floating-point rounding — it
// falls back to an arbitrary element via plain iteration rather than
// reporting no result for a non-empty tree.
func (t *Tree[S, T]) NearestNeighbor(p Point[S]) (T, bool) {
	it := t.NearestNeighborIter(p)
	if it.Next() {
		return it.Item(), true
	}
	if t.size > 0 {
		all := newIterator[S, T](t.root, SelectAll[S, T]())
		if all.Next() {
			return all.Item(), true
		}
	}
	var zero T
	return zero, false
}
