package rstar

// Tree is an in-memory, N-dimensional R*-tree over objects of type T
// whose coordinates are scalars of type S. Its dimension is fixed by
// the first object stored or bulk-loaded into it.
type Tree[S Scalar, T Entry[S]] struct {
	root   *node[S, T]
	size   int
	params Parameters
	dim    int
}

// New creates an empty tree using DefaultParameters.
func New[S Scalar, T Entry[S]]() *Tree[S, T] {
	t, _ := NewWithParams[S, T](DefaultParameters())
	return t
}

// NewWithParams creates an empty tree using params, validating its fill
// factors.
func NewWithParams[S Scalar, T Entry[S]](params Parameters) (*Tree[S, T], error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &Tree[S, T]{
		root:   newParent[S, T](nil, 1),
		params: params,
	}, nil
}

// BulkLoad builds a tree from objs in one top-down pass using
// DefaultParameters. It is dramatically faster than repeated Insert for
// large, static datasets.
func BulkLoad[S Scalar, T Entry[S]](objs []T) *Tree[S, T] {
	t, _ := BulkLoadWithParams[S, T](objs, DefaultParameters())
	return t
}

// BulkLoadWithParams is BulkLoad with explicit Parameters.
func BulkLoadWithParams[S Scalar, T Entry[S]](objs []T, params Parameters) (*Tree[S, T], error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	t := &Tree[S, T]{params: params}
	if len(objs) > 0 {
		t.dim = objs[0].Envelope().Dim()
	}
	t.root = bulkLoad[S, T](objs, t.dim, params)
	t.size = len(objs)
	return t, nil
}

// Size returns the number of objects stored in the tree.
func (t *Tree[S, T]) Size() int { return t.size }

// Height returns the number of Parent levels between the root and the
// Leaves.
func (t *Tree[S, T]) Height() int { return t.root.height }

// Insert adds obj to the tree via R*-insertion with forced reinsertion.
func (t *Tree[S, T]) Insert(obj T) {
	if t.size == 0 {
		t.dim = obj.Envelope().Dim()
		t.root = newParent[S, T](nil, 1)
		t.root.envelope = NewEmptyEnvelope[S](t.dim)
	}
	t.insertEntryAtLevel(newLeaf[S, T](obj), map[int]bool{})
	t.size++
}

// Iter returns an iterator over every object in the tree, in no
// particular order.
func (t *Tree[S, T]) Iter() *Iterator[S, T] {
	return newIterator[S, T](t.root, SelectAll[S, T]())
}

// IterMut returns an iterator whose items may be mutated through the
// Entry interface's underlying pointer, if T is a pointer type. Callers
// must not change an object's envelope through it: node bounds are
// cached and only recomputed on Insert/Remove, so moving an object
// without removing and reinserting it silently corrupts the tree.
func (t *Tree[S, T]) IterMut() *Iterator[S, T] {
	return t.Iter()
}

// LocateInEnvelope returns an iterator over objects fully contained
// within e.
func (t *Tree[S, T]) LocateInEnvelope(e Envelope[S]) *Iterator[S, T] {
	return newIterator[S, T](t.root, SelectInEnvelopeContained[S, T](e))
}

// LocateInEnvelopeIntersecting returns an iterator over objects whose
// envelope overlaps e.
func (t *Tree[S, T]) LocateInEnvelopeIntersecting(e Envelope[S]) *Iterator[S, T] {
	return newIterator[S, T](t.root, SelectInEnvelopeIntersecting[S, T](e))
}

// LocateAtPoint returns one object located at p, a convenience wrapper
// around LocateAllAtPoint for callers who only need a single match.
func (t *Tree[S, T]) LocateAtPoint(p Point[S]) (T, bool) {
	it := t.LocateAllAtPoint(p)
	if it.Next() {
		return it.Item(), true
	}
	var zero T
	return zero, false
}

// LocateAllAtPoint returns an iterator over every object located at p.
func (t *Tree[S, T]) LocateAllAtPoint(p Point[S]) *Iterator[S, T] {
	return newIterator[S, T](t.root, SelectAtPoint[S, T](p))
}

// LocateInEnvelopeMut, LocateInEnvelopeIntersectingMut, LocateAtPointMut
// and LocateAllAtPointMut are the mutable counterparts of the locate
// methods above. They share IterMut's contract: mutating an object's
// envelope through them corrupts the tree.

func (t *Tree[S, T]) LocateInEnvelopeMut(e Envelope[S]) *Iterator[S, T] {
	return t.LocateInEnvelope(e)
}

func (t *Tree[S, T]) LocateInEnvelopeIntersectingMut(e Envelope[S]) *Iterator[S, T] {
	return t.LocateInEnvelopeIntersecting(e)
}

func (t *Tree[S, T]) LocateAtPointMut(p Point[S]) (T, bool) {
	return t.LocateAtPoint(p)
}

func (t *Tree[S, T]) LocateAllAtPointMut(p Point[S]) *Iterator[S, T] {
	return t.LocateAllAtPoint(p)
}
