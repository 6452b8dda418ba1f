package rstar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectAllYieldsEverything(t *testing.T) {
	tree, items := newPrePopulatedTree(50)
	got := drain(tree.Iter())
	assert.Len(t, got, len(items))
}

func TestSelectInEnvelopeContained(t *testing.T) {
	tree := New[float64, *testPoint]()
	inside := &testPoint{id: 0, x: 2, y: 2}
	outside := &testPoint{id: 1, x: 50, y: 50}
	tree.Insert(inside)
	tree.Insert(outside)

	e := EnvelopeFromCorners(NewPoint(0.0, 0.0), NewPoint(10.0, 10.0))
	got := drain(tree.LocateInEnvelope(e))
	assert.ElementsMatch(t, []*testPoint{inside}, got)
}

func TestSelectInEnvelopeIntersecting(t *testing.T) {
	tree := New[float64, *testBox]()
	a := &testBox{id: 0, lx: 0, ly: 0, ux: 5, uy: 5}
	b := &testBox{id: 1, lx: 4, ly: 4, ux: 9, uy: 9}
	c := &testBox{id: 2, lx: 100, ly: 100, ux: 101, uy: 101}
	tree.Insert(a)
	tree.Insert(b)
	tree.Insert(c)

	query := EnvelopeFromCorners(NewPoint(0.0, 0.0), NewPoint(6.0, 6.0))
	got := drain(tree.LocateInEnvelopeIntersecting(query))
	assert.ElementsMatch(t, []*testBox{a, b}, got)
}

func TestSelectAtPointUsesPointLocator(t *testing.T) {
	tree, _ := newPrePopulatedTree(0)
	p := &testPoint{id: 0, x: 3, y: 3}
	tree.Insert(p)

	found, ok := tree.LocateAtPoint(NewPoint(3.0, 3.0))
	assert.True(t, ok)
	assert.Equal(t, p, found)

	_, ok = tree.LocateAtPoint(NewPoint(999.0, 999.0))
	assert.False(t, ok)
}

func TestSelectEquals(t *testing.T) {
	tree, items := newPrePopulatedTree(20)
	target := items[5]

	it := newIterator[float64, *testPoint](tree.root, SelectEquals[float64, *testPoint](target))
	assert.True(t, it.Next())
	assert.Equal(t, target, it.Item())
	assert.False(t, it.Next())
}

func TestLocateInEnvelopeCounts(t *testing.T) {
	objs := []*testPoint{
		{id: 0, x: 0, y: 0},
		{id: 1, x: 0, y: 1},
		{id: 2, x: 1, y: 1},
	}
	tree := BulkLoad(objs)

	half := EnvelopeFromCorners(NewPoint(0.0, 0.0), NewPoint(0.5, 1.0))
	assert.Len(t, drain(tree.LocateInEnvelope(half)), 2)

	full := EnvelopeFromCorners(NewPoint(0.0, 0.0), NewPoint(1.0, 1.0))
	assert.Len(t, drain(tree.LocateInEnvelope(full)), 3)
}

func TestOverlappingBoxesAtPoint(t *testing.T) {
	tree := New[float64, *testBox]()
	tree.Insert(&testBox{id: 0, lx: 0, ly: 0, ux: 2, uy: 2})
	tree.Insert(&testBox{id: 1, lx: 1, ly: 1, ux: 3, uy: 3})

	assert.Len(t, drain(tree.LocateAllAtPoint(NewPoint(1.5, 1.5))), 2)
	assert.Len(t, drain(tree.LocateAllAtPoint(NewPoint(0.0, 0.0))), 1)

	_, ok := tree.RemoveAtPoint(NewPoint(1.5, 1.5))
	assert.True(t, ok)
	_, ok = tree.RemoveAtPoint(NewPoint(1.5, 1.5))
	assert.True(t, ok)
	_, ok = tree.RemoveAtPoint(NewPoint(1.5, 1.5))
	assert.False(t, ok)
}

// TestEnvelopeQueriesMatchBruteForce checks both envelope query shapes
// against a linear scan over the same random dataset.
func TestEnvelopeQueriesMatchBruteForce(t *testing.T) {
	tree, items := newPrePopulatedTree(400)
	query := EnvelopeFromCorners(NewPoint(200.0, 200.0), NewPoint(700.0, 600.0))

	var wantContained, wantIntersecting []*testPoint
	for _, it := range items {
		if query.ContainsEnvelope(it.Envelope()) {
			wantContained = append(wantContained, it)
		}
		if query.Intersects(it.Envelope()) {
			wantIntersecting = append(wantIntersecting, it)
		}
	}

	assert.ElementsMatch(t, wantContained, drain(tree.LocateInEnvelope(query)))
	assert.ElementsMatch(t, wantIntersecting, drain(tree.LocateInEnvelopeIntersecting(query)))
}

func drain[S Scalar, T Entry[S]](it *Iterator[S, T]) []T {
	var out []T
	for it.Next() {
		out = append(out, it.Item())
	}
	return out
}
