package rstar

// Envelope is an axis-aligned bounding box: a pair of points with
// Lower[i] <= Upper[i] on every axis.
type Envelope[S Scalar] struct {
	Lower, Upper Point[S]
}

// NewEmptyEnvelope returns the empty-envelope sentinel for dimension d:
// Lower[i] = +Inf, Upper[i] = -Inf on every axis, so that its area is
// zero and merging it with any envelope yields that envelope unchanged.
func NewEmptyEnvelope[S Scalar](d int) Envelope[S] {
	return Envelope[S]{
		Lower: Generate(d, func(int) S { return Infinity[S]() }),
		Upper: Generate(d, func(int) S { return NegInfinity[S]() }),
	}
}

// EnvelopeFromPoint returns the degenerate envelope containing only p.
func EnvelopeFromPoint[S Scalar](p Point[S]) Envelope[S] {
	return Envelope[S]{Lower: p.Clone(), Upper: p.Clone()}
}

// EnvelopeFromCorners returns the envelope spanning a and b, regardless
// of which corner is componentwise smaller.
func EnvelopeFromCorners[S Scalar](a, b Point[S]) Envelope[S] {
	d := a.Dim()
	lower := Generate(d, func(i int) S { return Min(a[i], b[i]) })
	upper := Generate(d, func(i int) S { return Max(a[i], b[i]) })
	return Envelope[S]{Lower: lower, Upper: upper}
}

// Dim returns the envelope's dimension.
func (e Envelope[S]) Dim() int {
	return e.Lower.Dim()
}

// Merged returns the smallest envelope containing both e and o.
func (e Envelope[S]) Merged(o Envelope[S]) Envelope[S] {
	d := e.Dim()
	return Envelope[S]{
		Lower: Generate(d, func(i int) S { return Min(e.Lower[i], o.Lower[i]) }),
		Upper: Generate(d, func(i int) S { return Max(e.Upper[i], o.Upper[i]) }),
	}
}

// Extend grows e in place to also contain o.
func (e *Envelope[S]) Extend(o Envelope[S]) {
	*e = e.Merged(o)
}

// Area returns the product of e's side lengths, or zero if any side is
// non-positive (including the empty-envelope sentinel).
func (e Envelope[S]) Area() S {
	area := One[S]()
	for i := 0; i < e.Dim(); i++ {
		if e.Upper[i] <= e.Lower[i] {
			return Zero[S]()
		}
		area *= e.Upper[i] - e.Lower[i]
	}
	return area
}

// MarginValue returns the sum of e's side lengths, used as a tie-breaker
// during split axis choice.
func (e Envelope[S]) MarginValue() S {
	sum := Zero[S]()
	for i := 0; i < e.Dim(); i++ {
		side := e.Upper[i] - e.Lower[i]
		if side > Zero[S]() {
			sum += side
		}
	}
	return sum
}

// PerimeterValue is an alias of MarginValue, kept as a distinct name for
// callers that think of the quantity as a perimeter rather than a
// split-axis margin.
func (e Envelope[S]) PerimeterValue() S {
	return e.MarginValue()
}

// IntersectionArea returns the area of the overlap between e and o, or
// zero if they don't overlap on some axis.
func (e Envelope[S]) IntersectionArea(o Envelope[S]) S {
	area := One[S]()
	for i := 0; i < e.Dim(); i++ {
		width := Min(e.Upper[i], o.Upper[i]) - Max(e.Lower[i], o.Lower[i])
		if width <= Zero[S]() {
			return Zero[S]()
		}
		area *= width
	}
	return area
}

// Intersects reports whether e and o overlap; envelopes that only touch
// on a boundary count as intersecting.
func (e Envelope[S]) Intersects(o Envelope[S]) bool {
	for i := 0; i < e.Dim(); i++ {
		if e.Lower[i] > o.Upper[i] || o.Lower[i] > e.Upper[i] {
			return false
		}
	}
	return true
}

// ContainsEnvelope reports whether o lies entirely within e.
func (e Envelope[S]) ContainsEnvelope(o Envelope[S]) bool {
	for i := 0; i < e.Dim(); i++ {
		if o.Lower[i] < e.Lower[i] || o.Upper[i] > e.Upper[i] {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether p lies within e (inclusive of the
// boundary).
func (e Envelope[S]) ContainsPoint(p Point[S]) bool {
	for i := 0; i < e.Dim(); i++ {
		if p[i] < e.Lower[i] || p[i] > e.Upper[i] {
			return false
		}
	}
	return true
}

// MinDistance2ToPoint returns the squared Euclidean distance from p to
// the nearest point of e (zero if p is inside e).
func (e Envelope[S]) MinDistance2ToPoint(p Point[S]) S {
	sum := Zero[S]()
	for i := 0; i < e.Dim(); i++ {
		var d S
		if p[i] < e.Lower[i] {
			d = e.Lower[i] - p[i]
		} else if p[i] > e.Upper[i] {
			d = p[i] - e.Upper[i]
		}
		sum += d * d
	}
	return sum
}

// Center returns the envelope's midpoint.
func (e Envelope[S]) Center() Point[S] {
	two := One[S]() + One[S]()
	return Generate(e.Dim(), func(i int) S { return (e.Lower[i] + e.Upper[i]) / two })
}

// DistanceToCorners returns the squared distances from p to e's Lower
// and Upper corners (componentwise choice of Lower or Upper per axis is
// not enumerated; these two bound the corner distances on each axis
// independently, which suffices for minimax-distance style heuristics).
func (e Envelope[S]) DistanceToCorners(p Point[S]) (lower, upper S) {
	return p.Distance2(e.Lower), p.Distance2(e.Upper)
}
