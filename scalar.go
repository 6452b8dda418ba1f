package rstar

import "math"

// Scalar is the numeric type used for point coordinates and distances.
// It admits both floating point and integer instantiations, mirroring
// the generic numeric constraint used throughout the retrieval pack
// (e.g. buivuanh/rtree's `number` constraint) but narrowed to the
// signed types an R-tree's arithmetic (subtraction, negative
// enlargement deltas) actually needs.
type Scalar interface {
	~float32 | ~float64 | ~int | ~int32 | ~int64
}

// Zero returns the additive identity for S.
func Zero[S Scalar]() S {
	return S(0)
}

// One returns the multiplicative identity for S.
func One[S Scalar]() S {
	return S(1)
}

// Infinity returns a positive-infinity sentinel for S. Floating point
// instantiations use math.Inf(1). Integer instantiations have no native
// infinity, so the maximum representable value is used instead, per the
// substitution this design documents: two sentinel values are never
// added together by any operation in this package, so the lack of
// saturating arithmetic never causes a wraparound.
func Infinity[S Scalar]() S {
	var zero S
	switch any(zero).(type) {
	case float32:
		return S(math.Inf(1))
	case float64:
		return S(math.Inf(1))
	case int:
		v := math.MaxInt
		return S(v)
	case int32:
		v := math.MaxInt32
		return S(v)
	case int64:
		v := int64(math.MaxInt64)
		return S(v)
	default:
		v := int64(math.MaxInt64)
		return S(v)
	}
}

// NegInfinity returns the corresponding negative-infinity sentinel.
func NegInfinity[S Scalar]() S {
	var zero S
	switch any(zero).(type) {
	case float32:
		return S(math.Inf(-1))
	case float64:
		return S(math.Inf(-1))
	case int:
		v := math.MinInt
		return S(v)
	case int32:
		v := math.MinInt32
		return S(v)
	case int64:
		v := int64(math.MinInt64)
		return S(v)
	default:
		v := int64(math.MinInt64)
		return S(v)
	}
}

// Min returns the smaller of a and b.
func Min[S Scalar](a, b S) S {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[S Scalar](a, b S) S {
	if a > b {
		return a
	}
	return b
}
