package rstar

import "sort"

// quickselect reorders a in place so that the element at index target is
// the one that would occupy that position in a fully sorted order, with
// every element before it comparing less-or-equal and every element
// after it comparing greater-or-equal. The bulk loader uses this to
// slab-partition objects along an axis without paying for a full sort.
//
// Partitioning uses Lomuto's scheme against a median-of-three pivot
// (the low, middle, and high elements of the current window), which
// avoids the random-pivot approach's worst case on already-partially-
// sorted input without needing a random source.
func quickselect(a sort.Interface, target int) {
	lo, hi := 0, a.Len()-1
	for lo < hi {
		pivot := medianOfThree(a, lo, hi)
		pivot = lomutoPartition(a, lo, hi, pivot)
		switch {
		case target < pivot:
			hi = pivot - 1
		case target > pivot:
			lo = pivot + 1
		default:
			return
		}
	}
}

// medianOfThree orders a's lo, mid, and hi elements and returns the
// index of the middle value, used as the partition pivot.
func medianOfThree(a sort.Interface, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if a.Less(mid, lo) {
		a.Swap(mid, lo)
	}
	if a.Less(hi, lo) {
		a.Swap(hi, lo)
	}
	if a.Less(hi, mid) {
		a.Swap(hi, mid)
	}
	return mid
}

// lomutoPartition moves the element at pivotIdx to its final sorted
// position within a[lo:hi+1], with every smaller element to its left
// and every larger-or-equal element to its right, returning that final
// index.
func lomutoPartition(a sort.Interface, lo, hi, pivotIdx int) int {
	a.Swap(pivotIdx, hi)
	store := lo
	for i := lo; i < hi; i++ {
		if a.Less(i, hi) {
			a.Swap(i, store)
			store++
		}
	}
	a.Swap(store, hi)
	return store
}
