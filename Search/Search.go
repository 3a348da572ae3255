// Package Search finds values in sorted slices.
package Search

import (
	"golang.org/x/exp/constraints"
)

// Contains reports whether v is in sorted, which must be in ascending order.
// Recursive, halving the range [l, r] on every call.
// Time: O(log n)
func Contains[T constraints.Ordered](sorted []T, v T) bool {
	return contains(sorted, v, 0, len(sorted)-1)
}

func contains[T constraints.Ordered](s []T, v T, l, r int) bool {
	if r < l {
		return false
	}
	mid := (r-l)/2 + l
	if s[mid] == v {
		return true
	} else if v < s[mid] {
		return contains(s, v, l, mid-1)
	}
	return contains(s, v, mid+1, r)
}

// Index of the first occurrence of v in sorted and true, or the position v would
// be inserted at and false if v isn't there.
// Time: O(log n); Space: O(1)
func Index[T constraints.Ordered](sorted []T, v T) (int, bool) {
	l, r := 0, len(sorted)
	for l < r {
		if mid := int(uint(l+r) >> 1); sorted[mid] < v {
			l = mid + 1
		} else {
			r = mid
		}
	}
	return l, l < len(sorted) && sorted[l] == v
}
