// Package Sorts has the textbook comparison sorts. All of them are stable.
package Sorts

import (
	"golang.org/x/exp/constraints"
)

// Bubble sorts s in place and returns it. Each pass moves the largest remaining
// element to the end, and it stops early after a pass without swaps.
// Time: O(n^2), O(n) if already sorted; Space: O(1)
func Bubble[T constraints.Ordered](s []T) []T {
	for i := len(s) - 1; i > 0; i-- {
		swapped := false
		for j := 0; j < i; j++ {
			if s[j+1] < s[j] {
				s[j], s[j+1] = s[j+1], s[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return s
}

// Insertion sorts s in place and returns it.
// Time: O(n^2), O(n) if already sorted; Space: O(1)
func Insertion[T constraints.Ordered](s []T) []T {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
	return s
}

// Merge returns a sorted copy of s. s is left untouched. Recursive.
// Time: O(n log n); Space: O(n)
func Merge[T constraints.Ordered](s []T) []T {
	if len(s) < 2 {
		return append(make([]T, 0, len(s)), s...)
	}
	mid := len(s) / 2
	return merge(Merge(s[:mid]), Merge(s[mid:]))
}

// merge two sorted slices into a new one. On ties the element from a goes first.
func merge[T constraints.Ordered](a, b []T) []T {
	c := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if b[j] < a[i] {
			c = append(c, b[j])
			j++
		} else {
			c = append(c, a[i])
			i++
		}
	}
	c = append(c, a[i:]...)
	return append(c, b[j:]...)
}
