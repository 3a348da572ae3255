package Anagrams

import (
	"slices"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Key of word shared by all of its anagrams: its runes sorted in ascending order.
func Key(word string) string {
	rs := []rune(word)
	slices.Sort(rs)
	return string(rs)
}

// Group words that are anagrams of each other. Groups are ordered by the first
// appearance of any of their words, and words within a group keep their input
// order, duplicates included.
// Time: O(n*k log k) for n words of length k.
func Group(words []string) [][]string {
	m := linkedhashmap.New()
	for _, w := range words {
		k := Key(w)
		if g, has := m.Get(k); has {
			m.Put(k, append(g.([]string), w))
		} else {
			m.Put(k, []string{w})
		}
	}
	gs := make([][]string, 0, m.Size())
	for _, g := range m.Values() {
		gs = append(gs, g.([]string))
	}
	return gs
}

// Are a and b anagrams of each other.
func Are(a, b string) bool {
	return len(a) == len(b) && Key(a) == Key(b)
}
