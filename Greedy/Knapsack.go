package Greedy

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"
)

// Item that can be put into the knapsack, fully or partly.
type Item struct {
	Profit, Weight float64
}

// Solution of a fractional knapsack. Fractions[i] is the part of item i taken,
// in [0, 1].
type Solution struct {
	Fractions      []float64
	Profit, Weight float64
}

var ErrNegativeCapacity = errors.New("knapsack capacity is negative")

// InvalidItemError is returned when an item has a non-positive weight or a
// negative profit.
type InvalidItemError struct {
	Index int
	Item  Item
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("invalid knapsack item %d: profit %v, weight %v", e.Index, e.Item.Profit, e.Item.Weight)
}

type ranked struct {
	ratio float64
	i     int
}

// byRatio puts the higher profit per weight first, then the lower index.
func byRatio(a, b interface{}) int {
	x, y := a.(ranked), b.(ranked)
	switch {
	case x.ratio > y.ratio:
		return -1
	case x.ratio < y.ratio:
		return 1
	}
	return x.i - y.i
}

// Fractional solves the fractional knapsack greedily: items are taken whole in
// decreasing order of profit per weight while they fit, and the first one that
// doesn't fit fills the remaining capacity with a part of itself.
// Time: O(n log n)
func Fractional(items []Item, capacity float64) (Solution, error) {
	if capacity < 0 {
		return Solution{}, ErrNegativeCapacity
	}
	h := binaryheap.NewWith(byRatio)
	for i, it := range items {
		if !(it.Weight > 0) || it.Profit < 0 {
			return Solution{}, &InvalidItemError{i, it}
		}
		h.Push(ranked{it.Profit / it.Weight, i})
	}
	s := Solution{Fractions: make([]float64, len(items))}
	for left := capacity; left > 0; {
		top, has := h.Pop()
		if !has {
			break
		}
		i := top.(ranked).i
		if it := items[i]; it.Weight <= left {
			s.Fractions[i] = 1
			s.Profit += it.Profit
			s.Weight += it.Weight
			left -= it.Weight
		} else {
			s.Fractions[i] = left / it.Weight
			s.Profit += it.Profit * s.Fractions[i]
			s.Weight += left
			break
		}
	}
	return s, nil
}
