package TreeSet

import (
	"github.com/g-m-twostay/go-algos/Trees"
	"golang.org/x/exp/constraints"
)

// TreeSet is an ordered set backed by Trees.AVLTree. Unlike the tree itself, it
// rejects duplicates. Take always returns the smallest element and Range goes
// in ascending order.
// The zero value is an empty set ready to use.
type TreeSet[E constraints.Ordered] struct {
	t Trees.AVLTree[E]
}

// New TreeSet holding es without duplicates.
func New[E constraints.Ordered](es ...E) *TreeSet[E] {
	u := new(TreeSet[E])
	for _, e := range es {
		u.Put(e)
	}
	return u
}

// Put [Sets.Set.Put]
// Time: O(log n)
func (u *TreeSet[E]) Put(e E) bool {
	if u.t.Has(e) {
		return false
	}
	return u.t.Insert(e)
}

// Has [Sets.Set.Has]
func (u *TreeSet[E]) Has(e E) bool {
	return u.t.Has(e)
}

// Remove [Sets.Set.Remove]
func (u *TreeSet[E]) Remove(e E) bool {
	return u.t.Remove(e)
}

// Size [Sets.Set.Size]
func (u *TreeSet[E]) Size() uint {
	return u.t.Size()
}

// Take [Sets.Set.Take]
// Returns the minimum.
func (u *TreeSet[E]) Take() (E, bool) {
	e, has := u.t.Minimum()
	if has {
		u.t.Remove(e)
	}
	return e, has
}

// Range [Sets.Set.Range]
// The set must not be modified by f.
func (u *TreeSet[E]) Range(f func(E) bool) {
	u.t.Ascend(f)
}

// Values in ascending order.
func (u *TreeSet[E]) Values() []E {
	return u.t.InOrder()
}
