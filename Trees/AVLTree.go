package Trees

import (
	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree that keeps the heights of the two subtrees of
// every node within 1 of each other, through rotations after every insertion and
// removal. The height of the tree is therefore less than 1.44*log2(n+2).
// Each node caches its height, so the additional memory cost is size(int)*n.
// Duplicates are permitted and appear in the traversals as many times as they are
// inserted. Because rotations can move an equal value to the left of another,
// the order property maintained is left <= v <= right. Use Sets.TreeSet for
// unique values.
// The zero value is an empty tree ready to use.
type AVLTree[T constraints.Ordered] struct {
	root *node[T]
	sz   uint
}

// NewAVLTree returns an AVLTree holding vs, inserted one by one in the given order.
func NewAVLTree[T constraints.Ordered](vs ...T) *AVLTree[T] {
	u := new(AVLTree[T])
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Size() uint {
	return u.sz
}

// Height [Tree.Height]
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Height() int {
	return height(u.root)
}

// Clear removes everything in the tree.
func (u *AVLTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// rebalanceInserted restores the AVL property at cur after v was inserted into
// one of its subtrees, and returns the new root of the subtree. The rotation is
// chosen by which grandchild subtree v was routed to, using the same comparison
// as insert so that equal values agree with the path they took.
func rebalanceInserted[T constraints.Ordered](cur *node[T], v T) *node[T] {
	cur.fix()
	switch bf := balanceFactor(cur); {
	case bf > 1 && v < cur.l.v: //left-left
		return rotateRight(cur)
	case bf > 1: //left-right
		cur.l = rotateLeft(cur.l)
		return rotateRight(cur)
	case bf < -1 && v >= cur.r.v: //right-right
		return rotateLeft(cur)
	case bf < -1: //right-left
		cur.r = rotateRight(cur.r)
		return rotateLeft(cur)
	}
	return cur
}

// rebalanceRemoved restores the AVL property at cur after a removal in one of its
// subtrees. The removed value lies on the lighter side, so it can't tell which
// grandchild is heavier; the heavier child's own balance factor decides between
// single and double rotation instead.
func rebalanceRemoved[T any](cur *node[T]) *node[T] {
	cur.fix()
	switch bf := balanceFactor(cur); {
	case bf > 1:
		if balanceFactor(cur.l) < 0 {
			cur.l = rotateLeft(cur.l)
		}
		return rotateRight(cur)
	case bf < -1:
		if balanceFactor(cur.r) > 0 {
			cur.r = rotateRight(cur.r)
		}
		return rotateLeft(cur)
	}
	return cur
}

// insert v into the subtree rooting at cur recursively, and return the new root
// of that subtree for the caller to reattach.
func (u *AVLTree[T]) insert(cur *node[T], v T) *node[T] {
	if cur == nil {
		return &node[T]{v: v, h: 1}
	}
	if v < cur.v {
		cur.l = u.insert(cur.l, v)
	} else {
		cur.r = u.insert(cur.r, v)
	}
	return rebalanceInserted(cur, v)
}

// Insert [Tree.Insert]. Recursive.
// Always returns true.
// Time: O(D)
func (u *AVLTree[T]) Insert(v T) bool {
	u.root = u.insert(u.root, v)
	u.sz++
	return true
}

// remove one occurrence of v from the subtree rooting at cur recursively. Returns
// the new root of the subtree and whether anything was removed. A node with two
// children takes the value of its in-order successor, which is then removed from
// the right subtree.
func (u *AVLTree[T]) remove(cur *node[T], v T) (*node[T], bool) {
	if cur == nil {
		return nil, false
	}
	var removed bool
	if v < cur.v {
		cur.l, removed = u.remove(cur.l, v)
	} else if cur.v < v {
		cur.r, removed = u.remove(cur.r, v)
	} else if cur.l == nil {
		return cur.r, true
	} else if cur.r == nil {
		return cur.l, true
	} else {
		cur.v = leftmost(cur.r).v
		cur.r, removed = u.remove(cur.r, cur.v)
	}
	if !removed {
		return cur, false
	}
	return rebalanceRemoved(cur), true
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D)
func (u *AVLTree[T]) Remove(v T) bool {
	var removed bool
	if u.root, removed = u.remove(u.root, v); removed {
		u.sz--
	}
	return removed
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if cur.v < v {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return leftmost(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return rightmost(u.root).v, true
}

// InOrder [Tree.InOrder]. Recursive.
// Time: O(n); Space: O(n)
func (u *AVLTree[T]) InOrder() []T {
	return inOrder(u.root, make([]T, 0, u.sz))
}

// PreOrder [Tree.PreOrder]. Recursive.
func (u *AVLTree[T]) PreOrder() []T {
	return preOrder(u.root, make([]T, 0, u.sz))
}

// PostOrder [Tree.PostOrder]. Recursive.
func (u *AVLTree[T]) PostOrder() []T {
	return postOrder(u.root, make([]T, 0, u.sz))
}

// LevelOrder [Tree.LevelOrder]
func (u *AVLTree[T]) LevelOrder() []T {
	return levelOrder(u.root, make([]T, 0, u.sz))
}

// Ascend calls f on the values in ascending order until f returns false.
// The tree must not be modified by f. Recursive.
func (u *AVLTree[T]) Ascend(f func(T) bool) {
	ascend(u.root, f)
}

// Corrupt [Tree.Corrupt]
// Checks the order, the cached heights and the balance of every node.
// Time: O(n)
func (u *AVLTree[T]) Corrupt() bool {
	var prev *T
	var bad bool
	var check func(*node[T]) int
	check = func(n *node[T]) int {
		if n == nil || bad {
			return 0
		}
		lh := check(n.l)
		if prev != nil && n.v < *prev {
			bad = true
		}
		prev = &n.v
		rh := check(n.r)
		if n.h != 1+max(lh, rh) || lh-rh > 1 || rh-lh > 1 {
			bad = true
		}
		return 1 + max(lh, rh)
	}
	check(u.root)
	return bad
}
