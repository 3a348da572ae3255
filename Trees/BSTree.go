package Trees

import (
	"golang.org/x/exp/constraints"
)

// BSTree is a plain binary search tree. Values less than a node go to its left,
// values greater than or equal to it go to its right. It never rebalances on its
// own, so inserting sorted values degrades it into a list; call Balance to rebuild
// it into a minimum height shape.
// The zero value is an empty tree ready to use.
type BSTree[T constraints.Ordered] struct {
	root *node[T]
	sz   uint
}

// BuildBSTree builds a balanced BSTree from the given slice, which must be sorted
// in ascending order. The slice isn't retained.
// Time: O(n).
func BuildBSTree[T constraints.Ordered](sorted []T) *BSTree[T] {
	return &BSTree[T]{buildBalanced(sorted, 0, len(sorted)-1), uint(len(sorted))}
}

// buildBalanced returns the root of a subtree holding s[l:r+1], rooted at the
// middle element. A run of equal values around the middle is kept on the right
// of the root. Recursive.
func buildBalanced[T constraints.Ordered](s []T, l, r int) *node[T] {
	if r < l {
		return nil
	}
	mid := (r-l)/2 + l
	for mid > l && s[mid-1] == s[mid] {
		mid--
	}
	return &node[T]{v: s[mid], l: buildBalanced(s, l, mid-1), r: buildBalanced(s, mid+1, r)}
}

// Balance rebuilds the tree from its in-order sequence. Without duplicates the
// height becomes ceil(log2(n+1)).
// Time: O(n); Space: O(n)
func (u *BSTree[T]) Balance() {
	u.root = buildBalanced(u.InOrder(), 0, int(u.sz)-1)
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *BSTree[T]) Height() int {
	return depth(u.root)
}

// Insert [Tree.Insert]
// Always returns true.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) bool {
	curPtr := &u.root
	for *curPtr != nil {
		if v < (*curPtr).v {
			curPtr = &(*curPtr).l
		} else {
			curPtr = &(*curPtr).r
		}
	}
	*curPtr = &node[T]{v: v}
	u.sz++
	return true
}

// Remove [Tree.Remove]
// A node with two children is replaced by its in-order successor, which is
// unlinked from the right subtree.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Remove(v T) bool {
	curPtr := &u.root
	for *curPtr != nil {
		if cur := *curPtr; v < cur.v {
			curPtr = &cur.l
		} else if cur.v < v {
			curPtr = &cur.r
		} else {
			if cur.l == nil {
				*curPtr = cur.r
			} else if cur.r == nil {
				*curPtr = cur.l
			} else {
				t := &cur.r
				for (*t).l != nil {
					t = &(*t).l
				}
				cur.v = (*t).v
				*t = (*t).r
			}
			u.sz--
			return true
		}
	}
	return false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
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
func (u *BSTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return leftmost(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return rightmost(u.root).v, true
}

// InOrder [Tree.InOrder]. Recursive.
func (u *BSTree[T]) InOrder() []T {
	return inOrder(u.root, make([]T, 0, u.sz))
}

// PreOrder [Tree.PreOrder]. Recursive.
func (u *BSTree[T]) PreOrder() []T {
	return preOrder(u.root, make([]T, 0, u.sz))
}

// PostOrder [Tree.PostOrder]. Recursive.
func (u *BSTree[T]) PostOrder() []T {
	return postOrder(u.root, make([]T, 0, u.sz))
}

// LevelOrder [Tree.LevelOrder]
func (u *BSTree[T]) LevelOrder() []T {
	return levelOrder(u.root, make([]T, 0, u.sz))
}

// Corrupt [Tree.Corrupt]
// Checks left < v <= right at every node against the bounds set by its ancestors.
// Recursive.
func (u *BSTree[T]) Corrupt() bool {
	var check func(n *node[T], lo, hi *T) bool
	check = func(n *node[T], lo, hi *T) bool {
		if n == nil {
			return true
		}
		if (lo != nil && n.v < *lo) || (hi != nil && !(n.v < *hi)) {
			return false
		}
		return check(n.l, lo, &n.v) && check(n.r, &n.v, hi)
	}
	return !check(u.root, nil, nil)
}
