package Trees

import (
	"github.com/g-m-twostay/go-algos/Queues"
)

// A node in AVLTree and BSTree. nil is the absent node.
// h is the number of nodes on the longest downward path starting at this node,
// so a leaf has h=1. BSTree doesn't maintain h.
type node[T any] struct {
	v    T
	l, r *node[T]
	h    int
}

// height of n, 0 if n is absent.
func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.h
}

// balanceFactor is height(n.l)-height(n.r), 0 if n is absent.
func balanceFactor[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return height(n.l) - height(n.r)
}

func (n *node[T]) fix() {
	n.h = 1 + max(height(n.l), height(n.r))
}

// rotateRight pivots on x.l and returns the new root of the subtree.
// It is a no-op returning x when x or x.l is absent.
// Time: O(1); Space: O(1)
func rotateRight[T any](x *node[T]) *node[T] {
	if x == nil || x.l == nil {
		return x
	}
	y := x.l
	x.l = y.r
	y.r = x
	x.fix()
	y.fix()
	return y
}

// rotateLeft is the mirror of rotateRight, pivoting on y.r.
// Time: O(1); Space: O(1)
func rotateLeft[T any](y *node[T]) *node[T] {
	if y == nil || y.r == nil {
		return y
	}
	x := y.r
	y.r = x.l
	x.l = y
	y.fix()
	x.fix()
	return x
}

// leftmost node of the subtree rooting at n. n mustn't be nil.
func leftmost[T any](n *node[T]) *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

func rightmost[T any](n *node[T]) *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// depth counts the nodes on the longest path without using h.
func depth[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(depth(n.l), depth(n.r))
}

func inOrder[T any](n *node[T], dst []T) []T {
	if n == nil {
		return dst
	}
	dst = inOrder(n.l, dst)
	dst = append(dst, n.v)
	return inOrder(n.r, dst)
}

func preOrder[T any](n *node[T], dst []T) []T {
	if n == nil {
		return dst
	}
	dst = append(dst, n.v)
	dst = preOrder(n.l, dst)
	return preOrder(n.r, dst)
}

func postOrder[T any](n *node[T], dst []T) []T {
	if n == nil {
		return dst
	}
	dst = postOrder(n.l, dst)
	dst = postOrder(n.r, dst)
	return append(dst, n.v)
}

// levelOrder appends the values breadth first, left to right within a level.
func levelOrder[T any](root *node[T], dst []T) []T {
	if root == nil {
		return dst
	}
	q := Queues.MakeArrayQueue[*node[T]](uint(cap(dst)-len(dst))/2 + 1)
	for q.Push(root); !q.Empty(); {
		cur, _ := q.Pop()
		dst = append(dst, cur.v)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
	return dst
}

// ascend visits the subtree in order until f returns false. Returns false if
// it was stopped early.
func ascend[T any](n *node[T], f func(T) bool) bool {
	if n == nil {
		return true
	}
	return ascend(n.l, f) && f(n.v) && ascend(n.r, f)
}
