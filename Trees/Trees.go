package Trees

// Tree represents a binary search tree holding ordered values. Duplicate values
// are kept; they are routed to the right subtree on insertion.
// Receivers that have a bool as a second return value use it to indicate whether
// the first return value is defined. For example, calling Minimum on an empty
// tree returns (x T, false), where x is the zero value of T and shouldn't be used.
// Methods implemented recursively are noted, otherwise they are implemented
// iteratively. None of the implementations are safe for concurrent use; all calls
// must be serialized by the caller.
type Tree[T any] interface {
	//Insert v to the Tree. Returns true if v is added.
	Insert(v T) bool
	//Remove one occurrence of v from the Tree. Returns false if v doesn't exist,
	//in which case the Tree is unchanged.
	Remove(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree, counting duplicates.
	Size() uint
	//Height is the number of nodes on the longest root to leaf path, 0 for an
	//empty tree.
	Height() int
	//InOrder returns all the values in ascending order.
	InOrder() []T
	//PreOrder returns all the values, each node before its subtrees.
	PreOrder() []T
	//PostOrder returns all the values, each node after its subtrees.
	PostOrder() []T
	//LevelOrder returns all the values breadth first.
	LevelOrder() []T
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
}
