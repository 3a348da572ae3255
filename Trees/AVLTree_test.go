package Trees

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rg = rand.New(rand.NewSource(0))

var (
	_ Tree[int] = (*AVLTree[int])(nil)
	_ Tree[int] = (*BSTree[int])(nil)
)

const (
	tAddN        = 4000
	tAddValRange = 3000 //smaller than tAddN so that there are duplicates.
)

var scenario = []int{100, 50, 150, 25, 200, 125, 28, 172, 15, 128, 121, 210}

func TestAVLTree_Scenario(t *testing.T) {
	tree := NewAVLTree(scenario...)
	require.False(t, tree.Corrupt())
	assert.Equal(t, []int{15, 25, 28, 50, 100, 121, 125, 128, 150, 172, 200, 210}, tree.InOrder())
	m, has := tree.Minimum()
	assert.True(t, has)
	assert.Equal(t, 15, m)

	assert.True(t, tree.Remove(128))
	assert.True(t, tree.Remove(15))
	require.False(t, tree.Corrupt())
	assert.Equal(t, []int{25, 28, 50, 100, 121, 125, 150, 172, 200, 210}, tree.InOrder())
	m, _ = tree.Minimum()
	assert.Equal(t, 25, m)
	assert.Equal(t, uint(10), tree.Size())
}

func TestAVLTree_Sequential(t *testing.T) {
	tree := new(AVLTree[int])
	for i := 1; i < 50; i++ {
		tree.Insert(i)
		if tree.Corrupt() {
			t.Fatalf("corrupt after inserting %d", i)
		}
	}
	assert.LessOrEqual(t, tree.Height(), 6)
	assert.Equal(t, depth(tree.root), tree.Height())
	m, _ := tree.Minimum()
	assert.Equal(t, 1, m)
	for _, v := range []int{25, 1, 49} {
		assert.True(t, tree.Remove(v))
		assert.False(t, tree.Corrupt())
	}
	m, _ = tree.Minimum()
	assert.Equal(t, 2, m)
	m, _ = tree.Maximum()
	assert.Equal(t, 48, m)
	assert.Len(t, tree.InOrder(), 46)
}

func TestAVLTree_Orders(t *testing.T) {
	tree := NewAVLTree(10, 20, 30)
	assert.Equal(t, []int{20, 10, 30}, tree.PreOrder())
	assert.Equal(t, []int{10, 30, 20}, tree.PostOrder())
	assert.Equal(t, []int{20, 10, 30}, tree.LevelOrder())
	tree = NewAVLTree(30, 10, 20) //left-right
	assert.Equal(t, []int{20, 10, 30}, tree.PreOrder())
	tree = NewAVLTree(10, 30, 20) //right-left
	assert.Equal(t, []int{20, 10, 30}, tree.PreOrder())
	tree = NewAVLTree(30, 20, 10) //left-left
	assert.Equal(t, []int{20, 10, 30}, tree.PreOrder())
}

func TestAVLTree_Empty(t *testing.T) {
	var tree AVLTree[int]
	_, has := tree.Minimum()
	assert.False(t, has)
	_, has = tree.Maximum()
	assert.False(t, has)
	assert.False(t, tree.Remove(1))
	assert.False(t, tree.Has(1))
	assert.Empty(t, tree.InOrder())
	assert.NotNil(t, tree.InOrder())
	assert.Empty(t, tree.PreOrder())
	assert.Empty(t, tree.PostOrder())
	assert.Empty(t, tree.LevelOrder())
	assert.Zero(t, tree.Height())
	assert.False(t, tree.Corrupt())
}

func TestAVLTree_Absent(t *testing.T) {
	tree := NewAVLTree(scenario...)
	before := tree.PreOrder()
	assert.False(t, tree.Remove(101))
	assert.False(t, tree.Remove(0))
	assert.Equal(t, before, tree.PreOrder())
	assert.Equal(t, uint(len(scenario)), tree.Size())
}

func TestAVLTree_Duplicates(t *testing.T) {
	tree := NewAVLTree(2, 2, 2, 1, 2)
	require.False(t, tree.Corrupt())
	assert.Equal(t, []int{1, 2, 2, 2, 2}, tree.InOrder())
	assert.True(t, tree.Remove(2))
	assert.Equal(t, []int{1, 2, 2, 2}, tree.InOrder())
	for tree.Remove(2) {
	}
	assert.Equal(t, []int{1}, tree.InOrder())
	assert.False(t, tree.Corrupt())
}

// After removing 40 the root is left heavy and its left child is left heavy too,
// which only a single right rotation fixes.
func TestAVLTree_RemoveRebalance(t *testing.T) {
	tree := NewAVLTree(20, 10, 30, 5, 15, 40, 3)
	require.Equal(t, []int{20, 10, 5, 3, 15, 30, 40}, tree.PreOrder())
	tree.Remove(40)
	assert.False(t, tree.Corrupt())
	assert.Equal(t, []int{10, 5, 3, 20, 15, 30}, tree.PreOrder())

	tree = NewAVLTree(20, 10, 30, 25, 35, 5, 40)
	tree.Remove(5)
	assert.False(t, tree.Corrupt())
	assert.Equal(t, []int{30, 20, 10, 25, 35, 40}, tree.PreOrder())

	tree = NewAVLTree(20, 10, 30, 5, 15, 40, 17)
	tree.Remove(40)
	assert.False(t, tree.Corrupt())
	assert.Equal(t, []int{15, 10, 5, 20, 17, 30}, tree.PreOrder())
}

func TestAVLTree_Random(t *testing.T) {
	tree := new(AVLTree[int])
	var content []int //sorted multiset
	for range tAddN {
		a := rg.Intn(tAddValRange)
		tree.Insert(a)
		i, _ := slices.BinarySearch(content, a)
		content = slices.Insert(content, i, a)
		if tree.Corrupt() {
			t.Fatalf("corrupt after inserting %d", a)
		}
	}
	require.Equal(t, uint(len(content)), tree.Size())
	require.Equal(t, content, tree.InOrder())
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())

	for range tAddN / 2 {
		a := rg.Intn(tAddValRange)
		i, in := slices.BinarySearch(content, a)
		if b := tree.Remove(a); b != in {
			t.Fatalf("remove %d returned %v, want %v", a, b, in)
		}
		if in {
			content = slices.Delete(content, i, i+1)
		}
		if tree.Corrupt() {
			t.Fatalf("corrupt after removing %d", a)
		}
	}
	require.Equal(t, content, tree.InOrder())
	m, _ := tree.Minimum()
	assert.Equal(t, tree.InOrder()[0], m)
	m, _ = tree.Maximum()
	assert.Equal(t, content[len(content)-1], m)
	for _, v := range content {
		if !tree.Has(v) {
			t.Errorf("tree does not have key %v", v)
		}
	}
}

func TestAVLTree_RemoveInsert(t *testing.T) {
	tree := new(AVLTree[int])
	for _, v := range rg.Perm(500) {
		tree.Insert(v)
	}
	before := tree.InOrder()
	for range 200 {
		a := rg.Intn(500)
		require.True(t, tree.Remove(a))
		require.False(t, tree.Has(a))
		tree.Insert(a)
		require.Equal(t, before, tree.InOrder())
	}
	assert.False(t, tree.Corrupt())
}

func TestAVLTree_Ascend(t *testing.T) {
	tree := new(AVLTree[int])
	for _, v := range rg.Perm(100) {
		tree.Insert(v)
	}
	var s []int
	tree.Ascend(func(v int) bool {
		s = append(s, v)
		return v < 49
	})
	assert.Len(t, s, 50)
	assert.True(t, slices.IsSorted(s))
	tree.Clear()
	assert.Zero(t, tree.Size())
	assert.Empty(t, tree.InOrder())
}

func TestAVLTree_Corrupt(t *testing.T) {
	tree := NewAVLTree(1, 2, 3)
	tree.root.h = 5
	assert.True(t, tree.Corrupt())
	tree = NewAVLTree(1, 2, 3)
	tree.root.l.v = 4
	assert.True(t, tree.Corrupt())
	tree = &AVLTree[int]{root: &node[int]{v: 1, h: 3, r: &node[int]{v: 2, h: 2, r: leaf(3)}}, sz: 3}
	assert.True(t, tree.Corrupt())
}
