package collections

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinarySearchTree(t *testing.T) {
	tree := NewBinarySearchTree[int]()
	for _, v := range []int{5, 3, 8, 1, 4} {
		require.Equal(t, true, tree.Insert(v))
	}
	require.Equal(t, false, tree.Insert(3))
	require.Equal(t, 5, tree.Size())
	require.Equal(t, []int{1, 3, 4, 5, 8}, tree.InOrder().ToSlice())
	require.Equal(t, []int{5, 3, 1, 4, 8}, tree.PreOrder().ToSlice())
	require.Equal(t, []int{1, 4, 3, 8, 5}, tree.PostOrder().ToSlice())
	require.Equal(t, 2, tree.Height())
	min, err := tree.Min()
	require.Nil(t, err)
	require.Equal(t, 1, min)
	max, err := tree.Max()
	require.Nil(t, err)
	require.Equal(t, 8, max)
	require.Equal(t, true, tree.Search(4))
	require.Equal(t, false, tree.Search(7))
}

func TestBinarySearchTreeDelete(t *testing.T) {
	tree := NewBinarySearchTree[int]()
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80, 65} {
		tree.Insert(v)
	}
	// leaf
	require.Equal(t, true, tree.Delete(20))
	// one child
	require.Equal(t, true, tree.Delete(60))
	require.Equal(t, []int{30, 40, 50, 65, 70, 80}, tree.InOrder().ToSlice())
	// two children: root replaced by its successor
	require.Equal(t, true, tree.Delete(50))
	require.Equal(t, []int{65, 30, 40, 70, 80}, tree.PreOrder().ToSlice())
	require.Equal(t, false, tree.Delete(50))
	require.Equal(t, 5, tree.Size())
}

func TestBinarySearchTreeEmpty(t *testing.T) {
	tree := NewBinarySearchTree[string]()
	_, err := tree.Min()
	require.True(t, errors.Is(err, ErrEmptyContainer))
	_, err = tree.Max()
	require.True(t, errors.Is(err, ErrEmptyContainer))
	require.Equal(t, false, tree.Delete("a"))
	require.Equal(t, -1, tree.Height())
	require.Equal(t, 0, tree.InOrder().Size())
	require.Equal(t, 0, tree.PostOrder().Size())
	tree.Insert("a")
	require.Equal(t, 0, tree.Height())
	tree.Clear()
	require.Equal(t, true, tree.IsEmpty())
}

func TestBinarySearchTreeDegenerate(t *testing.T) {
	tree := NewBinarySearchTree[int]()
	n := 10000
	for i := 0; i < n; i++ {
		tree.Insert(i)
	}
	require.Equal(t, n-1, tree.Height())
	require.Equal(t, n, tree.InOrder().Size())
	require.Equal(t, n, tree.PostOrder().Size())
}

func TestBinarySearchTreeProperty(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	tree := NewBinarySearchTree[int]()
	live := make(map[int]bool)
	for i := 0; i < 3000; i++ {
		v := r.Intn(500)
		if r.Intn(3) == 0 {
			require.Equal(t, live[v], tree.Delete(v))
			delete(live, v)
		} else {
			tree.Insert(v)
			live[v] = true
		}
	}
	expected := make([]int, 0, len(live))
	for v := range live {
		expected = append(expected, v)
	}
	sort.Ints(expected)
	require.Equal(t, expected, tree.InOrder().ToSlice())
	for v := 0; v < 500; v++ {
		require.Equal(t, live[v], tree.Search(v))
	}
}
