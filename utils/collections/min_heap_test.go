package collections

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinHeap(t *testing.T) {
	h := NewMinHeap[int]()
	for _, v := range []int{50, 10, 40, 20} {
		h.Insert(v)
	}
	peek, err := h.Peek()
	require.Nil(t, err)
	require.Equal(t, 10, peek)
	for _, expected := range []int{10, 20, 40, 50} {
		v, err := h.ExtractMin()
		require.Nil(t, err)
		require.Equal(t, expected, v)
	}
	_, err = h.ExtractMin()
	require.True(t, errors.Is(err, ErrEmptyContainer))
	_, err = h.Peek()
	require.True(t, errors.Is(err, ErrEmptyContainer))
}

func TestMinHeapSortsPermutation(t *testing.T) {
	n := 1000
	h := BuildMinHeap(rand.New(rand.NewSource(11)).Perm(n)...)
	require.Equal(t, n, h.Size())
	for i := 0; i < n; i++ {
		v, err := h.ExtractMin()
		require.Nil(t, err)
		require.Equal(t, i, v)
	}
	require.Equal(t, true, h.IsEmpty())
}

func TestMinHeapReplace(t *testing.T) {
	keys := []int{500, 100, 300}
	ids := []string{"A", "B", "C"}
	h, err := BuildKeyedMinHeap(keys, ids)
	require.Nil(t, err)
	top, _ := h.Peek()
	require.Equal(t, "B", top.Value)
	byID := func(id string) func(Keyed[int, string]) bool {
		return func(e Keyed[int, string]) bool { return e.Value == id }
	}
	require.Equal(t, true, h.Replace(byID("A"), Keyed[int, string]{Key: 50, Value: "A"}))
	top, _ = h.Peek()
	require.Equal(t, "A", top.Value)
	require.Equal(t, true, h.Replace(byID("A"), Keyed[int, string]{Key: 900, Value: "A"}))
	require.Equal(t, false, h.Replace(byID("Z"), Keyed[int, string]{Key: 1, Value: "Z"}))
	order := make([]string, 0)
	for !h.IsEmpty() {
		e, _ := h.ExtractMin()
		order = append(order, e.Value)
	}
	require.Equal(t, []string{"B", "C", "A"}, order)
}

func TestBuildKeyedMinHeapLengthMismatch(t *testing.T) {
	_, err := BuildKeyedMinHeap([]int{1, 2}, []string{"a"})
	require.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestMinHeapInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	h := NewMinHeap[float64]()
	for i := 0; i < 200; i++ {
		h.Insert(r.Float64())
		if i%3 == 0 {
			_, _ = h.ExtractMin()
		}
		entries := h.ToSlice()
		for j := 1; j < len(entries); j++ {
			require.LessOrEqual(t, entries[parentOf(j)], entries[j])
		}
	}
	h.Clear()
	require.Equal(t, 0, h.Size())
}

func TestMinHeapRemove(t *testing.T) {
	h := BuildMinHeap(5, 1, 9, 3, 7, 2)
	v, ok := h.Remove(func(x int) bool { return x == 3 })
	require.Equal(t, true, ok)
	require.Equal(t, 3, v)
	_, ok = h.Remove(func(x int) bool { return x == 42 })
	require.Equal(t, false, ok)
	_, ok = h.Remove(func(x int) bool { return x == 2 })
	require.Equal(t, true, ok)
	got := make([]int, 0)
	for !h.IsEmpty() {
		x, _ := h.ExtractMin()
		got = append(got, x)
	}
	require.Equal(t, []int{1, 5, 7, 9}, got)
	single := BuildMinHeap(4)
	_, ok = single.Remove(func(x int) bool { return x == 4 })
	require.Equal(t, true, ok)
	require.Equal(t, true, single.IsEmpty())
}
