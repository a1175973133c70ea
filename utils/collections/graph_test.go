package collections

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGraphUndirected(t *testing.T) {
	g := NewGraph[string](false)
	require.Nil(t, g.AddEdge("A", "B", 2))
	require.Nil(t, g.AddEdge("A", "C", 3))
	require.Nil(t, g.AddEdge("B", "D", 1))
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, true, g.HasEdge("B", "A"))
	w, err := g.EdgeWeight("C", "A")
	require.Nil(t, err)
	require.Equal(t, 3.0, w)
	_, err = g.EdgeWeight("C", "D")
	require.True(t, errors.Is(err, ErrNotFound))
	require.Equal(t, []string{"B", "C"}, g.Neighbors("A").ToSlice())
	require.Equal(t, []Edge[string]{{"B", 2}, {"C", 3}}, g.Edges("A").ToSlice())

	require.Nil(t, g.AddEdge("A", "B", 5))
	require.Equal(t, 3, g.EdgeCount())
	w, _ = g.EdgeWeight("B", "A")
	require.Equal(t, 5.0, w)

	require.Equal(t, true, g.RemoveEdge("B", "A"))
	require.Equal(t, false, g.HasEdge("A", "B"))
	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, false, g.RemoveEdge("B", "A"))
	require.Equal(t, false, g.RemoveEdge("B", "Q"))
}

func TestGraphDirected(t *testing.T) {
	g := NewGraph[string](true)
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "A", 1)
	_ = g.AddEdge("C", "A", 1)
	_ = g.AddEdge("A", "A", 1)
	require.Equal(t, 4, g.EdgeCount())
	require.Equal(t, false, g.HasEdge("A", "C"))
	require.Equal(t, true, g.IsDirected())
	require.Equal(t, true, g.RemoveVertex("A"))
	require.Equal(t, 0, g.EdgeCount())
	require.Equal(t, 2, g.VertexCount())
	require.Equal(t, 0, g.Neighbors("C").Size())
	require.Equal(t, false, g.RemoveVertex("A"))
}

func TestGraphRemoveVertexUndirected(t *testing.T) {
	g := NewGraph[string](false)
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("A", "C", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("A", "A", 1)
	require.Equal(t, 4, g.EdgeCount())
	require.Equal(t, []string{"B", "C", "A"}, g.Neighbors("A").ToSlice())
	require.Equal(t, true, g.RemoveVertex("A"))
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, []string{"C"}, g.Neighbors("B").ToSlice())
	require.Equal(t, []string{"B"}, g.Neighbors("C").ToSlice())
	g.Clear()
	require.Equal(t, true, g.IsEmpty())
	require.Equal(t, 0, g.EdgeCount())
}

func TestGraphNilVertex(t *testing.T) {
	type account struct{ id string }
	g := NewGraph[*account](false)
	require.True(t, errors.Is(g.AddVertex(nil), ErrInvalidArgument))
	require.True(t, errors.Is(g.AddEdge(&account{"a"}, nil, 1), ErrInvalidArgument))
	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, false, g.HasEdge(nil, nil))
	require.Equal(t, 0, g.DFS(nil).Size())
}

func TestGraphTraversal(t *testing.T) {
	g := NewGraph[int](false)
	_ = g.AddEdge(1, 2, DefaultEdgeWeight)
	_ = g.AddEdge(1, 3, DefaultEdgeWeight)
	_ = g.AddEdge(2, 4, DefaultEdgeWeight)
	_ = g.AddEdge(3, 4, DefaultEdgeWeight)
	_ = g.AddEdge(4, 5, DefaultEdgeWeight)
	_ = g.AddEdge(8, 9, DefaultEdgeWeight)
	require.Equal(t, []int{1, 2, 4, 3, 5}, g.DFS(1).ToSlice())
	require.Equal(t, []int{1, 2, 3, 4, 5}, g.BFS(1).ToSlice())
	require.Equal(t, []int{9, 8}, g.BFS(9).ToSlice())
	require.Equal(t, []int{9, 8}, g.DFS(9).ToSlice())
	require.Equal(t, 0, g.BFS(42).Size())
	require.Equal(t, 0, g.DFS(42).Size())
}

func TestGraphTraversalVisitsEachVertexOnce(t *testing.T) {
	g := NewGraph[int](false)
	n := 50
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j += 7 {
			_ = g.AddEdge(i, j, float64(i+j))
		}
	}
	for _, order := range [][]int{g.DFS(13).ToSlice(), g.BFS(13).ToSlice()} {
		require.Equal(t, n, len(order))
		seen := make(map[int]bool)
		for _, v := range order {
			require.Equal(t, false, seen[v])
			seen[v] = true
		}
	}
}

func TestGraphDeepDFS(t *testing.T) {
	g := NewGraph[int](true)
	n := 20000
	for i := 0; i < n; i++ {
		_ = g.AddEdge(i, i+1, DefaultEdgeWeight)
	}
	require.Equal(t, n+1, g.DFS(0).Size())
}
