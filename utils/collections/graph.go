package collections

import (
	"fmt"
	"strings"
)

const DefaultEdgeWeight = 1.0

type Graph[V comparable] interface {
	AddVertex(v V) error
	AddEdge(src, dst V, weight float64) error
	RemoveVertex(v V) bool
	RemoveEdge(src, dst V) bool
	HasVertex(v V) bool
	HasEdge(src, dst V) bool
	EdgeWeight(src, dst V) (float64, error)
	Neighbors(v V) List[V]
	Edges(v V) List[Edge[V]]
	Vertices() List[V]
	VertexCount() int
	EdgeCount() int
	IsDirected() bool
	IsEmpty() bool
	Clear()
	DFS(start V) List[V]
	BFS(start V) List[V]
}

type Edge[V comparable] struct {
	Destination V
	Weight      float64
}

func (e Edge[V]) String() string {
	return fmt.Sprintf("%v(%g)", e.Destination, e.Weight)
}

// graph stores an adjacency list per vertex. An undirected edge is kept in
// both endpoint lists and counted once; an undirected self-loop is kept once.
type graph[V comparable] struct {
	adjacency Map[V, List[Edge[V]]]
	directed  bool
	edges     int
}

func NewGraph[V comparable](directed bool) Graph[V] {
	return &graph[V]{
		adjacency: NewHashMap[V, List[Edge[V]]](),
		directed:  directed,
	}
}

func (g *graph[V]) AddVertex(v V) error {
	if isNil(v) {
		return fmt.Errorf("%w: vertex cannot be nil", ErrInvalidArgument)
	}
	if !g.adjacency.ContainsKey(v) {
		g.adjacency.Put(v, NewLinkedList[Edge[V]]())
	}
	return nil
}

// setEdge points src at dst with weight, reporting whether the edge is new.
func (g *graph[V]) setEdge(src, dst V, weight float64) bool {
	edges, _ := g.adjacency.Get(src)
	i := edges.IndexFunc(func(e Edge[V]) bool { return e.Destination == dst })
	if i < 0 {
		edges.Add(Edge[V]{Destination: dst, Weight: weight})
		return true
	}
	_, _ = edges.RemoveAt(i)
	_ = edges.Insert(i, Edge[V]{Destination: dst, Weight: weight})
	return false
}

func (g *graph[V]) unsetEdge(src, dst V) bool {
	edges, ok := g.adjacency.Get(src)
	if !ok {
		return false
	}
	return edges.RemoveFunc(func(e Edge[V]) bool { return e.Destination == dst })
}

// AddEdge adds missing endpoints, and updates the weight in place when the
// edge already exists.
func (g *graph[V]) AddEdge(src, dst V, weight float64) error {
	if isNil(src) || isNil(dst) {
		return fmt.Errorf("%w: vertices cannot be nil", ErrInvalidArgument)
	}
	_ = g.AddVertex(src)
	_ = g.AddVertex(dst)
	added := g.setEdge(src, dst, weight)
	if !g.directed && src != dst {
		g.setEdge(dst, src, weight)
	}
	if added {
		g.edges++
	}
	return nil
}

func (g *graph[V]) RemoveVertex(v V) bool {
	if isNil(v) {
		return false
	}
	own, ok := g.adjacency.Remove(v)
	if !ok {
		return false
	}
	g.edges -= own.Size()
	g.adjacency.Values().ForEach(func(_ int, edges List[Edge[V]]) bool {
		if edges.RemoveFunc(func(e Edge[V]) bool { return e.Destination == v }) && g.directed {
			g.edges--
		}
		return true
	})
	return true
}

func (g *graph[V]) RemoveEdge(src, dst V) bool {
	if !g.HasVertex(src) || !g.HasVertex(dst) {
		return false
	}
	if !g.unsetEdge(src, dst) {
		return false
	}
	if !g.directed && src != dst {
		g.unsetEdge(dst, src)
	}
	g.edges--
	return true
}

func (g *graph[V]) HasVertex(v V) bool {
	if isNil(v) {
		return false
	}
	return g.adjacency.ContainsKey(v)
}

func (g *graph[V]) edge(src, dst V) (Edge[V], bool) {
	var found Edge[V]
	edges, ok := g.adjacency.Get(src)
	if !ok {
		return found, false
	}
	i := edges.IndexFunc(func(e Edge[V]) bool { return e.Destination == dst })
	if i < 0 {
		return found, false
	}
	found, _ = edges.Get(i)
	return found, true
}

func (g *graph[V]) HasEdge(src, dst V) bool {
	if isNil(src) {
		return false
	}
	_, ok := g.edge(src, dst)
	return ok
}

func (g *graph[V]) EdgeWeight(src, dst V) (float64, error) {
	if isNil(src) {
		return 0, fmt.Errorf("%w: edge %v -> %v", ErrNotFound, src, dst)
	}
	e, ok := g.edge(src, dst)
	if !ok {
		return 0, fmt.Errorf("%w: edge %v -> %v", ErrNotFound, src, dst)
	}
	return e.Weight, nil
}

func (g *graph[V]) Neighbors(v V) List[V] {
	ret := NewLinkedList[V]()
	if !g.HasVertex(v) {
		return ret
	}
	edges, _ := g.adjacency.Get(v)
	edges.ForEach(func(_ int, e Edge[V]) bool {
		ret.Add(e.Destination)
		return true
	})
	return ret
}

func (g *graph[V]) Edges(v V) List[Edge[V]] {
	if !g.HasVertex(v) {
		return NewLinkedList[Edge[V]]()
	}
	edges, _ := g.adjacency.Get(v)
	return ListOf(edges.ToSlice()...)
}

func (g *graph[V]) Vertices() List[V] {
	return g.adjacency.Keys()
}

func (g *graph[V]) VertexCount() int {
	return g.adjacency.Size()
}

func (g *graph[V]) EdgeCount() int {
	return g.edges
}

func (g *graph[V]) IsDirected() bool {
	return g.directed
}

func (g *graph[V]) IsEmpty() bool {
	return g.adjacency.IsEmpty()
}

func (g *graph[V]) Clear() {
	g.adjacency.Clear()
	g.edges = 0
}

type dfsFrame[V comparable] struct {
	edges []Edge[V]
	next  int
}

// DFS visits vertices in recursive pre-order over adjacency order, using an
// explicit frame stack. Unknown start vertices yield an empty list.
func (g *graph[V]) DFS(start V) List[V] {
	ret := NewLinkedList[V]()
	if !g.HasVertex(start) {
		return ret
	}
	visited := NewHashSet[V]()
	frames := NewStack[*dfsFrame[V]]()
	visit := func(v V) {
		_, _ = visited.Add(v)
		ret.Add(v)
		edges, _ := g.adjacency.Get(v)
		frames.Push(&dfsFrame[V]{edges: edges.ToSlice()})
	}
	visit(start)
	for !frames.IsEmpty() {
		frame, _ := frames.Peek()
		if frame.next >= len(frame.edges) {
			_, _ = frames.Pop()
			continue
		}
		neighbor := frame.edges[frame.next].Destination
		frame.next++
		if !visited.Contains(neighbor) {
			visit(neighbor)
		}
	}
	return ret
}

func (g *graph[V]) BFS(start V) List[V] {
	ret := NewLinkedList[V]()
	if !g.HasVertex(start) {
		return ret
	}
	visited := NewHashSet[V]()
	pending := NewQueue[V]()
	_, _ = visited.Add(start)
	pending.Enqueue(start)
	for !pending.IsEmpty() {
		current, _ := pending.Dequeue()
		ret.Add(current)
		edges, _ := g.adjacency.Get(current)
		edges.ForEach(func(_ int, e Edge[V]) bool {
			if !visited.Contains(e.Destination) {
				_, _ = visited.Add(e.Destination)
				pending.Enqueue(e.Destination)
			}
			return true
		})
	}
	return ret
}

func (g *graph[V]) String() string {
	if g.IsEmpty() {
		return "Graph: Empty"
	}
	var sb strings.Builder
	kind := "Undirected"
	if g.directed {
		kind = "Directed"
	}
	sb.WriteString(fmt.Sprintf("Graph (%s):\n", kind))
	sb.WriteString(fmt.Sprintf("Vertices: %d, Edges: %d\n", g.VertexCount(), g.edges))
	g.adjacency.Entries().ForEach(func(_ int, e Entry[V, List[Edge[V]]]) bool {
		sb.WriteString(fmt.Sprintf("%v -> %v\n", e.Key, e.Value))
		return true
	})
	return sb.String()
}
