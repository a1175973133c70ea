package collections

import "fmt"

type Stack[V any] interface {
	Push(V)
	Pop() (V, error)
	Peek() (V, error)
	IsEmpty() bool
	IsFull() bool
	Size() int
	Capacity() int
	Clear()
	ToSlice() []V
}

type stack[V any] struct {
	entries *DynamicArray[V]
}

func NewStack[V any]() Stack[V] {
	return NewStackWithCapacity[V](DefaultArrayCapacity)
}

func NewStackWithCapacity[V any](capacity int) Stack[V] {
	return &stack[V]{
		entries: NewDynamicArray[V](capacity),
	}
}

func (s *stack[V]) Push(v V) {
	s.entries.Append(v)
}

func (s *stack[V]) Pop() (V, error) {
	v, err := s.entries.RemoveLast()
	if err != nil {
		return v, fmt.Errorf("pop: %w", err)
	}
	return v, nil
}

func (s *stack[V]) Peek() (V, error) {
	v, err := s.entries.Last()
	if err != nil {
		return v, fmt.Errorf("peek: %w", err)
	}
	return v, nil
}

func (s *stack[V]) IsEmpty() bool {
	return s.entries.IsEmpty()
}

func (s *stack[V]) IsFull() bool {
	return s.entries.IsFull()
}

func (s *stack[V]) Size() int {
	return s.entries.Len()
}

func (s *stack[V]) Capacity() int {
	return s.entries.Cap()
}

func (s *stack[V]) Clear() {
	s.entries.Clear()
}

// ToSlice lists the entries from bottom to top.
func (s *stack[V]) ToSlice() []V {
	return s.entries.ToSlice()
}

func (s stack[V]) String() string {
	return s.entries.String()
}
