package collections

import (
	"fmt"
)

type Queue[V any] interface {
	Enqueue(V)
	Dequeue() (V, error)
	Peek() (V, error)
	IsEmpty() bool
	IsFull() bool
	Size() int
	Capacity() int
	Clear()
	ToSlice() []V
}

// queue is a circular buffer: front is the next slot to dequeue and rear
// the last slot written, both modulo the capacity.
type queue[V any] struct {
	entries []V
	front   int
	rear    int
	size    int
}

func NewQueue[V any]() Queue[V] {
	return NewQueueWithCapacity[V](DefaultArrayCapacity)
}

func NewQueueWithCapacity[V any](capacity int) Queue[V] {
	if capacity <= 0 {
		capacity = DefaultArrayCapacity
	}
	return &queue[V]{
		entries: make([]V, capacity),
		front:   0,
		rear:    -1,
	}
}

func (q *queue[V]) Enqueue(v V) {
	if q.IsFull() {
		q.entries = regrow(q.entries, q.front, q.size)
		q.front = 0
		q.rear = q.size - 1
	}
	q.rear = (q.rear + 1) % len(q.entries)
	q.entries[q.rear] = v
	q.size++
}

func (q *queue[V]) Dequeue() (v V, err error) {
	if q.size == 0 {
		return v, fmt.Errorf("dequeue: %w", ErrEmptyContainer)
	}
	ret := q.entries[q.front]
	q.entries[q.front] = v
	q.front = (q.front + 1) % len(q.entries)
	q.size--
	return ret, nil
}

func (q *queue[V]) Peek() (v V, err error) {
	if q.size == 0 {
		return v, fmt.Errorf("peek: %w", ErrEmptyContainer)
	}
	return q.entries[q.front], nil
}

func (q *queue[V]) IsEmpty() bool {
	return q.size == 0
}

func (q *queue[V]) IsFull() bool {
	return q.size == len(q.entries)
}

func (q *queue[V]) Size() int {
	return q.size
}

func (q *queue[V]) Capacity() int {
	return len(q.entries)
}

func (q *queue[V]) Clear() {
	var zero V
	for i := range q.entries {
		q.entries[i] = zero
	}
	q.front = 0
	q.rear = -1
	q.size = 0
}

// ToSlice lists the entries from front to rear.
func (q *queue[V]) ToSlice() []V {
	arr := make([]V, q.size)
	for i := 0; i < q.size; i++ {
		arr[i] = q.entries[(q.front+i)%len(q.entries)]
	}
	return arr
}

func (q queue[V]) String() string {
	return fmt.Sprint(q.ToSlice())
}
