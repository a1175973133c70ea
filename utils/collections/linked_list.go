package collections

import (
	"fmt"
	"strings"
)

// List is an insertion-ordered, singly linked sequence. Index based access
// walks from the head.
type List[V any] interface {
	Add(v V)
	Insert(index int, v V) error
	Get(index int) (V, error)
	RemoveAt(index int) (V, error)
	RemoveFunc(match func(V) bool) bool
	IndexFunc(match func(V) bool) int
	ForEach(f func(index int, v V) bool)
	Size() int
	IsEmpty() bool
	Clear()
	ToSlice() []V
}

type listNode[V any] struct {
	value V
	next  *listNode[V]
}

type linkedList[V any] struct {
	head *listNode[V]
	tail *listNode[V]
	size int
}

func NewLinkedList[V any]() List[V] {
	return &linkedList[V]{}
}

func ListOf[V any](vs ...V) List[V] {
	l := &linkedList[V]{}
	for _, v := range vs {
		l.Add(v)
	}
	return l
}

func (l *linkedList[V]) outOfRange(index, limit int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, limit)
}

func (l *linkedList[V]) nodeAt(index int) *listNode[V] {
	current := l.head
	for i := 0; i < index; i++ {
		current = current.next
	}
	return current
}

func (l *linkedList[V]) Add(v V) {
	node := &listNode[V]{value: v}
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.next = node
	}
	l.tail = node
	l.size++
}

func (l *linkedList[V]) Insert(index int, v V) error {
	if index < 0 || index > l.size {
		return l.outOfRange(index, l.size)
	}
	if index == l.size {
		l.Add(v)
		return nil
	}
	node := &listNode[V]{value: v}
	if index == 0 {
		node.next = l.head
		l.head = node
	} else {
		prev := l.nodeAt(index - 1)
		node.next = prev.next
		prev.next = node
	}
	l.size++
	return nil
}

func (l *linkedList[V]) Get(index int) (v V, err error) {
	if index < 0 || index >= l.size {
		return v, l.outOfRange(index, l.size)
	}
	return l.nodeAt(index).value, nil
}

func (l *linkedList[V]) RemoveAt(index int) (v V, err error) {
	if index < 0 || index >= l.size {
		return v, l.outOfRange(index, l.size)
	}
	if index == 0 {
		removed := l.head
		l.head = removed.next
		if l.head == nil {
			l.tail = nil
		}
		l.size--
		return removed.value, nil
	}
	prev := l.nodeAt(index - 1)
	removed := prev.next
	prev.next = removed.next
	if removed == l.tail {
		l.tail = prev
	}
	l.size--
	return removed.value, nil
}

// RemoveFunc unlinks the first value for which match returns true.
func (l *linkedList[V]) RemoveFunc(match func(V) bool) bool {
	var prev *listNode[V]
	for current := l.head; current != nil; current = current.next {
		if !match(current.value) {
			prev = current
			continue
		}
		if prev == nil {
			l.head = current.next
		} else {
			prev.next = current.next
		}
		if current == l.tail {
			l.tail = prev
		}
		l.size--
		return true
	}
	return false
}

func (l *linkedList[V]) IndexFunc(match func(V) bool) int {
	i := 0
	for current := l.head; current != nil; current = current.next {
		if match(current.value) {
			return i
		}
		i++
	}
	return -1
}

// ForEach visits values in order until f returns false.
func (l *linkedList[V]) ForEach(f func(index int, v V) bool) {
	i := 0
	for current := l.head; current != nil; current = current.next {
		if !f(i, current.value) {
			return
		}
		i++
	}
}

func (l *linkedList[V]) Size() int {
	return l.size
}

func (l *linkedList[V]) IsEmpty() bool {
	return l.size == 0
}

func (l *linkedList[V]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

func (l *linkedList[V]) ToSlice() []V {
	arr := make([]V, 0, l.size)
	for current := l.head; current != nil; current = current.next {
		arr = append(arr, current.value)
	}
	return arr
}

func (l *linkedList[V]) String() string {
	parts := make([]string, 0, l.size)
	for current := l.head; current != nil; current = current.next {
		parts = append(parts, fmt.Sprint(current.value))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func Contains[V comparable](l List[V], v V) bool {
	return l.IndexFunc(func(x V) bool { return x == v }) >= 0
}

func Remove[V comparable](l List[V], v V) bool {
	return l.RemoveFunc(func(x V) bool { return x == v })
}
