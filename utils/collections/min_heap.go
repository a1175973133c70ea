package collections

import (
	"cmp"
	"fmt"

	"github.com/tuannh982/expenditure-ledger/utils/math"
	"golang.org/x/exp/constraints"
)

// MinHeap is an array-backed complete binary tree where every parent
// compares less than or equal to its children.
type MinHeap[V any] interface {
	Insert(v V)
	ExtractMin() (V, error)
	Peek() (V, error)
	Replace(match func(V) bool, v V) bool
	Remove(match func(V) bool) (V, bool)
	Size() int
	IsEmpty() bool
	Clear()
	ToSlice() []V
}

// Keyed pairs an ordering key with a payload, for heaps whose entries are
// not ordered themselves.
type Keyed[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

type minHeap[V any] struct {
	entries *DynamicArray[V]
	compare func(a, b V) int
}

func NewMinHeap[V constraints.Ordered]() MinHeap[V] {
	return NewHeapFunc(cmp.Compare[V])
}

func NewHeapFunc[V any](compare func(a, b V) int) MinHeap[V] {
	return &minHeap[V]{
		entries: NewDynamicArray[V](DefaultArrayCapacity),
		compare: compare,
	}
}

// BuildMinHeap inserts vs one at a time.
func BuildMinHeap[V constraints.Ordered](vs ...V) MinHeap[V] {
	h := NewMinHeap[V]()
	for _, v := range vs {
		h.Insert(v)
	}
	return h
}

// BuildKeyedMinHeap builds a heap from parallel key and value slices.
func BuildKeyedMinHeap[K constraints.Ordered, V any](keys []K, values []V) (MinHeap[Keyed[K, V]], error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrInvalidArgument, len(keys), len(values))
	}
	h := NewHeapFunc(func(a, b Keyed[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	for i := range keys {
		h.Insert(Keyed[K, V]{Key: keys[i], Value: values[i]})
	}
	return h, nil
}

func parentOf(i int) int {
	return math.DivFloor(i-1, 2)
}

func (h *minHeap[V]) less(i, j int) bool {
	a, _ := h.entries.Get(i)
	b, _ := h.entries.Get(j)
	return h.compare(a, b) < 0
}

func (h *minHeap[V]) siftUp(i int) {
	for i > 0 {
		p := parentOf(i)
		if !h.less(i, p) {
			return
		}
		h.entries.Swap(i, p)
		i = p
	}
}

func (h *minHeap[V]) siftDown(i int) {
	n := h.entries.Len()
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < n && h.less(left, smallest) {
			smallest = left
		}
		if right < n && h.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.entries.Swap(i, smallest)
		i = smallest
	}
}

func (h *minHeap[V]) Insert(v V) {
	h.entries.Append(v)
	h.siftUp(h.entries.Len() - 1)
}

func (h *minHeap[V]) ExtractMin() (v V, err error) {
	if h.entries.IsEmpty() {
		return v, fmt.Errorf("extract min: %w", ErrEmptyContainer)
	}
	root, _ := h.entries.Get(0)
	last, _ := h.entries.RemoveLast()
	if !h.entries.IsEmpty() {
		_ = h.entries.Set(0, last)
		h.siftDown(0)
	}
	return root, nil
}

func (h *minHeap[V]) Peek() (v V, err error) {
	if h.entries.IsEmpty() {
		return v, fmt.Errorf("peek: %w", ErrEmptyContainer)
	}
	return h.entries.Get(0)
}

// Replace overwrites the first entry matching and restores heap order
// around it. It reports false when nothing matches.
func (h *minHeap[V]) Replace(match func(V) bool, v V) bool {
	for i := 0; i < h.entries.Len(); i++ {
		current, _ := h.entries.Get(i)
		if !match(current) {
			continue
		}
		_ = h.entries.Set(i, v)
		if h.compare(v, current) < 0 {
			h.siftUp(i)
		} else {
			h.siftDown(i)
		}
		return true
	}
	return false
}

// Remove deletes the first entry matching by moving the last entry into
// its slot and re-sifting.
func (h *minHeap[V]) Remove(match func(V) bool) (v V, ok bool) {
	for i := 0; i < h.entries.Len(); i++ {
		current, _ := h.entries.Get(i)
		if !match(current) {
			continue
		}
		last, _ := h.entries.RemoveLast()
		if i < h.entries.Len() {
			_ = h.entries.Set(i, last)
			if h.compare(last, current) < 0 {
				h.siftUp(i)
			} else {
				h.siftDown(i)
			}
		}
		return current, true
	}
	return v, false
}

func (h *minHeap[V]) Size() int {
	return h.entries.Len()
}

func (h *minHeap[V]) IsEmpty() bool {
	return h.entries.IsEmpty()
}

func (h *minHeap[V]) Clear() {
	h.entries.Clear()
}

// ToSlice returns the entries in heap array order.
func (h *minHeap[V]) ToSlice() []V {
	return h.entries.ToSlice()
}

func (h *minHeap[V]) String() string {
	return h.entries.String()
}
