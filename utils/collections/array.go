package collections

import "fmt"

const DefaultArrayCapacity = 10

// DynamicArray is contiguous storage that doubles its capacity when an
// append finds it full. It never shrinks on removal.
type DynamicArray[V any] struct {
	entries []V
	size    int
}

func NewDynamicArray[V any](capacity int) *DynamicArray[V] {
	if capacity <= 0 {
		capacity = DefaultArrayCapacity
	}
	return &DynamicArray[V]{
		entries: make([]V, capacity),
	}
}

func (a *DynamicArray[V]) checkIndex(i int) error {
	if i < 0 || i >= a.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, a.size)
	}
	return nil
}

func (a *DynamicArray[V]) Append(v V) {
	if a.IsFull() {
		a.entries = regrow(a.entries, 0, a.size)
	}
	a.entries[a.size] = v
	a.size++
}

func (a *DynamicArray[V]) Get(i int) (v V, err error) {
	if err = a.checkIndex(i); err != nil {
		return v, err
	}
	return a.entries[i], nil
}

func (a *DynamicArray[V]) Set(i int, v V) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.entries[i] = v
	return nil
}

func (a *DynamicArray[V]) Last() (v V, err error) {
	if a.size == 0 {
		return v, ErrEmptyContainer
	}
	return a.entries[a.size-1], nil
}

func (a *DynamicArray[V]) RemoveLast() (v V, err error) {
	if a.size == 0 {
		return v, ErrEmptyContainer
	}
	a.size--
	ret := a.entries[a.size]
	var zero V
	a.entries[a.size] = zero
	return ret, nil
}

// Swap exchanges two live slots. Callers guarantee both indices are valid.
func (a *DynamicArray[V]) Swap(i, j int) {
	a.entries[i], a.entries[j] = a.entries[j], a.entries[i]
}

func (a *DynamicArray[V]) Len() int {
	return a.size
}

func (a *DynamicArray[V]) Cap() int {
	return len(a.entries)
}

func (a *DynamicArray[V]) IsEmpty() bool {
	return a.size == 0
}

func (a *DynamicArray[V]) IsFull() bool {
	return a.size == len(a.entries)
}

func (a *DynamicArray[V]) Clear() {
	var zero V
	for i := 0; i < a.size; i++ {
		a.entries[i] = zero
	}
	a.size = 0
}

func (a *DynamicArray[V]) ToSlice() []V {
	arr := make([]V, a.size)
	copy(arr, a.entries[:a.size])
	return arr
}

func (a DynamicArray[V]) String() string {
	return fmt.Sprint(a.entries[:a.size])
}

// regrow copies n logical elements starting at front (wrapping around the
// end of old) into a fresh array of twice the capacity, starting at index 0.
func regrow[V any](old []V, front, n int) []V {
	capacity := len(old) * 2
	if capacity == 0 {
		capacity = DefaultArrayCapacity
	}
	arr := make([]V, capacity)
	for i := 0; i < n; i++ {
		arr[i] = old[(front+i)%len(old)]
	}
	return arr
}
