package collections

type Map[K comparable, V any] interface {
	Put(k K, v V) (old V, replaced bool)
	Get(k K) (V, bool)
	Remove(k K) (V, bool)
	ContainsKey(k K) bool
	Size() int
	IsEmpty() bool
	Capacity() int
	Clear()
	Keys() List[K]
	Values() List[V]
	Entries() List[Entry[K, V]]
}

type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Hasher maps a key to a bucket-independent hash code.
type Hasher[K comparable] func(K) uint64
