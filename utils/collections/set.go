package collections

type Set[V comparable] interface {
	Contains(v V) bool
	Add(v V) (bool, error)
	Remove(v V) bool
	Size() int
	IsEmpty() bool
	Clear()
	Entries() []V
	Union(other Set[V]) Set[V]
	Intersection(other Set[V]) Set[V]
	Difference(other Set[V]) Set[V]
	IsSubsetOf(other Set[V]) bool
}
