package collections

import (
	"fmt"
	"strings"
)

type hashSet[V comparable] struct {
	entries Map[V, bool]
}

func NewHashSet[V comparable]() Set[V] {
	return &hashSet[V]{
		entries: NewHashMap[V, bool](),
	}
}

func SetOf[V comparable](vs ...V) (Set[V], error) {
	s := NewHashSet[V]()
	for _, v := range vs {
		if _, err := s.Add(v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *hashSet[V]) Contains(v V) bool {
	if isNil(v) {
		return false
	}
	return s.entries.ContainsKey(v)
}

// Add reports whether v was newly inserted. Nil values are rejected.
func (s *hashSet[V]) Add(v V) (bool, error) {
	if isNil(v) {
		return false, fmt.Errorf("%w: set does not allow nil elements", ErrInvalidArgument)
	}
	_, existed := s.entries.Put(v, true)
	return !existed, nil
}

func (s *hashSet[V]) Remove(v V) bool {
	if isNil(v) {
		return false
	}
	_, ok := s.entries.Remove(v)
	return ok
}

func (s *hashSet[V]) Size() int {
	return s.entries.Size()
}

func (s *hashSet[V]) IsEmpty() bool {
	return s.entries.IsEmpty()
}

func (s *hashSet[V]) Clear() {
	s.entries.Clear()
}

func (s *hashSet[V]) Entries() []V {
	return s.entries.Keys().ToSlice()
}

// insert skips the nil check; members of an existing set are never nil.
func (s *hashSet[V]) insert(v V) {
	s.entries.Put(v, true)
}

func (s *hashSet[V]) Union(other Set[V]) Set[V] {
	ret := &hashSet[V]{entries: NewHashMap[V, bool]()}
	for _, v := range s.Entries() {
		ret.insert(v)
	}
	for _, v := range other.Entries() {
		ret.insert(v)
	}
	return ret
}

func (s *hashSet[V]) Intersection(other Set[V]) Set[V] {
	ret := &hashSet[V]{entries: NewHashMap[V, bool]()}
	for _, v := range s.Entries() {
		if other.Contains(v) {
			ret.insert(v)
		}
	}
	return ret
}

func (s *hashSet[V]) Difference(other Set[V]) Set[V] {
	ret := &hashSet[V]{entries: NewHashMap[V, bool]()}
	for _, v := range s.Entries() {
		if !other.Contains(v) {
			ret.insert(v)
		}
	}
	return ret
}

func (s *hashSet[V]) IsSubsetOf(other Set[V]) bool {
	for _, v := range s.Entries() {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

func (s *hashSet[V]) String() string {
	parts := make([]string, 0, s.Size())
	for _, v := range s.Entries() {
		parts = append(parts, fmt.Sprint(v))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
