package collections

import (
	"fmt"
	"hash/maphash"
	"reflect"
	"strings"

	"github.com/tuannh982/expenditure-ledger/utils/math"
)

const (
	DefaultMapCapacity = 16
	// load factor 3/4
	loadNumerator   = 3
	loadDenominator = 4
)

type bucketNode[K comparable, V any] struct {
	key   K
	value V
	next  *bucketNode[K, V]
}

// hashMap resolves collisions by chaining. New keys are appended to the tail
// of their bucket chain, and the bucket array doubles once size reaches
// three quarters of the capacity.
type hashMap[K comparable, V any] struct {
	buckets []*bucketNode[K, V]
	size    int
	hasher  Hasher[K]
}

func NewHashMap[K comparable, V any]() Map[K, V] {
	return NewHashMapWithCapacity[K, V](DefaultMapCapacity)
}

func NewHashMapWithCapacity[K comparable, V any](capacity int) Map[K, V] {
	return NewHashMapWithHasher[K, V](capacity, nil)
}

func NewHashMapWithHasher[K comparable, V any](capacity int, hasher Hasher[K]) Map[K, V] {
	if capacity <= 0 {
		capacity = DefaultMapCapacity
	}
	if hasher == nil {
		hasher = SeededHasher[K](maphash.MakeSeed())
	}
	return &hashMap[K, V]{
		buckets: make([]*bucketNode[K, V], capacity),
		hasher:  hasher,
	}
}

// SeededHasher hashes any comparable key by value. Nil pointers, channels
// and interfaces hash to 0.
func SeededHasher[K comparable](seed maphash.Seed) Hasher[K] {
	return func(k K) uint64 {
		if isNil(k) {
			return 0
		}
		return maphash.Comparable(seed, k)
	}
}

func isNil[K comparable](k K) bool {
	a := any(k)
	if a == nil {
		return true
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func (m *hashMap[K, V]) index(k K) int {
	return int(m.hasher(k) % uint64(len(m.buckets)))
}

func (m *hashMap[K, V]) threshold() int {
	return math.DivCeil(len(m.buckets)*loadNumerator, loadDenominator)
}

func (m *hashMap[K, V]) find(k K) *bucketNode[K, V] {
	for current := m.buckets[m.index(k)]; current != nil; current = current.next {
		if current.key == k {
			return current
		}
	}
	return nil
}

func (m *hashMap[K, V]) Put(k K, v V) (old V, replaced bool) {
	if node := m.find(k); node != nil {
		old = node.value
		node.value = v
		return old, true
	}
	if m.size >= m.threshold() {
		m.resize()
	}
	m.appendNode(&bucketNode[K, V]{key: k, value: v})
	m.size++
	return old, false
}

func (m *hashMap[K, V]) appendNode(node *bucketNode[K, V]) {
	i := m.index(node.key)
	head := m.buckets[i]
	if head == nil {
		m.buckets[i] = node
		return
	}
	for head.next != nil {
		head = head.next
	}
	head.next = node
}

func (m *hashMap[K, V]) resize() {
	old := m.buckets
	m.buckets = make([]*bucketNode[K, V], len(old)*2)
	for _, head := range old {
		for current := head; current != nil; {
			next := current.next
			current.next = nil
			m.appendNode(current)
			current = next
		}
	}
}

func (m *hashMap[K, V]) Get(k K) (v V, ok bool) {
	if node := m.find(k); node != nil {
		return node.value, true
	}
	return v, false
}

func (m *hashMap[K, V]) Remove(k K) (v V, ok bool) {
	i := m.index(k)
	var prev *bucketNode[K, V]
	for current := m.buckets[i]; current != nil; current = current.next {
		if current.key != k {
			prev = current
			continue
		}
		if prev == nil {
			m.buckets[i] = current.next
		} else {
			prev.next = current.next
		}
		m.size--
		return current.value, true
	}
	return v, false
}

func (m *hashMap[K, V]) ContainsKey(k K) bool {
	return m.find(k) != nil
}

func (m *hashMap[K, V]) Size() int {
	return m.size
}

func (m *hashMap[K, V]) IsEmpty() bool {
	return m.size == 0
}

func (m *hashMap[K, V]) Capacity() int {
	return len(m.buckets)
}

func (m *hashMap[K, V]) Clear() {
	m.buckets = make([]*bucketNode[K, V], len(m.buckets))
	m.size = 0
}

func (m *hashMap[K, V]) each(f func(node *bucketNode[K, V])) {
	for _, head := range m.buckets {
		for current := head; current != nil; current = current.next {
			f(current)
		}
	}
}

func (m *hashMap[K, V]) Keys() List[K] {
	keys := NewLinkedList[K]()
	m.each(func(node *bucketNode[K, V]) {
		keys.Add(node.key)
	})
	return keys
}

func (m *hashMap[K, V]) Values() List[V] {
	values := NewLinkedList[V]()
	m.each(func(node *bucketNode[K, V]) {
		values.Add(node.value)
	})
	return values
}

func (m *hashMap[K, V]) Entries() List[Entry[K, V]] {
	entries := NewLinkedList[Entry[K, V]]()
	m.each(func(node *bucketNode[K, V]) {
		entries.Add(Entry[K, V]{Key: node.key, Value: node.value})
	})
	return entries
}

func (m *hashMap[K, V]) String() string {
	parts := make([]string, 0, m.size)
	m.each(func(node *bucketNode[K, V]) {
		parts = append(parts, fmt.Sprintf("%v=%v", node.key, node.value))
	})
	return "{" + strings.Join(parts, ", ") + "}"
}
