// Package search answers exact, range and prefix queries over a sorted copy
// of a collection.
//
// A Snapshot is built from an exported List and is decoupled from later
// changes to its source. Building one costs a full O(n log n) stable sort;
// each query afterwards is O(log n + k). Callers that rebuild a snapshot per
// query pay the sort every time.
package search

import (
	"strings"

	"github.com/tuannh982/expenditure-ledger/utils/collections"
	"golang.org/x/exp/constraints"
)

type Snapshot[V any, K constraints.Ordered] struct {
	entries []V
	keys    []K
}

// NewSnapshot copies l and sorts it ascending by key. Entries with equal
// keys keep their order in l.
func NewSnapshot[V any, K constraints.Ordered](l collections.List[V], key func(V) K) *Snapshot[V, K] {
	entries := l.ToSlice()
	keys := make([]K, len(entries))
	for i, v := range entries {
		keys[i] = key(v)
	}
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	order = mergeSort(order, func(a, b int) bool { return keys[a] < keys[b] })
	s := &Snapshot[V, K]{
		entries: make([]V, len(entries)),
		keys:    make([]K, len(entries)),
	}
	for i, j := range order {
		s.entries[i] = entries[j]
		s.keys[i] = keys[j]
	}
	return s
}

func (s *Snapshot[V, K]) Len() int {
	return len(s.entries)
}

func (s *Snapshot[V, K]) slice(from, to int) collections.List[V] {
	if from >= to {
		return collections.NewLinkedList[V]()
	}
	return collections.ListOf(s.entries[from:to]...)
}

// Sorted lists every entry. Both directions are stable: entries with equal
// keys keep their order in the source list.
func (s *Snapshot[V, K]) Sorted(ascending bool) collections.List[V] {
	if ascending {
		return s.slice(0, len(s.entries))
	}
	order := make([]int, len(s.entries))
	for i := range order {
		order[i] = i
	}
	order = mergeSort(order, func(a, b int) bool { return s.keys[a] > s.keys[b] })
	ret := collections.NewLinkedList[V]()
	for _, i := range order {
		ret.Add(s.entries[i])
	}
	return ret
}

// LowerBound is the first index whose key is >= k, or Len() if none.
func (s *Snapshot[V, K]) LowerBound(k K) int {
	left, right := 0, len(s.keys)-1
	ret := len(s.keys)
	for left <= right {
		mid := left + (right-left)/2
		if s.keys[mid] >= k {
			ret = mid
			right = mid - 1
		} else {
			left = mid + 1
		}
	}
	return ret
}

// UpperBound is the last index whose key is <= k, or -1 if none.
func (s *Snapshot[V, K]) UpperBound(k K) int {
	left, right := 0, len(s.keys)-1
	ret := -1
	for left <= right {
		mid := left + (right-left)/2
		if s.keys[mid] <= k {
			ret = mid
			left = mid + 1
		} else {
			right = mid - 1
		}
	}
	return ret
}

// Find returns whichever entry with key k the search narrows to first.
func (s *Snapshot[V, K]) Find(k K) (v V, ok bool) {
	left, right := 0, len(s.keys)-1
	for left <= right {
		mid := left + (right-left)/2
		switch {
		case s.keys[mid] == k:
			return s.entries[mid], true
		case s.keys[mid] < k:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return v, false
}

// Range lists entries with lo <= key <= hi in ascending order.
func (s *Snapshot[V, K]) Range(lo, hi K) collections.List[V] {
	return s.slice(s.LowerBound(lo), s.UpperBound(hi)+1)
}

func (s *Snapshot[V, K]) AtLeast(k K) collections.List[V] {
	return s.slice(s.LowerBound(k), len(s.entries))
}

func (s *Snapshot[V, K]) AtMost(k K) collections.List[V] {
	return s.slice(0, s.UpperBound(k)+1)
}

// Prefix lists entries whose key starts with prefix. An empty prefix
// matches nothing.
func Prefix[V any, K ~string](s *Snapshot[V, K], prefix K) collections.List[V] {
	ret := collections.NewLinkedList[V]()
	if prefix == "" {
		return ret
	}
	for i := s.LowerBound(prefix); i < len(s.keys); i++ {
		if !strings.HasPrefix(string(s.keys[i]), string(prefix)) {
			break
		}
		ret.Add(s.entries[i])
	}
	return ret
}

// Filter is the linear scan the binary searches must agree with.
func Filter[V any](l collections.List[V], keep func(V) bool) collections.List[V] {
	ret := collections.NewLinkedList[V]()
	l.ForEach(func(_ int, v V) bool {
		if keep(v) {
			ret.Add(v)
		}
		return true
	})
	return ret
}
