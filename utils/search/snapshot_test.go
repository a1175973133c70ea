package search

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuannh982/expenditure-ledger/utils/collections"
)

type account struct {
	ID      string
	Balance int64
}

func balanceOf(a account) int64 { return a.Balance }

func idOf(a account) string { return a.ID }

func accounts() collections.List[account] {
	return collections.ListOf(
		account{"ACC3", 700},
		account{"ACC1", 100},
		account{"ACC5", 300},
		account{"ACC2", 300},
		account{"ACC4", 900},
	)
}

func ids(l collections.List[account]) []string {
	ret := make([]string, 0, l.Size())
	l.ForEach(func(_ int, a account) bool {
		ret = append(ret, a.ID)
		return true
	})
	return ret
}

func TestSnapshotSorted(t *testing.T) {
	s := NewSnapshot(accounts(), balanceOf)
	require.Equal(t, 5, s.Len())
	// equal balances keep source order
	require.Equal(t, []string{"ACC1", "ACC5", "ACC2", "ACC3", "ACC4"}, ids(s.Sorted(true)))
	require.Equal(t, []string{"ACC4", "ACC3", "ACC5", "ACC2", "ACC1"}, ids(s.Sorted(false)))
}

func TestSnapshotSortedMatchesStableSort(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	source := collections.NewLinkedList[account]()
	for i := 0; i < 300; i++ {
		source.Add(account{ID: string(rune('A'+i%26)) + string(rune('a'+i/26)), Balance: r.Int63n(20)})
	}
	s := NewSnapshot(source, balanceOf)
	ascending := source.ToSlice()
	sort.SliceStable(ascending, func(i, j int) bool { return ascending[i].Balance < ascending[j].Balance })
	descending := source.ToSlice()
	sort.SliceStable(descending, func(i, j int) bool { return descending[i].Balance > descending[j].Balance })
	require.Equal(t, ascending, s.Sorted(true).ToSlice())
	require.Equal(t, descending, s.Sorted(false).ToSlice())
}

func TestSnapshotRange(t *testing.T) {
	s := NewSnapshot(accounts(), balanceOf)
	require.Equal(t, []string{"ACC5", "ACC2", "ACC3"}, ids(s.Range(200, 700)))
	require.Equal(t, []string{"ACC5", "ACC2"}, ids(s.Range(300, 300)))
	require.Equal(t, 0, s.Range(800, 200).Size())
	require.Equal(t, 0, s.Range(1000, 2000).Size())
	require.Equal(t, []string{"ACC3", "ACC4"}, ids(s.AtLeast(301)))
	require.Equal(t, []string{"ACC1"}, ids(s.AtMost(299)))
	require.Equal(t, 1, s.LowerBound(101))
	require.Equal(t, -1, s.UpperBound(99))
	require.Equal(t, 5, s.LowerBound(901))
}

func TestSnapshotFind(t *testing.T) {
	s := NewSnapshot(accounts(), idOf)
	a, ok := s.Find("ACC4")
	require.Equal(t, true, ok)
	require.Equal(t, int64(900), a.Balance)
	_, ok = s.Find("ACC9")
	require.Equal(t, false, ok)

	empty := NewSnapshot(collections.NewLinkedList[account](), idOf)
	_, ok = empty.Find("ACC1")
	require.Equal(t, false, ok)
	require.Equal(t, 0, empty.Range("A", "Z").Size())
}

func TestSnapshotPrefix(t *testing.T) {
	names := collections.ListOf("steel", "sand", "cement", "scaffolding", "labor", "Sand")
	s := NewSnapshot(names, strings.ToLower)
	require.Equal(t, []string{"sand", "Sand"}, Prefix(s, "sa").ToSlice())
	require.Equal(t, []string{"sand", "Sand", "scaffolding", "steel"}, Prefix(s, "s").ToSlice())
	require.Equal(t, 0, Prefix(s, "z").Size())
	require.Equal(t, 0, Prefix(s, "").Size())
}

func TestSnapshotRangeMatchesFilter(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	source := collections.NewLinkedList[account]()
	for i := 0; i < 400; i++ {
		source.Add(account{ID: string(rune('A' + i%26)), Balance: r.Int63n(1000)})
	}
	s := NewSnapshot(source, balanceOf)
	for i := 0; i < 200; i++ {
		lo, hi := r.Int63n(1100)-50, r.Int63n(1100)-50
		got := s.Range(lo, hi).ToSlice()
		expected := Filter(source, func(a account) bool {
			return lo <= a.Balance && a.Balance <= hi
		}).ToSlice()
		sortAccounts(got)
		sortAccounts(expected)
		require.Equal(t, expected, got)
	}
}

func sortAccounts(as []account) {
	sort.Slice(as, func(i, j int) bool {
		if as[i].Balance != as[j].Balance {
			return as[i].Balance < as[j].Balance
		}
		return as[i].ID < as[j].ID
	})
}
