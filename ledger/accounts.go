package ledger

import (
	"cmp"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/expenditure-ledger/ledger/commons"
	"github.com/tuannh982/expenditure-ledger/ledger/internal"
	"github.com/tuannh982/expenditure-ledger/utils/collections"
	"github.com/tuannh982/expenditure-ledger/utils/search"
)

type balanceEntry = collections.Keyed[int64, string]

// AccountService keeps bank accounts, a balance-ordered heap for low
// balance monitoring and an undirected graph of related accounts.
type AccountService struct {
	accounts   collections.Map[string, *commons.BankAccount]
	balances   collections.MinHeap[balanceEntry]
	related    collections.Graph[string]
	lowBalance commons.Money
	monitor    *internal.Monitor
	log        *log.Entry
}

func NewAccountService(opts Options, monitor *internal.Monitor, logger *log.Entry) *AccountService {
	return &AccountService{
		accounts:   collections.NewHashMapWithCapacity[string, *commons.BankAccount](opts.InitialCapacity),
		balances:   collections.NewHeapFunc(compareBalances),
		related:    collections.NewGraph[string](false),
		lowBalance: opts.LowBalance,
		monitor:    monitor,
		log:        logger.WithField("service", "accounts"),
	}
}

// compareBalances orders by balance, then by account id.
func compareBalances(a, b balanceEntry) int {
	if c := cmp.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	return cmp.Compare(a.Value, b.Value)
}

func matchAccount(id string) func(balanceEntry) bool {
	return func(e balanceEntry) bool {
		return e.Value == id
	}
}

func balanceOf(a *commons.BankAccount) int64 {
	return a.Balance.Cents
}

func accountIDOf(a *commons.BankAccount) string {
	return a.ID
}

func (s *AccountService) Open(id, bankName, accountNumber string, opening commons.Money) (*commons.BankAccount, error) {
	id = strings.TrimSpace(id)
	if id == "" || opening.Cents < 0 {
		return nil, fmt.Errorf("%w: id=%q opening=%s", ErrInvalidAccount, id, opening)
	}
	if s.accounts.ContainsKey(id) {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateAccount, id)
	}
	a := &commons.BankAccount{
		ID:            id,
		BankName:      bankName,
		AccountNumber: accountNumber,
		Balance:       opening,
		Active:        true,
	}
	s.accounts.Put(id, a)
	s.balances.Insert(balanceEntry{Key: opening.Cents, Value: id})
	if err := s.related.AddVertex(id); err != nil {
		return nil, err
	}
	s.log.WithFields(log.Fields{"account": id, "balance": opening}).Debug("account opened")
	s.checkLow(a)
	return a, nil
}

func (s *AccountService) Get(id string) (*commons.BankAccount, bool) {
	return s.accounts.Get(id)
}

func (s *AccountService) active(id string) (*commons.BankAccount, error) {
	a, ok := s.accounts.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, id)
	}
	if !a.Active {
		return nil, fmt.Errorf("%w: %s", ErrInactiveAccount, id)
	}
	return a, nil
}

// EnsureActive fails when id is unknown or closed.
func (s *AccountService) EnsureActive(id string) error {
	_, err := s.active(id)
	return err
}

func (s *AccountService) setBalance(a *commons.BankAccount, balance commons.Money) {
	a.Balance = balance
	s.balances.Replace(matchAccount(a.ID), balanceEntry{Key: balance.Cents, Value: a.ID})
}

func (s *AccountService) checkLow(a *commons.BankAccount) {
	if a.Balance.Cents < s.lowBalance.Cents {
		s.log.WithFields(log.Fields{
			"account":   a.ID,
			"balance":   a.Balance,
			"threshold": s.lowBalance,
		}).Warn("account balance below threshold")
	}
}

func (s *AccountService) Credit(id string, amount commons.Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s", commons.ErrInvalidAmount, amount)
	}
	a, err := s.active(id)
	if err != nil {
		return err
	}
	s.setBalance(a, a.Balance.Add(amount))
	s.log.WithFields(log.Fields{"account": id, "amount": amount, "balance": a.Balance}).Debug("account credited")
	return nil
}

func (s *AccountService) Debit(id string, amount commons.Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s", commons.ErrInvalidAmount, amount)
	}
	a, err := s.active(id)
	if err != nil {
		return err
	}
	if a.Balance.Cents < amount.Cents {
		s.log.WithFields(log.Fields{"account": id, "amount": amount, "balance": a.Balance}).Info("debit rejected")
		return fmt.Errorf("%w: %s has %s, needs %s", ErrInsufficientFunds, id, a.Balance, amount)
	}
	s.setBalance(a, a.Balance.Sub(amount))
	s.log.WithFields(log.Fields{"account": id, "amount": amount, "balance": a.Balance}).Debug("account debited")
	s.checkLow(a)
	return nil
}

func (s *AccountService) CanCover(id string, amount commons.Money) bool {
	a, err := s.active(id)
	if err != nil {
		return false
	}
	return a.Balance.Cents >= amount.Cents
}

// Close deactivates the account and drops it from balance monitoring and
// the relationship graph. Its record stays retrievable.
func (s *AccountService) Close(id string) error {
	a, err := s.active(id)
	if err != nil {
		return err
	}
	a.Active = false
	s.balances.Remove(matchAccount(id))
	s.related.RemoveVertex(id)
	s.log.WithField("account", id).Info("account closed")
	return nil
}

// Lowest is the active account with the smallest balance.
func (s *AccountService) Lowest() (*commons.BankAccount, error) {
	e, err := s.balances.Peek()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAccount, err)
	}
	a, _ := s.accounts.Get(e.Value)
	return a, nil
}

// LowBalance lists active accounts under the threshold, lowest first. It
// drains a copy of the heap so the monitor itself is untouched.
func (s *AccountService) LowBalance() collections.List[*commons.BankAccount] {
	ret := collections.NewLinkedList[*commons.BankAccount]()
	scan := collections.NewHeapFunc(compareBalances)
	for _, e := range s.balances.ToSlice() {
		scan.Insert(e)
	}
	for !scan.IsEmpty() {
		e, _ := scan.ExtractMin()
		if e.Key >= s.lowBalance.Cents {
			break
		}
		a, _ := s.accounts.Get(e.Value)
		ret.Add(a)
	}
	return ret
}

func (s *AccountService) Relate(a, b string, weight float64) error {
	for _, id := range []string{a, b} {
		if _, err := s.active(id); err != nil {
			return err
		}
	}
	return s.related.AddEdge(a, b, weight)
}

func (s *AccountService) Unrelate(a, b string) bool {
	return s.related.RemoveEdge(a, b)
}

// Related lists every account reachable from id, nearest first, excluding
// id itself.
func (s *AccountService) Related(id string) collections.List[*commons.BankAccount] {
	ret := collections.NewLinkedList[*commons.BankAccount]()
	s.related.BFS(id).ForEach(func(_ int, other string) bool {
		if other == id {
			return true
		}
		if a, ok := s.accounts.Get(other); ok {
			ret.Add(a)
		}
		return true
	})
	return ret
}

func (s *AccountService) RelationWeight(a, b string) (float64, error) {
	return s.related.EdgeWeight(a, b)
}

func (s *AccountService) All() collections.List[*commons.BankAccount] {
	return s.accounts.Values()
}

// open lists active accounts. Closed accounts stay reachable through Get
// and All but are left out of balance queries.
func (s *AccountService) open() collections.List[*commons.BankAccount] {
	return search.Filter(s.All(), func(a *commons.BankAccount) bool {
		return a.Active
	})
}

func (s *AccountService) Count() int {
	return s.accounts.Size()
}

func (s *AccountService) Total() commons.Money {
	var total commons.Money
	s.open().ForEach(func(_ int, a *commons.BankAccount) bool {
		total = total.Add(a.Balance)
		return true
	})
	return total
}

func (s *AccountService) SortedByBalance(ascending bool) (ret collections.List[*commons.BankAccount]) {
	s.monitor.Measure("accounts.sort_by_balance", func() {
		ret = search.NewSnapshot(s.open(), balanceOf).Sorted(ascending)
	})
	return ret
}

func (s *AccountService) BalanceRange(lo, hi commons.Money) (ret collections.List[*commons.BankAccount]) {
	s.monitor.Measure("accounts.balance_range", func() {
		ret = search.NewSnapshot(s.open(), balanceOf).Range(lo.Cents, hi.Cents)
	})
	return ret
}

func (s *AccountService) AtLeast(floor commons.Money) (ret collections.List[*commons.BankAccount]) {
	s.monitor.Measure("accounts.at_least", func() {
		ret = search.NewSnapshot(s.open(), balanceOf).AtLeast(floor.Cents)
	})
	return ret
}

// FindByID binary-searches active accounts only.
func (s *AccountService) FindByID(id string) (ret *commons.BankAccount, ok bool) {
	s.monitor.Measure("accounts.find_by_id", func() {
		ret, ok = search.NewSnapshot(s.open(), accountIDOf).Find(id)
	})
	return ret, ok
}
