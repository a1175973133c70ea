package ledger

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/expenditure-ledger/ledger/commons"
	"github.com/tuannh982/expenditure-ledger/ledger/internal"
	"github.com/tuannh982/expenditure-ledger/utils/collections"
	"github.com/tuannh982/expenditure-ledger/utils/search"
)

type NewExpenditure struct {
	Amount      commons.Money
	Date        time.Time
	Phase       commons.Phase
	Category    string
	AccountID   string
	Description string
}

// ExpenditureService stores expenditures keyed by their generated code.
// Every query sorts a fresh snapshot of the store.
type ExpenditureService struct {
	records    collections.Map[string, *commons.Expenditure]
	codes      *internal.Sequence
	categories *CategoryService
	monitor    *internal.Monitor
	log        *log.Entry
}

func NewExpenditureService(opts Options, categories *CategoryService, monitor *internal.Monitor, logger *log.Entry) *ExpenditureService {
	return &ExpenditureService{
		records:    collections.NewHashMapWithCapacity[string, *commons.Expenditure](opts.InitialCapacity),
		codes:      internal.NewSequence(opts.ExpenditurePrefix),
		categories: categories,
		monitor:    monitor,
		log:        logger.WithField("service", "expenditures"),
	}
}

func amountOf(e *commons.Expenditure) int64 {
	return e.Amount.Cents
}

func dateOf(e *commons.Expenditure) int {
	return commons.DateKey(e.Date)
}

func codeOf(e *commons.Expenditure) string {
	return e.Code
}

func categoryOf(e *commons.Expenditure) string {
	return e.Category
}

func (s *ExpenditureService) Record(n NewExpenditure) (*commons.Expenditure, error) {
	if !n.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", commons.ErrInvalidAmount, n.Amount)
	}
	if err := s.categories.Validate(n.Category); err != nil {
		return nil, err
	}
	e := &commons.Expenditure{
		Code:        s.codes.Next(),
		Amount:      n.Amount,
		Date:        n.Date,
		Phase:       n.Phase,
		Category:    n.Category,
		AccountID:   n.AccountID,
		Description: n.Description,
	}
	s.records.Put(e.Code, e)
	s.log.WithFields(log.Fields{"code": e.Code, "amount": e.Amount}).Debug("expenditure recorded")
	return e, nil
}

func (s *ExpenditureService) Get(code string) (*commons.Expenditure, bool) {
	return s.records.Get(code)
}

func (s *ExpenditureService) Delete(code string) (*commons.Expenditure, error) {
	e, ok := s.records.Remove(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownExpenditure, code)
	}
	s.log.WithField("code", code).Debug("expenditure deleted")
	return e, nil
}

func (s *ExpenditureService) AttachReceipt(code, receiptID string) error {
	e, ok := s.records.Get(code)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownExpenditure, code)
	}
	e.ReceiptID = receiptID
	return nil
}

func (s *ExpenditureService) All() collections.List[*commons.Expenditure] {
	return s.records.Values()
}

func (s *ExpenditureService) Count() int {
	return s.records.Size()
}

func (s *ExpenditureService) Total() commons.Money {
	var total commons.Money
	s.records.Values().ForEach(func(_ int, e *commons.Expenditure) bool {
		total = total.Add(e.Amount)
		return true
	})
	return total
}

func (s *ExpenditureService) SortedByAmount(ascending bool) (ret collections.List[*commons.Expenditure]) {
	s.monitor.Measure("expenditures.sort_by_amount", func() {
		ret = search.NewSnapshot(s.All(), amountOf).Sorted(ascending)
	})
	return ret
}

func (s *ExpenditureService) SortedByDate(ascending bool) (ret collections.List[*commons.Expenditure]) {
	s.monitor.Measure("expenditures.sort_by_date", func() {
		ret = search.NewSnapshot(s.All(), dateOf).Sorted(ascending)
	})
	return ret
}

func (s *ExpenditureService) ByAmountRange(lo, hi commons.Money) (ret collections.List[*commons.Expenditure]) {
	s.monitor.Measure("expenditures.amount_range", func() {
		ret = search.NewSnapshot(s.All(), amountOf).Range(lo.Cents, hi.Cents)
	})
	return ret
}

// ByDateRange matches whole days, both ends inclusive.
func (s *ExpenditureService) ByDateRange(from, to time.Time) (ret collections.List[*commons.Expenditure]) {
	s.monitor.Measure("expenditures.date_range", func() {
		ret = search.NewSnapshot(s.All(), dateOf).Range(commons.DateKey(from), commons.DateKey(to))
	})
	return ret
}

func (s *ExpenditureService) ByCategory(category string) (ret collections.List[*commons.Expenditure]) {
	s.monitor.Measure("expenditures.by_category", func() {
		ret = search.NewSnapshot(s.All(), categoryOf).Range(category, category)
	})
	return ret
}

func (s *ExpenditureService) ByAccount(accountID string) collections.List[*commons.Expenditure] {
	return search.Filter(s.All(), func(e *commons.Expenditure) bool {
		return e.AccountID == accountID
	})
}

// FindByCode binary-searches a code-sorted snapshot.
func (s *ExpenditureService) FindByCode(code string) (ret *commons.Expenditure, ok bool) {
	s.monitor.Measure("expenditures.find_by_code", func() {
		ret, ok = search.NewSnapshot(s.All(), codeOf).Find(code)
	})
	return ret, ok
}
