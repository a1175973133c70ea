package ledger

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/expenditure-ledger/ledger/commons"
	"github.com/tuannh982/expenditure-ledger/ledger/internal"
)

const (
	DefaultExpenditurePrefix = "EXP"
	DefaultReceiptPrefix     = "RCP"
	DefaultInitialCapacity   = 16
)

type Options struct {
	ExpenditurePrefix string
	ReceiptPrefix     string
	LowBalance        commons.Money
	InitialCapacity   int
	RecentOperations  int
	Categories        []string
}

func DefaultOptions() Options {
	return Options{
		ExpenditurePrefix: DefaultExpenditurePrefix,
		ReceiptPrefix:     DefaultReceiptPrefix,
		LowBalance:        commons.Cents(100000),
		InitialCapacity:   DefaultInitialCapacity,
		RecentOperations:  internal.DefaultRecentOperations,
	}
}

// Ledger ties the services together. A Ledger is not safe for concurrent
// use.
type Ledger struct {
	Categories   *CategoryService
	Expenditures *ExpenditureService
	Receipts     *ReceiptService
	Accounts     *AccountService
	monitor      *internal.Monitor
	log          *log.Entry
}

func New(opts Options, logger *log.Entry) (*Ledger, error) {
	if opts.ExpenditurePrefix == "" {
		opts.ExpenditurePrefix = DefaultExpenditurePrefix
	}
	if opts.ReceiptPrefix == "" {
		opts.ReceiptPrefix = DefaultReceiptPrefix
	}
	if opts.InitialCapacity <= 0 {
		opts.InitialCapacity = DefaultInitialCapacity
	}
	monitor := internal.NewMonitor(opts.RecentOperations, logger.WithField("service", "monitor"))
	categories := NewCategoryService(logger)
	for _, name := range opts.Categories {
		if err := categories.Add(name, ""); err != nil {
			return nil, fmt.Errorf("seed category: %w", err)
		}
	}
	expenditures := NewExpenditureService(opts, categories, monitor, logger)
	return &Ledger{
		Categories:   categories,
		Expenditures: expenditures,
		Receipts:     NewReceiptService(opts, expenditures, monitor, logger),
		Accounts:     NewAccountService(opts, monitor, logger),
		monitor:      monitor,
		log:          logger,
	}, nil
}

// Spend debits the account and records the expenditure against it. The
// debit is reversed when the expenditure is rejected.
func (l *Ledger) Spend(n NewExpenditure) (*commons.Expenditure, error) {
	if err := l.Categories.Validate(n.Category); err != nil {
		return nil, err
	}
	if err := l.Accounts.Debit(n.AccountID, n.Amount); err != nil {
		return nil, err
	}
	e, err := l.Expenditures.Record(n)
	if err != nil {
		if rerr := l.Accounts.Credit(n.AccountID, n.Amount); rerr != nil {
			l.log.WithFields(log.Fields{"account": n.AccountID, "amount": n.Amount}).WithError(rerr).Error("debit reversal failed")
		}
		return nil, err
	}
	l.log.WithFields(log.Fields{
		"code":     e.Code,
		"account":  e.AccountID,
		"amount":   e.Amount,
		"category": e.Category,
	}).Info("expenditure spent")
	return e, nil
}

// Cancel deletes an expenditure, refunds its account and drops its receipt.
// Nothing changes when the account can no longer be refunded.
func (l *Ledger) Cancel(code string) error {
	e, ok := l.Expenditures.Get(code)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownExpenditure, code)
	}
	if e.AccountID != "" {
		if err := l.Accounts.EnsureActive(e.AccountID); err != nil {
			return fmt.Errorf("refund %s: %w", code, err)
		}
	}
	if e.ReceiptID != "" {
		if err := l.Receipts.Delete(e.ReceiptID); err != nil {
			l.log.WithFields(log.Fields{"code": code, "receipt": e.ReceiptID}).WithError(err).Warn("receipt not deleted")
		}
	}
	if _, err := l.Expenditures.Delete(code); err != nil {
		return err
	}
	if e.AccountID != "" {
		if err := l.Accounts.Credit(e.AccountID, e.Amount); err != nil {
			return fmt.Errorf("refund %s: %w", code, err)
		}
	}
	l.log.WithField("code", code).Info("expenditure cancelled")
	return nil
}

type Summary struct {
	Expenditures    int
	Spent           commons.Money
	Accounts        int
	Balance         commons.Money
	Categories      int
	Receipts        int
	PendingReceipts int
	LowBalance      int
}

func (l *Ledger) Summary() Summary {
	return Summary{
		Expenditures:    l.Expenditures.Count(),
		Spent:           l.Expenditures.Total(),
		Accounts:        l.Accounts.Count(),
		Balance:         l.Accounts.Total(),
		Categories:      l.Categories.Count(),
		Receipts:        l.Receipts.Count(),
		PendingReceipts: l.Receipts.PendingCount(),
		LowBalance:      l.Accounts.LowBalance().Size(),
	}
}

func (s Summary) Fields() log.Fields {
	return log.Fields{
		"expenditures": s.Expenditures,
		"spent":        s.Spent,
		"accounts":     s.Accounts,
		"balance":      s.Balance,
		"categories":   s.Categories,
		"receipts":     s.Receipts,
		"pending":      s.PendingReceipts,
		"low_balance":  s.LowBalance,
	}
}

// SpentByCategory totals spending for each category, in category order.
func (l *Ledger) SpentByCategory() []CategoryTotal {
	var ret []CategoryTotal
	l.Categories.Sorted(true).ForEach(func(_ int, name string) bool {
		var total commons.Money
		l.Expenditures.ByCategory(name).ForEach(func(_ int, e *commons.Expenditure) bool {
			total = total.Add(e.Amount)
			return true
		})
		ret = append(ret, CategoryTotal{Category: name, Spent: total})
		return true
	})
	return ret
}

type CategoryTotal struct {
	Category string
	Spent    commons.Money
}

func (l *Ledger) Stats() internal.Stats {
	return l.monitor.Stats()
}

func (l *Ledger) RecentOperations(n int) []internal.OperationRecord {
	return l.monitor.Recent(n)
}

// Measure times an arbitrary caller operation alongside the ledger's own
// queries.
func (l *Ledger) Measure(name string, f func()) time.Duration {
	return l.monitor.Measure(name, f)
}
