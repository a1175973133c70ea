package ledger

import (
	"errors"
	"io"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/tuannh982/expenditure-ledger/ledger/commons"
)

func quietLogger() *log.Entry {
	l := log.New()
	l.SetOutput(io.Discard)
	return log.NewEntry(l)
}

func newTestLedger(t *testing.T) *Ledger {
	opts := DefaultOptions()
	opts.Categories = []string{"Food", "Transport"}
	l, err := New(opts, quietLogger())
	require.Nil(t, err)
	return l
}

func TestNewLedger(t *testing.T) {
	opts := Options{Categories: []string{"Food", "Food"}}
	_, err := New(opts, quietLogger())
	require.True(t, errors.Is(err, ErrDuplicateCategory))

	l, err := New(Options{}, quietLogger())
	require.Nil(t, err)
	require.Equal(t, Summary{}, l.Summary())
}

func TestLedgerSpendAndCancel(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Accounts.Open("main", "Bank", "IT001", commons.Cents(300000))
	require.Nil(t, err)

	e, err := l.Spend(NewExpenditure{
		Amount:    commons.Cents(120000),
		Date:      day(3),
		Phase:     commons.Construction,
		Category:  "Food",
		AccountID: "main",
	})
	require.Nil(t, err)
	require.Equal(t, "EXP0001", e.Code)
	a, _ := l.Accounts.Get("main")
	require.Equal(t, commons.Cents(180000), a.Balance)

	_, err = l.Spend(NewExpenditure{Amount: commons.Cents(500000), Date: day(3), Category: "Food", AccountID: "main"})
	require.True(t, errors.Is(err, ErrInsufficientFunds))
	_, err = l.Spend(NewExpenditure{Amount: commons.Cents(100), Date: day(3), Category: "Fuel", AccountID: "main"})
	require.True(t, errors.Is(err, ErrUnknownCategory))
	require.Equal(t, commons.Cents(180000), a.Balance)
	require.Equal(t, 1, l.Expenditures.Count())

	_, err = l.Receipts.Upload(e.Code, "r.pdf", "Acme", day(3))
	require.Nil(t, err)
	summary := l.Summary()
	require.Equal(t, 1, summary.Expenditures)
	require.Equal(t, commons.Cents(120000), summary.Spent)
	require.Equal(t, commons.Cents(180000), summary.Balance)
	require.Equal(t, 1, summary.PendingReceipts)
	require.Equal(t, 0, summary.LowBalance)
	require.Equal(t, []CategoryTotal{
		{Category: "Food", Spent: commons.Cents(120000)},
		{Category: "Transport"},
	}, l.SpentByCategory())

	require.Nil(t, l.Cancel(e.Code))
	require.True(t, errors.Is(l.Cancel(e.Code), ErrUnknownExpenditure))
	require.Equal(t, commons.Cents(300000), a.Balance)
	require.Equal(t, 0, l.Receipts.Count())
	require.Equal(t, 0, l.Summary().PendingReceipts)
	_, err = l.Receipts.PeekPending()
	require.True(t, errors.Is(err, ErrNoPendingReceipts))
	_, err = l.Receipts.ValidateNext("ann")
	require.True(t, errors.Is(err, ErrNoPendingReceipts))
}

func TestLedgerCancelAfterAccountClosed(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Accounts.Open("main", "Bank", "IT001", commons.Cents(300000))
	require.Nil(t, err)
	e, err := l.Spend(NewExpenditure{Amount: commons.Cents(1000), Date: day(3), Category: "Food", AccountID: "main"})
	require.Nil(t, err)
	r, err := l.Receipts.Upload(e.Code, "r.pdf", "Acme", day(3))
	require.Nil(t, err)
	require.Nil(t, l.Accounts.Close("main"))

	require.True(t, errors.Is(l.Cancel(e.Code), ErrInactiveAccount))
	_, ok := l.Expenditures.Get(e.Code)
	require.True(t, ok)
	_, ok = l.Receipts.Get(r.ID)
	require.True(t, ok)
	require.Equal(t, r.ID, e.ReceiptID)
	require.Equal(t, 1, l.Summary().PendingReceipts)
	a, _ := l.Accounts.Get("main")
	require.Equal(t, commons.Cents(299000), a.Balance)
}

func TestLedgerStats(t *testing.T) {
	l := newTestLedger(t)
	l.Measure("custom", func() {})
	l.Expenditures.SortedByAmount(true)
	recent := l.RecentOperations(5)
	require.Equal(t, 2, len(recent))
	require.Equal(t, "expenditures.sort_by_amount", recent[0].Name)
	require.Equal(t, "custom", recent[1].Name)
	require.Equal(t, 2, l.Stats().Operations)
}
