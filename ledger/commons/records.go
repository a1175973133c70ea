package commons

import (
	"fmt"
	"time"
)

type Expenditure struct {
	Code        string
	Amount      Money
	Date        time.Time
	Phase       Phase
	Category    string
	AccountID   string
	Description string
	ReceiptID   string
}

type BankAccount struct {
	ID            string
	BankName      string
	AccountNumber string
	Balance       Money
	Active        bool
}

type Receipt struct {
	ID              string
	ExpenditureCode string
	Date            time.Time
	Vendor          string
	FilePath        string
	Validated       bool
	ValidatedBy     string
}

func (e Expenditure) String() string {
	return fmt.Sprintf("(code=%s,amount=%s,date=%s,phase=%s,category=%s,account=%s)",
		e.Code, e.Amount, e.Date.Format(time.DateOnly), e.Phase, e.Category, e.AccountID)
}

func (a BankAccount) String() string {
	return fmt.Sprintf("(id=%s,bank=%s,balance=%s,active=%t)", a.ID, a.BankName, a.Balance, a.Active)
}

func (r Receipt) String() string {
	return fmt.Sprintf("(id=%s,expenditure=%s,date=%s,vendor=%s,validated=%t)",
		r.ID, r.ExpenditureCode, r.Date.Format(time.DateOnly), r.Vendor, r.Validated)
}

// DateKey orders dates by day as an integer yyyymmdd.
func DateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}
