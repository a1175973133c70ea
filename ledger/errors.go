package ledger

import "errors"

var (
	ErrInvalidCategory    = errors.New("invalid category")
	ErrDuplicateCategory  = errors.New("category already exists")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrUnknownExpenditure = errors.New("unknown expenditure")
	ErrInvalidAccount     = errors.New("invalid account")
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrUnknownAccount     = errors.New("unknown account")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrUnknownReceipt     = errors.New("unknown receipt")
	ErrNoPendingReceipts  = errors.New("no receipts pending validation")
)
