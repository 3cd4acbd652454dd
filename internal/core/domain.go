package core

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency of a recurring transaction series.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// IsValid reports whether f is one of the known frequencies.
func (f Frequency) IsValid() bool {
	switch f {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// WalletType is the kind of account a wallet represents.
type WalletType string

const (
	WalletCash       WalletType = "cash"
	WalletBank       WalletType = "bank"
	WalletCreditCard WalletType = "credit_card"
)

// CategoryType separates income categories from expense categories.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// Wallet is an account holding money. Balance is a baseline amount set by the
// user, not a running total: the projection engine layers every transaction,
// past and future, on top of it.
type Wallet struct {
	ID       uuid.UUID
	Name     string
	Type     WalletType
	Balance  decimal.Decimal
	Currency string
}

// Category labels transactions for reporting.
type Category struct {
	ID    uuid.UUID
	Name  string
	Type  CategoryType
	Icon  string
	Color string
}

// Transaction is a single money movement. Amount is signed: positive for
// income, negative for expense. For a recurring series, Date is the anchor
// date of the first occurrence and Frequency is set; EndDate is nil for a
// series that runs until canceled.
//
// Virtual marks an occurrence produced by the recurrence expander. Virtual
// transactions exist only in computed results and must never be persisted.
type Transaction struct {
	ID          uuid.UUID
	WalletID    uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Date        Date
	Description string

	IsRecurring bool
	Frequency   Frequency
	EndDate     *Date

	Virtual bool
}

var (
	ErrZeroDate            = errors.New("date cannot be zero")
	ErrZeroAmount          = errors.New("amount cannot be zero")
	ErrEmptyDescription    = errors.New("empty description")
	ErrEmptyName           = errors.New("empty name")
	ErrInvalidFrequency    = errors.New("invalid recurrence frequency")
	ErrEndBeforeStart      = errors.New("end date before start date")
	ErrInvalidDueDay       = errors.New("due day must be between 1 and 31")
	ErrNegativeAmount      = errors.New("amount must be positive")
	ErrMissingLoanStart    = errors.New("loan requires a start date")
	ErrUnexpectedRecurrent = errors.New("recurrence fields set on non-recurring transaction")
	ErrVirtualWrite        = errors.New("virtual transaction instances cannot be stored")
)

// Validate checks a wallet as entered by the user.
func (w Wallet) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return ErrEmptyName
	}
	switch w.Type {
	case WalletCash, WalletBank, WalletCreditCard:
	default:
		return errors.New("unknown wallet type")
	}
	return nil
}

// Validate checks a transaction as entered by the user. The projection engine
// itself never validates; that is the data-entry collaborator's job.
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrZeroDate
	}
	if t.Amount.IsZero() {
		return ErrZeroAmount
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	if t.IsRecurring {
		if !t.Frequency.IsValid() {
			return ErrInvalidFrequency
		}
		if t.EndDate != nil && t.EndDate.Before(t.Date) {
			return ErrEndBeforeStart
		}
	} else if t.Frequency != "" || t.EndDate != nil {
		return ErrUnexpectedRecurrent
	}
	return nil
}
