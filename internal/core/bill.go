package core

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillType distinguishes ordinary bills from loans with an installment plan.
type BillType string

const (
	BillRegular BillType = "bill"
	BillLoan    BillType = "loan"
)

// Bill is a scheduled monthly obligation. Amount is always a positive
// magnitude and always an outflow. DueDay is the day of the month (1-31) the
// bill falls due; a due day beyond the length of a month simply never matches
// that month.
type Bill struct {
	ID          uuid.UUID
	Name        string
	Description string
	Amount      decimal.Decimal
	DueDay      int
	CategoryID  uuid.UUID
	LastPaid    *Date
	Type        BillType
	Plan        *InstallmentPlan
}

// InstallmentPlan carries the repayment window of a loan. End and
// Installments are alternative ways to bound the plan; both may be unset for
// an open-ended loan. Used only for progress display, never by the projection
// engine.
type InstallmentPlan struct {
	Start        Date
	End          *Date
	Installments int
}

// LoanProgress is the current position within an installment plan.
type LoanProgress struct {
	Current int
	Total   int
}

// Validate checks a bill as entered by the user.
func (b Bill) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrEmptyName
	}
	if !b.Amount.IsPositive() {
		return ErrNegativeAmount
	}
	if b.DueDay < 1 || b.DueDay > 31 {
		return ErrInvalidDueDay
	}
	if b.Type == BillLoan && b.Plan != nil && b.Plan.Start.IsZero() {
		return ErrMissingLoanStart
	}
	return nil
}

// PaidThisMonth reports whether the bill was last paid within today's month.
func (b Bill) PaidThisMonth(today Date) bool {
	if b.LastPaid == nil {
		return false
	}
	return b.LastPaid.SameMonth(today)
}

// Progress computes how far along a loan is as of today. It returns false for
// non-loans, loans without a plan, and plans bounded by neither an end date
// nor an installment count.
func (b Bill) Progress(today Date) (LoanProgress, bool) {
	if b.Type != BillLoan || b.Plan == nil || b.Plan.Start.IsZero() {
		return LoanProgress{}, false
	}

	passed := MonthsBetween(b.Plan.Start, today)
	if passed < 0 {
		passed = 0
	}

	if b.Plan.End != nil {
		return LoanProgress{Current: passed, Total: MonthsBetween(b.Plan.Start, *b.Plan.End)}, true
	}
	if b.Plan.Installments > 0 {
		return LoanProgress{Current: passed, Total: b.Plan.Installments}, true
	}
	return LoanProgress{}, false
}
