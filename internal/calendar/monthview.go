// Package calendar answers per-day questions over a snapshot of transactions
// and bills: what lands on a given day of a displayed month, and which bills
// are coming up. Recurring occurrences come from the shared recurrence
// expander, the same component the monthly projector uses.
package calendar

import (
	"sort"

	"github.com/shopspring/decimal"

	"cashlog/internal/core"
	"cashlog/internal/recurrence"
)

// MonthView is a read-only view of one calendar month.
type MonthView struct {
	monthStart   core.Date
	monthEnd     core.Date
	transactions []core.Transaction
	bills        []core.Bill
}

// DayEvents is everything landing on one day of the viewed month.
type DayEvents struct {
	Transactions []core.Transaction
	Bills        []core.Bill
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// NewMonthView builds a view of the month containing month.
func NewMonthView(month core.Date, transactions []core.Transaction, bills []core.Bill) *MonthView {
	return &MonthView{
		monthStart:   month.MonthStart(),
		monthEnd:     month.MonthEnd(),
		transactions: transactions,
		bills:        bills,
	}
}

// DaysInMonth returns the number of days in the viewed month.
func (v *MonthView) DaysInMonth() int {
	return v.monthEnd.Day()
}

// DayEvents collects the one-time transactions, recurring occurrences and
// due bills of the given day of the month, with income and expense totals.
// A day outside the month yields empty events.
func (v *MonthView) DayEvents(day int) DayEvents {
	events := DayEvents{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	if day < 1 || day > v.DaysInMonth() {
		return events
	}
	date := core.NewDate(v.monthStart.Year(), v.monthStart.Month(), day)

	for _, t := range v.transactions {
		if t.IsRecurring {
			for _, inst := range recurrence.Expand(t, v.monthStart, v.monthEnd) {
				if inst.Date.Equal(date) {
					events.Transactions = append(events.Transactions, inst)
				}
			}
		} else if t.Date.Equal(date) {
			events.Transactions = append(events.Transactions, t)
		}
	}

	for _, t := range events.Transactions {
		if t.Amount.IsPositive() {
			events.TotalIncome = events.TotalIncome.Add(t.Amount)
		} else {
			events.TotalExpense = events.TotalExpense.Add(t.Amount.Abs())
		}
	}

	for _, b := range v.bills {
		if b.DueDay == day {
			events.Bills = append(events.Bills, b)
		}
	}
	return events
}

// UpcomingBills returns up to n bills ordered by due day. The input snapshot
// is left untouched.
func (v *MonthView) UpcomingBills(n int) []core.Bill {
	sorted := make([]core.Bill, len(v.bills))
	copy(sorted, v.bills)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DueDay < sorted[j].DueDay
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
