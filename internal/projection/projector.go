// Package projection simulates a month of day-by-day running balances from
// wallet baselines, one-time and recurring transactions, and scheduled bills.
package projection

import (
	"github.com/shopspring/decimal"

	"cashlog/internal/core"
	"cashlog/internal/recurrence"
)

// DefaultCriticalThreshold marks days whose projected ending balance falls
// below it as critical.
var DefaultCriticalThreshold = decimal.NewFromInt(100)

// DailyBalance is the simulated state of one calendar day.
type DailyBalance struct {
	Date            core.Date
	DayNumber       int
	StartingBalance decimal.Decimal
	Income          decimal.Decimal
	Expenses        decimal.Decimal
	EndingBalance   decimal.Decimal
	Transactions    []core.Transaction
	Bills           []core.Bill
	IsProjected     bool
	IsCritical      bool
	IsToday         bool
	IsPast          bool
}

// MonthlyCashFlow is a full month's simulation. DailyBalances holds exactly
// one entry per calendar day, in ascending order.
type MonthlyCashFlow struct {
	Month           core.Date
	StartingBalance decimal.Decimal
	EndingBalance   decimal.Decimal
	TightestDay     *DailyBalance
	TotalIncome     decimal.Decimal
	TotalExpenses   decimal.Decimal
	DailyBalances   []DailyBalance
}

// Projector runs monthly cash flow simulations.
type Projector struct {
	critical decimal.Decimal
}

// New creates a projector flagging days below the given threshold as critical.
func New(criticalThreshold decimal.Decimal) *Projector {
	return &Projector{critical: criticalThreshold}
}

// Default creates a projector with DefaultCriticalThreshold.
func Default() *Projector {
	return New(DefaultCriticalThreshold)
}

// MonthlyCashFlow simulates every day of month's calendar month. The inputs
// are read-only snapshots; the result is freshly allocated. today drives the
// past/today/projected classification and is passed explicitly so the
// simulation stays a pure function of its arguments.
//
// Wallet balances are opening baselines: the amounts of all transactions,
// historical ones included, are layered on top of the summed baseline to
// reconstruct any day's balance. Nothing is ever counted against the
// baseline twice.
func (p *Projector) MonthlyCashFlow(month, today core.Date, transactions []core.Transaction, bills []core.Bill, wallets []core.Wallet) MonthlyCashFlow {
	monthStart := month.MonthStart()
	monthEnd := month.MonthEnd()
	daysInMonth := monthEnd.Day()

	baseline := decimal.Zero
	for _, w := range wallets {
		baseline = baseline.Add(w.Balance)
	}

	// One-time transactions up to month end, plus every recurring occurrence
	// inside the month.
	var combined []core.Transaction
	for _, t := range transactions {
		if t.IsRecurring {
			combined = append(combined, recurrence.Expand(t, monthStart, monthEnd)...)
		} else if !t.Date.After(monthEnd) {
			combined = append(combined, t)
		}
	}

	startingBalance := baseline
	for _, t := range combined {
		if t.Date.Before(monthStart) {
			startingBalance = startingBalance.Add(t.Amount)
		}
	}

	result := MonthlyCashFlow{
		Month:           monthStart,
		StartingBalance: startingBalance,
		TotalIncome:     decimal.Zero,
		TotalExpenses:   decimal.Zero,
		DailyBalances:   make([]DailyBalance, 0, daysInMonth),
	}

	running := startingBalance
	tightestIdx := 0
	lowest := decimal.Decimal{}

	for day := 1; day <= daysInMonth; day++ {
		date := core.NewDate(month.Year(), month.Month(), day)

		isPast := date.Before(today)
		isToday := date.Equal(today)

		var dayTransactions []core.Transaction
		income := decimal.Zero
		expenses := decimal.Zero
		for _, t := range combined {
			if !t.Date.Equal(date) {
				continue
			}
			dayTransactions = append(dayTransactions, t)
			if t.Amount.IsPositive() {
				income = income.Add(t.Amount)
			} else {
				expenses = expenses.Add(t.Amount.Abs())
			}
		}

		// History never shows projected obligations: bills land only on
		// today and future days.
		var dayBills []core.Bill
		if !isPast {
			for _, b := range bills {
				if b.DueDay == day {
					dayBills = append(dayBills, b)
					expenses = expenses.Add(b.Amount)
				}
			}
		}

		ending := running.Add(income).Sub(expenses)

		result.DailyBalances = append(result.DailyBalances, DailyBalance{
			Date:            date,
			DayNumber:       day,
			StartingBalance: running,
			Income:          income,
			Expenses:        expenses,
			EndingBalance:   ending,
			Transactions:    dayTransactions,
			Bills:           dayBills,
			IsProjected:     date.After(today),
			IsCritical:      ending.LessThan(p.critical),
			IsToday:         isToday,
			IsPast:          isPast,
		})

		// Strict less-than: the earliest day at the minimum wins ties.
		if day == 1 || ending.LessThan(lowest) {
			lowest = ending
			tightestIdx = day - 1
		}

		result.TotalIncome = result.TotalIncome.Add(income)
		result.TotalExpenses = result.TotalExpenses.Add(expenses)
		running = ending
	}

	result.EndingBalance = running
	result.TightestDay = &result.DailyBalances[tightestIdx]
	return result
}
