// Package report computes the dashboard aggregates: overall totals, spending
// per category and the cumulative balance trend. All functions are pure over
// their input snapshots.
package report

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cashlog/internal/core"
)

// Overview is the headline income/expense summary of a transaction set.
type Overview struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Net           decimal.Decimal
	IncomeCount   int
	ExpenseCount  int
}

// CategoryAmount is the expense magnitude attributed to one category.
type CategoryAmount struct {
	CategoryID uuid.UUID
	Name       string
	Color      string
	Amount     decimal.Decimal
}

// TrendPoint is one step of the cumulative balance series.
type TrendPoint struct {
	Date    core.Date
	Balance decimal.Decimal
}

// BuildOverview totals income and expenses over the snapshot.
func BuildOverview(transactions []core.Transaction) Overview {
	o := Overview{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, t := range transactions {
		if t.Amount.IsPositive() {
			o.TotalIncome = o.TotalIncome.Add(t.Amount)
			o.IncomeCount++
		} else if t.Amount.IsNegative() {
			o.TotalExpenses = o.TotalExpenses.Add(t.Amount.Abs())
			o.ExpenseCount++
		}
	}
	o.Net = o.TotalIncome.Sub(o.TotalExpenses)
	return o
}

// SpendingByCategory sums expense magnitudes per category, largest first.
// Expenses whose category is missing from categories are grouped under an
// empty name.
func SpendingByCategory(transactions []core.Transaction, categories []core.Category) []CategoryAmount {
	names := make(map[uuid.UUID]core.Category, len(categories))
	for _, c := range categories {
		names[c.ID] = c
	}

	totals := make(map[uuid.UUID]decimal.Decimal)
	for _, t := range transactions {
		if !t.Amount.IsNegative() {
			continue
		}
		totals[t.CategoryID] = totals[t.CategoryID].Add(t.Amount.Abs())
	}

	out := make([]CategoryAmount, 0, len(totals))
	for id, amount := range totals {
		cat := names[id]
		out = append(out, CategoryAmount{
			CategoryID: id,
			Name:       cat.Name,
			Color:      cat.Color,
			Amount:     amount,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}

// BalanceTrend builds the date-ordered cumulative balance series of the
// snapshot. The input slice is not reordered.
func BalanceTrend(transactions []core.Transaction) []TrendPoint {
	sorted := make([]core.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	points := make([]TrendPoint, 0, len(sorted))
	running := decimal.Zero
	for _, t := range sorted {
		running = running.Add(t.Amount)
		points = append(points, TrendPoint{Date: t.Date, Balance: running})
	}
	return points
}
