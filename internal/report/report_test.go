package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cashlog/internal/core"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBuildOverview(t *testing.T) {
	transactions := []core.Transaction{
		{Amount: dec("2500"), Date: core.NewDate(2024, 1, 1)},
		{Amount: dec("150"), Date: core.NewDate(2024, 1, 20)},
		{Amount: dec("-300.25"), Date: core.NewDate(2024, 1, 5)},
		{Amount: dec("-99.75"), Date: core.NewDate(2024, 1, 9)},
	}

	o := BuildOverview(transactions)

	assert.True(t, o.TotalIncome.Equal(dec("2650")))
	assert.True(t, o.TotalExpenses.Equal(dec("400")))
	assert.True(t, o.Net.Equal(dec("2250")))
	assert.Equal(t, 2, o.IncomeCount)
	assert.Equal(t, 2, o.ExpenseCount)
}

func TestBuildOverview_Empty(t *testing.T) {
	o := BuildOverview(nil)

	assert.True(t, o.TotalIncome.IsZero())
	assert.True(t, o.TotalExpenses.IsZero())
	assert.True(t, o.Net.IsZero())
}

func TestSpendingByCategory(t *testing.T) {
	food := core.Category{ID: uuid.New(), Name: "Food & Dining", Type: core.CategoryExpense, Color: "#ef4444"}
	housing := core.Category{ID: uuid.New(), Name: "Housing", Type: core.CategoryExpense, Color: "#8b5cf6"}
	salary := core.Category{ID: uuid.New(), Name: "Salary", Type: core.CategoryIncome}

	transactions := []core.Transaction{
		{Amount: dec("-40"), CategoryID: food.ID, Date: core.NewDate(2024, 1, 2)},
		{Amount: dec("-60"), CategoryID: food.ID, Date: core.NewDate(2024, 1, 9)},
		{Amount: dec("-900"), CategoryID: housing.ID, Date: core.NewDate(2024, 1, 1)},
		{Amount: dec("2500"), CategoryID: salary.ID, Date: core.NewDate(2024, 1, 1)},
	}

	got := SpendingByCategory(transactions, []core.Category{food, housing, salary})

	require.Len(t, got, 2, "income categories contribute nothing")
	assert.Equal(t, "Housing", got[0].Name)
	assert.True(t, got[0].Amount.Equal(dec("900")))
	assert.Equal(t, "Food & Dining", got[1].Name)
	assert.True(t, got[1].Amount.Equal(dec("100")))
	assert.Equal(t, "#8b5cf6", got[0].Color)
}

func TestSpendingByCategory_UnknownCategory(t *testing.T) {
	transactions := []core.Transaction{
		{Amount: dec("-10"), CategoryID: uuid.New(), Date: core.NewDate(2024, 1, 2)},
	}

	got := SpendingByCategory(transactions, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].Name)
	assert.True(t, got[0].Amount.Equal(dec("10")))
}

func TestBalanceTrend(t *testing.T) {
	transactions := []core.Transaction{
		{Amount: dec("-50"), Date: core.NewDate(2024, 1, 20)},
		{Amount: dec("1000"), Date: core.NewDate(2024, 1, 1)},
		{Amount: dec("-200"), Date: core.NewDate(2024, 1, 10)},
	}

	points := BalanceTrend(transactions)

	require.Len(t, points, 3)
	assert.True(t, points[0].Date.Equal(core.NewDate(2024, 1, 1)))
	assert.True(t, points[0].Balance.Equal(dec("1000")))
	assert.True(t, points[1].Balance.Equal(dec("800")))
	assert.True(t, points[2].Balance.Equal(dec("750")))

	// Input snapshot order preserved.
	assert.True(t, transactions[0].Date.Equal(core.NewDate(2024, 1, 20)))
}
