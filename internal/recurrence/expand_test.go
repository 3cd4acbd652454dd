package recurrence

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cashlog/internal/core"
)

func template(anchor core.Date, freq core.Frequency, end *core.Date) core.Transaction {
	return core.Transaction{
		ID:          uuid.New(),
		WalletID:    uuid.New(),
		CategoryID:  uuid.New(),
		Amount:      decimal.NewFromInt(-50),
		Date:        anchor,
		Description: "gym membership",
		IsRecurring: true,
		Frequency:   freq,
		EndDate:     end,
	}
}

func dates(instances []core.Transaction) []core.Date {
	out := make([]core.Date, len(instances))
	for i, inst := range instances {
		out[i] = inst.Date
	}
	return out
}

func TestExpand_DailyFillsEveryDay(t *testing.T) {
	tmpl := template(core.NewDate(2024, 1, 1), core.Daily, nil)

	got := Expand(tmpl, core.NewDate(2024, 1, 1), core.NewDate(2024, 1, 31))

	require.Len(t, got, 31)
	for i, inst := range got {
		assert.True(t, inst.Date.Equal(core.NewDate(2024, 1, i+1)), "instance %d", i)
	}
}

func TestExpand_MonthlyStopsAtSeriesEnd(t *testing.T) {
	end := core.NewDate(2024, 3, 15)
	tmpl := template(core.NewDate(2024, 1, 15), core.Monthly, &end)

	got := Expand(tmpl, core.NewDate(2024, 1, 1), core.NewDate(2024, 12, 31))

	require.Len(t, got, 3)
	assert.Equal(t, []core.Date{
		core.NewDate(2024, 1, 15),
		core.NewDate(2024, 2, 15),
		core.NewDate(2024, 3, 15),
	}, dates(got))
}

func TestExpand_OpenSeriesClippedToRange(t *testing.T) {
	tmpl := template(core.NewDate(2023, 6, 1), core.Weekly, nil)

	got := Expand(tmpl, core.NewDate(2024, 2, 1), core.NewDate(2024, 2, 29))

	require.NotEmpty(t, got)
	for _, inst := range got {
		assert.False(t, inst.Date.Before(core.NewDate(2024, 2, 1)))
		assert.False(t, inst.Date.After(core.NewDate(2024, 2, 29)))
		assert.Equal(t, 0, inst.Date.DaysSince(tmpl.Date)%7)
	}
}

func TestExpand_SeriesEndedBeforeWindow(t *testing.T) {
	end := core.NewDate(2023, 12, 31)
	tmpl := template(core.NewDate(2023, 1, 1), core.Monthly, &end)

	got := Expand(tmpl, core.NewDate(2024, 3, 1), core.NewDate(2024, 3, 31))

	assert.Empty(t, got)
}

func TestExpand_AnchorAfterWindow(t *testing.T) {
	tmpl := template(core.NewDate(2024, 6, 1), core.Daily, nil)

	got := Expand(tmpl, core.NewDate(2024, 1, 1), core.NewDate(2024, 1, 31))

	assert.Empty(t, got)
}

func TestExpand_NonRecurringYieldsNothing(t *testing.T) {
	oneTime := core.Transaction{
		Amount:      decimal.NewFromInt(100),
		Date:        core.NewDate(2024, 1, 5),
		Description: "refund",
	}
	assert.Empty(t, Expand(oneTime, core.NewDate(2024, 1, 1), core.NewDate(2024, 1, 31)))

	// Recurring flag without a usable frequency resolves to empty, not an error.
	flagged := oneTime
	flagged.IsRecurring = true
	assert.Empty(t, Expand(flagged, core.NewDate(2024, 1, 1), core.NewDate(2024, 1, 31)))

	flagged.Frequency = core.Frequency("fortnightly")
	assert.Empty(t, Expand(flagged, core.NewDate(2024, 1, 1), core.NewDate(2024, 1, 31)))
}

func TestExpand_MonthlyClampsToShortMonths(t *testing.T) {
	tmpl := template(core.NewDate(2024, 1, 31), core.Monthly, nil)

	got := Expand(tmpl, core.NewDate(2024, 1, 1), core.NewDate(2024, 4, 30))

	assert.Equal(t, []core.Date{
		core.NewDate(2024, 1, 31),
		core.NewDate(2024, 2, 29),
		core.NewDate(2024, 3, 31),
		core.NewDate(2024, 4, 30),
	}, dates(got))
}

func TestExpand_YearlyLeapDayAnchor(t *testing.T) {
	tmpl := template(core.NewDate(2024, 2, 29), core.Yearly, nil)

	got := Expand(tmpl, core.NewDate(2024, 1, 1), core.NewDate(2028, 12, 31))

	assert.Equal(t, []core.Date{
		core.NewDate(2024, 2, 29),
		core.NewDate(2025, 2, 28),
		core.NewDate(2026, 2, 28),
		core.NewDate(2027, 2, 28),
		core.NewDate(2028, 2, 29),
	}, dates(got))
}

func TestExpand_InstancesAreFreshAndVirtual(t *testing.T) {
	end := core.NewDate(2024, 12, 31)
	tmpl := template(core.NewDate(2024, 1, 10), core.Monthly, &end)
	original := tmpl

	got := Expand(tmpl, core.NewDate(2024, 1, 1), core.NewDate(2024, 3, 31))

	require.Len(t, got, 3)
	for _, inst := range got {
		assert.True(t, inst.Virtual)
		assert.Equal(t, tmpl.ID, inst.ID)
		assert.Equal(t, tmpl.Description, inst.Description)
		assert.True(t, inst.Amount.Equal(tmpl.Amount))
		require.NotNil(t, inst.EndDate)
		assert.NotSame(t, tmpl.EndDate, inst.EndDate)
	}

	// Template untouched, including its anchor date.
	assert.Equal(t, original.Date, tmpl.Date)
	assert.False(t, tmpl.Virtual)
	assert.Same(t, original.EndDate, tmpl.EndDate)
}

func TestExpand_Pure(t *testing.T) {
	tmpl := template(core.NewDate(2024, 1, 3), core.Weekly, nil)
	start, end := core.NewDate(2024, 1, 1), core.NewDate(2024, 3, 31)

	first := Expand(tmpl, start, end)
	second := Expand(tmpl, start, end)

	assert.Equal(t, first, second)
}

func TestNextOccurrence_Steps(t *testing.T) {
	tests := []struct {
		name   string
		freq   core.Frequency
		anchor core.Date
		from   core.Date
		want   core.Date
	}{
		{"daily", core.Daily, core.NewDate(2024, 1, 1), core.NewDate(2024, 1, 1), core.NewDate(2024, 1, 2)},
		{"daily over month boundary", core.Daily, core.NewDate(2024, 1, 1), core.NewDate(2024, 1, 31), core.NewDate(2024, 2, 1)},
		{"weekly", core.Weekly, core.NewDate(2024, 1, 1), core.NewDate(2024, 1, 29), core.NewDate(2024, 2, 5)},
		{"monthly plain", core.Monthly, core.NewDate(2024, 1, 15), core.NewDate(2024, 1, 15), core.NewDate(2024, 2, 15)},
		{"monthly december rollover", core.Monthly, core.NewDate(2024, 12, 15), core.NewDate(2024, 12, 15), core.NewDate(2025, 1, 15)},
		{"monthly clamp into february", core.Monthly, core.NewDate(2024, 1, 31), core.NewDate(2024, 1, 31), core.NewDate(2024, 2, 29)},
		{"monthly recovers anchor day after clamp", core.Monthly, core.NewDate(2024, 1, 31), core.NewDate(2024, 2, 29), core.NewDate(2024, 3, 31)},
		{"yearly", core.Yearly, core.NewDate(2024, 7, 4), core.NewDate(2024, 7, 4), core.NewDate(2025, 7, 4)},
		{"yearly leap day", core.Yearly, core.NewDate(2024, 2, 29), core.NewDate(2024, 2, 29), core.NewDate(2025, 2, 28)},
		{"yearly leap day recovers", core.Yearly, core.NewDate(2024, 2, 29), core.NewDate(2027, 2, 28), core.NewDate(2028, 2, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := template(tt.anchor, tt.freq, nil)
			assert.True(t, NextOccurrence(tmpl, tt.from).Equal(tt.want),
				"got %v, want %v", NextOccurrence(tmpl, tt.from), tt.want)
		})
	}
}
