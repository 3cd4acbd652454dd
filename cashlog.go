// Package cashlog is the public surface of the cash flow projection engine.
// Rendering and persistence collaborators work through this package; the
// implementation lives in the internal packages and is re-exported here
// without additions.
package cashlog

import (
	"context"

	"github.com/shopspring/decimal"

	"cashlog/internal/calendar"
	"cashlog/internal/config"
	"cashlog/internal/core"
	"cashlog/internal/projection"
	"cashlog/internal/recurrence"
	"cashlog/internal/report"
	"cashlog/internal/services"
	"cashlog/internal/store"
)

// Domain records.
type (
	Date            = core.Date
	Wallet          = core.Wallet
	Category        = core.Category
	Transaction     = core.Transaction
	Bill            = core.Bill
	InstallmentPlan = core.InstallmentPlan
	LoanProgress    = core.LoanProgress
	Frequency       = core.Frequency
)

// Engine results and collaborators.
type (
	DailyBalance    = projection.DailyBalance
	MonthlyCashFlow = projection.MonthlyCashFlow
	Projector       = projection.Projector
	Status          = projection.Status

	MonthView = calendar.MonthView
	DayEvents = calendar.DayEvents

	Overview       = report.Overview
	CategoryAmount = report.CategoryAmount
	TrendPoint     = report.TrendPoint

	Config            = config.Config
	ProjectionService = services.ProjectionService
	SnapshotProvider  = services.SnapshotProvider
	Store             = store.Memory
)

const (
	Daily   = core.Daily
	Weekly  = core.Weekly
	Monthly = core.Monthly
	Yearly  = core.Yearly

	WalletCash       = core.WalletCash
	WalletBank       = core.WalletBank
	WalletCreditCard = core.WalletCreditCard

	BillRegular = core.BillRegular
	BillLoan    = core.BillLoan

	StatusCritical = projection.StatusCritical
	StatusWarning  = projection.StatusWarning
	StatusCaution  = projection.StatusCaution
	StatusHealthy  = projection.StatusHealthy
)

// NewDate creates a midnight-normalized calendar day.
func NewDate(year, month, day int) Date { return core.NewDate(year, month, day) }

// Expand generates the virtual occurrences of a recurring template within
// [rangeStart, rangeEnd].
func Expand(tmpl Transaction, rangeStart, rangeEnd Date) []Transaction {
	return recurrence.Expand(tmpl, rangeStart, rangeEnd)
}

// ExpandAll expands many templates concurrently, preserving input order.
func ExpandAll(ctx context.Context, tmpls []Transaction, rangeStart, rangeEnd Date) ([]Transaction, error) {
	return recurrence.ExpandAll(ctx, tmpls, rangeStart, rangeEnd)
}

// ActiveOn reports whether a recurring series has an occurrence on date.
func ActiveOn(tmpl Transaction, date Date) bool { return recurrence.ActiveOn(tmpl, date) }

// RecurrenceSummary formats a template's schedule for display.
func RecurrenceSummary(tmpl Transaction) string { return recurrence.Summary(tmpl) }

// BalanceStatus classifies a balance into a risk tier.
func BalanceStatus(balance decimal.Decimal) Status { return projection.BalanceStatus(balance) }

// DaysUntilNextIncome returns the day-number distance to the next day with
// income, falling back to the days remaining in the month.
func DaysUntilNextIncome(from DailyBalance, all []DailyBalance) int {
	return projection.DaysUntilNextIncome(from, all)
}

// NewProjector creates a projector flagging days below threshold as critical.
func NewProjector(threshold decimal.Decimal) *Projector { return projection.New(threshold) }

// DefaultProjector creates a projector with the default critical threshold.
func DefaultProjector() *Projector { return projection.Default() }

// NewMonthView builds a per-day query over the month containing month.
func NewMonthView(month Date, transactions []Transaction, bills []Bill) *MonthView {
	return calendar.NewMonthView(month, transactions, bills)
}

// BuildOverview totals income and expenses over the snapshot.
func BuildOverview(transactions []Transaction) Overview { return report.BuildOverview(transactions) }

// SpendingByCategory sums expense magnitudes per category, largest first.
func SpendingByCategory(transactions []Transaction, categories []Category) []CategoryAmount {
	return report.SpendingByCategory(transactions, categories)
}

// BalanceTrend builds the date-ordered cumulative balance series.
func BalanceTrend(transactions []Transaction) []TrendPoint {
	return report.BalanceTrend(transactions)
}

// LoadConfig reads engine configuration from the environment.
func LoadConfig() *Config { return config.Load() }

// NewStore creates an empty in-memory record store.
func NewStore() *Store { return store.New() }

// NewSeededStore creates a store preloaded with the default categories and
// an empty cash wallet.
func NewSeededStore() *Store { return store.NewSeeded() }

// NewService wires a projection service from configuration over the given
// snapshot provider.
func NewService(provider SnapshotProvider, cfg *Config) *ProjectionService {
	return services.NewProjectionServiceFromConfig(provider, cfg)
}
