package projection

import "github.com/shopspring/decimal"

// Status is the risk tier of a balance amount.
type Status string

const (
	StatusCritical Status = "critical"
	StatusWarning  Status = "warning"
	StatusCaution  Status = "caution"
	StatusHealthy  Status = "healthy"
)

var (
	warningCeil = decimal.NewFromInt(100)
	cautionCeil = decimal.NewFromInt(500)
)

// BalanceStatus classifies a balance. Tier lower bounds are exclusive:
// 0 is warning, 100 is caution, 500 is healthy.
func BalanceStatus(balance decimal.Decimal) Status {
	switch {
	case balance.IsNegative():
		return StatusCritical
	case balance.LessThan(warningCeil):
		return StatusWarning
	case balance.LessThan(cautionCeil):
		return StatusCaution
	default:
		return StatusHealthy
	}
}

// DaysUntilNextIncome scans the days after from for the first one with
// income and returns the day-number distance to it. When no later day has
// income it returns the days remaining in the month as a runway fallback.
// Returns 0 when from is not part of all.
func DaysUntilNextIncome(from DailyBalance, all []DailyBalance) int {
	start := -1
	for i, d := range all {
		if d.DayNumber == from.DayNumber {
			start = i
			break
		}
	}
	if start == -1 {
		return 0
	}

	for i := start + 1; i < len(all); i++ {
		if all[i].Income.IsPositive() {
			return all[i].DayNumber - from.DayNumber
		}
	}
	return len(all) - from.DayNumber
}
