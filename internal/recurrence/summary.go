package recurrence

import (
	"fmt"

	"cashlog/internal/core"
)

// Month abbreviations are deliberately a fixed English table: recurrence
// summaries are stable identifiers for the rendering layer and do not follow
// the display locale.
var monthAbbrev = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Summary formats a template's schedule, e.g. "monthly · until Mar 2026" or
// "weekly · until canceled". Returns "" for non-recurring transactions.
func Summary(tmpl core.Transaction) string {
	if !tmpl.IsRecurring || tmpl.Frequency == "" {
		return ""
	}
	if tmpl.EndDate == nil {
		return fmt.Sprintf("%s · until canceled", tmpl.Frequency)
	}
	return fmt.Sprintf("%s · until %s %d", tmpl.Frequency, monthAbbrev[tmpl.EndDate.Month()-1], tmpl.EndDate.Year())
}
