// Package recurrence expands recurring transaction templates into concrete
// dated occurrences. It is the single source of truth for occurrence dates:
// both the monthly cash flow projector and the per-day calendar query go
// through this package.
//
// Monthly and yearly series anchored on a day a target month does not have
// (the 31st, or Feb 29 outside leap years) land on the last day of that
// month. The day is always derived from the template's anchor date, never
// from the previous occurrence, so a series anchored on Jan 31 runs
// Jan 31, Feb 28/29, Mar 31, Apr 30 and stays aligned with ActiveOn.
package recurrence

import (
	"cashlog/internal/core"
)

// Expand generates the virtual occurrences of a recurring template within
// [rangeStart, rangeEnd]. A template without its recurring flag or frequency
// yields nil. An open-ended series is clipped to the range, never expanded
// beyond it. The template itself is never modified; every returned instance
// is an independent value marked Virtual.
func Expand(tmpl core.Transaction, rangeStart, rangeEnd core.Date) []core.Transaction {
	if !tmpl.IsRecurring || !tmpl.Frequency.IsValid() {
		return nil
	}

	seriesEnd := rangeEnd
	if tmpl.EndDate != nil {
		seriesEnd = *tmpl.EndDate
	}

	// Fast-forward a series anchored before the window.
	current := tmpl.Date
	for current.Before(rangeStart) {
		current = NextOccurrence(tmpl, current)
		if current.After(seriesEnd) {
			return nil
		}
	}

	var instances []core.Transaction
	for !current.After(rangeEnd) && !current.After(seriesEnd) {
		inst := tmpl
		inst.Date = current
		inst.Virtual = true
		if tmpl.EndDate != nil {
			end := *tmpl.EndDate
			inst.EndDate = &end
		}
		instances = append(instances, inst)

		current = NextOccurrence(tmpl, current)
	}
	return instances
}

// NextOccurrence advances one step from the occurrence at from. For monthly
// and yearly frequencies the target day comes from the template's anchor,
// clamped to the length of the target month.
func NextOccurrence(tmpl core.Transaction, from core.Date) core.Date {
	switch tmpl.Frequency {
	case core.Daily:
		return from.AddDays(1)
	case core.Weekly:
		return from.AddDays(7)
	case core.Monthly:
		year, month := from.Year(), from.Month()+1
		if month > 12 {
			year, month = year+1, 1
		}
		return core.NewDate(year, month, clampDay(tmpl.Date.Day(), year, month))
	case core.Yearly:
		year, month := from.Year()+1, tmpl.Date.Month()
		return core.NewDate(year, month, clampDay(tmpl.Date.Day(), year, month))
	}
	return from
}

// ActiveOn reports whether the series has an occurrence on date, without
// generating the series. Agrees with Expand/NextOccurrence on every date for
// every frequency.
func ActiveOn(tmpl core.Transaction, date core.Date) bool {
	if !tmpl.IsRecurring || !tmpl.Frequency.IsValid() {
		return false
	}
	if date.Before(tmpl.Date) {
		return false
	}
	if tmpl.EndDate != nil && date.After(*tmpl.EndDate) {
		return false
	}

	switch tmpl.Frequency {
	case core.Daily:
		return true
	case core.Weekly:
		return date.DaysSince(tmpl.Date)%7 == 0
	case core.Monthly:
		return date.Day() == clampDay(tmpl.Date.Day(), date.Year(), date.Month())
	case core.Yearly:
		return date.Month() == tmpl.Date.Month() &&
			date.Day() == clampDay(tmpl.Date.Day(), date.Year(), date.Month())
	}
	return false
}

func clampDay(day, year, month int) int {
	if last := core.DaysIn(year, month); day > last {
		return last
	}
	return day
}
