// Package expense contains expense-related use cases.
package expense

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
	domainerror "github.com/mohamedahmede/expense-tracker-lite/internal/domain/error"
)

// Period identifies a named calendar window for filtering expenses.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodThisWeek  Period = "this-week"
	PeriodThisMonth Period = "this-month"
	PeriodThisYear  Period = "this-year"
	PeriodAll       Period = "all"
)

// ParsePeriod validates a period string. The empty string means "all".
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodToday, PeriodThisWeek, PeriodThisMonth, PeriodThisYear, PeriodAll:
		return Period(s), nil
	case "":
		return PeriodAll, nil
	default:
		return "", domainerror.ErrInvalidPeriod
	}
}

// FilterByPeriod returns the expenses whose calendar date falls inside the
// named window anchored at now. Comparison is by calendar day only;
// time-of-day is ignored on both sides. Expenses whose date cannot be
// parsed are excluded.
//
// The window is derived from now on every call so that a day-boundary
// crossing is observed by the next call. PeriodAll returns the input
// unchanged, malformed dates included.
func FilterByPeriod(expenses []*entity.Expense, period Period, now time.Time) []*entity.Expense {
	if period == PeriodAll {
		return expenses
	}

	today := truncateToDay(now)
	start, end := periodBounds(period, today)

	filtered := make([]*entity.Expense, 0, len(expenses))
	for _, exp := range expenses {
		date, err := exp.ParseDate()
		if err != nil {
			continue
		}
		day := truncateToDay(date)
		if !day.Before(start) && !day.After(end) {
			filtered = append(filtered, exp)
		}
	}
	return filtered
}

// TotalNormalized sums the reporting-currency amount of each expense:
// the conversion snapshot's converted amount when present, otherwise the raw
// amount. The result mixes normalized and raw values when conversions are
// missing, so callers should treat it as best-effort.
func TotalNormalized(expenses []*entity.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, exp := range expenses {
		total = total.Add(exp.NormalizedAmount())
	}
	return total
}

// periodBounds returns the inclusive calendar-day range for a period
// anchored at today. PeriodAll has no bounds and must be handled before.
func periodBounds(period Period, today time.Time) (start, end time.Time) {
	switch period {
	case PeriodToday:
		return today, today
	case PeriodThisWeek:
		// Week runs Sunday through Saturday.
		start = today.AddDate(0, 0, -int(today.Weekday()))
		return start, start.AddDate(0, 0, 6)
	case PeriodThisMonth:
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1)
	case PeriodThisYear:
		start = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	default:
		return today, today
	}
}

// truncateToDay drops the time-of-day, keeping year/month/day only.
// Days are compared in UTC regardless of the source location, matching the
// calendar-date strings stored on expenses.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
