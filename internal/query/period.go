package query

import (
	"time"

	"duitku/internal/models"
)

// Period is a named calendar range used by the reports and exports.
type Period string

const (
	PeriodCurrentMonth   Period = "current-month"
	PeriodLastMonth      Period = "last-month"
	PeriodCurrentQuarter Period = "current-quarter"
	PeriodCurrentYear    Period = "current-year"
	PeriodLastYear       Period = "last-year"
	PeriodAllTime        Period = "all-time"
)

// Valid reports whether p names a known period.
func (p Period) Valid() bool {
	switch p {
	case PeriodCurrentMonth, PeriodLastMonth, PeriodCurrentQuarter,
		PeriodCurrentYear, PeriodLastYear, PeriodAllTime:
		return true
	}
	return false
}

// ByPeriod returns the records whose economic date falls inside the named
// period relative to now. Unknown periods behave like all-time.
func ByPeriod(records []models.Transaction, p Period, now time.Time) []models.Transaction {
	out := make([]models.Transaction, 0, len(records))
	for _, t := range records {
		if inPeriod(t.Date, p, now) {
			out = append(out, t)
		}
	}
	return out
}

func inPeriod(date time.Time, p Period, now time.Time) bool {
	switch p {
	case PeriodCurrentMonth:
		return date.Year() == now.Year() && date.Month() == now.Month()
	case PeriodLastMonth:
		last := now.AddDate(0, -1, -now.Day()+1)
		return date.Year() == last.Year() && date.Month() == last.Month()
	case PeriodCurrentQuarter:
		return date.Year() == now.Year() && quarter(date.Month()) == quarter(now.Month())
	case PeriodCurrentYear:
		return date.Year() == now.Year()
	case PeriodLastYear:
		return date.Year() == now.Year()-1
	default:
		return true
	}
}

func quarter(m time.Month) int {
	return (int(m) - 1) / 3
}

// PeriodDays returns the day count used for daily-average projections over
// the named period.
func PeriodDays(p Period, now time.Time) int {
	switch p {
	case PeriodCurrentMonth:
		return now.Day()
	case PeriodLastMonth:
		return 30
	case PeriodCurrentQuarter:
		return 90
	case PeriodCurrentYear:
		return now.YearDay()
	case PeriodLastYear:
		return 365
	default:
		return 30
	}
}
