package report

import (
	"time"

	"duitku/internal/models"
	"duitku/internal/query"
)

// Overview is the overall summary over a record set: total income, total
// expense, balance, and record count.
type Overview struct {
	TotalIncome  int64 `json:"total_income"`
	TotalExpense int64 `json:"total_expense"`
	Balance      int64 `json:"balance"`
	Count        int   `json:"count"`
}

// Overall computes the Overview for the given records.
func Overall(records []models.Transaction) Overview {
	var o Overview
	for _, t := range records {
		switch t.Type {
		case models.TransactionTypeIncome:
			o.TotalIncome += t.Amount
		case models.TransactionTypeExpense:
			o.TotalExpense += t.Amount
		}
	}
	o.Balance = o.TotalIncome - o.TotalExpense
	o.Count = len(records)
	return o
}

// SavingRate returns net over income as a percentage. Zero income yields
// exactly 0, never NaN or a division error.
func SavingRate(income, expense int64) float64 {
	if income <= 0 {
		return 0
	}
	return float64(income-expense) / float64(income) * 100
}

// TopCategory returns the single highest-total aggregate, or ok=false for
// an empty input. ByCategory sorts descending, so this is the head.
func TopCategory(aggs []CategoryAggregate) (CategoryAggregate, bool) {
	if len(aggs) == 0 {
		return CategoryAggregate{}, false
	}
	return aggs[0], true
}

// Change returns the period-over-period percentage change from previous to
// current. When previous is 0 the change is undefined and ok is false; the
// caller decides how to render that, typically as null.
func Change(current, previous int64) (float64, bool) {
	if previous == 0 {
		return 0, false
	}
	return float64(current-previous) / float64(previous) * 100, true
}

// HealthScore is the composite financial health heuristic: 40% weight on
// the saving rate plus 30 points each for having any income and for
// spending less than earned, clamped to [0,100]. A display value, not a
// prediction.
func HealthScore(income, expense int64) float64 {
	score := SavingRate(income, expense) * 0.4
	if income > 0 {
		score += 30
	}
	if expense < income {
		score += 30
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Summary is the full report-summary projection for a named period.
type Summary struct {
	Period          query.Period `json:"period"`
	Overview        Overview     `json:"overview"`
	SavingRate      float64      `json:"saving_rate"`
	DailyAvgIncome  float64      `json:"daily_avg_income"`
	DailyAvgExpense float64      `json:"daily_avg_expense"`
	HealthScore     float64      `json:"health_score"`
	IncomeCount     int          `json:"income_count"`
	ExpenseCount    int          `json:"expense_count"`
}

// Summarize computes the Summary for the records already restricted to the
// named period. The period only drives the daily-average divisor.
func Summarize(records []models.Transaction, period query.Period, now time.Time) Summary {
	o := Overall(records)
	days := query.PeriodDays(period, now)

	s := Summary{
		Period:      period,
		Overview:    o,
		SavingRate:  SavingRate(o.TotalIncome, o.TotalExpense),
		HealthScore: HealthScore(o.TotalIncome, o.TotalExpense),
	}
	if days > 0 {
		s.DailyAvgIncome = float64(o.TotalIncome) / float64(days)
		s.DailyAvgExpense = float64(o.TotalExpense) / float64(days)
	}
	for _, t := range records {
		if t.Type == models.TransactionTypeIncome {
			s.IncomeCount++
		} else {
			s.ExpenseCount++
		}
	}
	return s
}

// Comparison pairs the current calendar period with the previous one and
// carries the percentage change per field. A nil change means the previous
// period had a zero value and the change is undefined.
type Comparison struct {
	Granularity   Granularity     `json:"granularity"`
	Current       PeriodAggregate `json:"current"`
	Previous      PeriodAggregate `json:"previous"`
	IncomeChange  *float64        `json:"income_change"`
	ExpenseChange *float64        `json:"expense_change"`
	NetChange     *float64        `json:"net_change"`
}

// Compare builds the current-vs-previous comparison for the given
// granularity against now. Periods with no records compare as zero-valued
// aggregates.
func Compare(records []models.Transaction, g Granularity, now time.Time) Comparison {
	currentKey, currentLabel := periodKey(now, g)
	var prevTime time.Time
	if g == GranularityYear {
		prevTime = now.AddDate(-1, 0, 0)
	} else {
		prevTime = now.AddDate(0, -1, -now.Day()+1)
	}
	previousKey, previousLabel := periodKey(prevTime, g)

	current := PeriodAggregate{Key: currentKey, Label: currentLabel}
	previous := PeriodAggregate{Key: previousKey, Label: previousLabel}
	for _, agg := range ByPeriod(records, g) {
		switch agg.Key {
		case currentKey:
			current = agg
		case previousKey:
			previous = agg
		}
	}

	return Comparison{
		Granularity:   g,
		Current:       current,
		Previous:      previous,
		IncomeChange:  changePtr(current.Income, previous.Income),
		ExpenseChange: changePtr(current.Expense, previous.Expense),
		NetChange:     changePtr(current.Net, previous.Net),
	}
}

func changePtr(current, previous int64) *float64 {
	v, ok := Change(current, previous)
	if !ok {
		return nil
	}
	return &v
}
