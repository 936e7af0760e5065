// Package report implements the aggregation engine and the summary
// projections built on top of it. Every function is pure over the record
// slice it is given; degenerate inputs (empty sets, zero denominators)
// yield zero-valued results, never an error.
package report

import (
	"fmt"
	"sort"
	"time"

	"duitku/internal/catalog"
	"duitku/internal/models"
)

// CategoryAggregate is the per-category summary of a filtered record set.
// Percentage is the share of this category's total against the sum of the
// whole input set, in [0,100].
type CategoryAggregate struct {
	CategoryID string                 `json:"category_id"`
	Name       string                 `json:"name"`
	Icon       string                 `json:"icon"`
	Color      string                 `json:"color"`
	Type       models.TransactionType `json:"type"`
	Total      int64                  `json:"total"`
	Count      int                    `json:"count"`
	Average    float64                `json:"average"`
	Min        int64                  `json:"min"`
	Max        int64                  `json:"max"`
	Percentage float64                `json:"percentage"`
}

// ByCategory groups records by category id and computes totals, counts,
// averages, min/max, and percentage shares. The result is sorted descending
// by total; ties keep the order of each category's first occurrence.
func ByCategory(records []models.Transaction) []CategoryAggregate {
	index := map[string]int{}
	aggs := []CategoryAggregate{}
	var grandTotal int64

	for _, t := range records {
		i, ok := index[t.Category]
		if !ok {
			c := catalog.Resolve(t.Category)
			aggs = append(aggs, CategoryAggregate{
				CategoryID: t.Category,
				Name:       c.Name,
				Icon:       c.Icon,
				Color:      c.Color,
				Type:       t.Type,
				Min:        t.Amount,
				Max:        t.Amount,
			})
			i = len(aggs) - 1
			index[t.Category] = i
		}
		aggs[i].Total += t.Amount
		aggs[i].Count++
		if t.Amount < aggs[i].Min {
			aggs[i].Min = t.Amount
		}
		if t.Amount > aggs[i].Max {
			aggs[i].Max = t.Amount
		}
		grandTotal += t.Amount
	}

	for i := range aggs {
		aggs[i].Average = float64(aggs[i].Total) / float64(aggs[i].Count)
		if grandTotal > 0 {
			aggs[i].Percentage = float64(aggs[i].Total) / float64(grandTotal) * 100
		}
	}

	sort.SliceStable(aggs, func(i, j int) bool {
		return aggs[i].Total > aggs[j].Total
	})
	return aggs
}

// Granularity selects the calendar bucket for ByPeriod.
type Granularity string

const (
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// Valid reports whether g is a known granularity.
func (g Granularity) Valid() bool {
	return g == GranularityMonth || g == GranularityYear
}

// PeriodAggregate is the per-month or per-year summary of a record set.
// Key is the chronologically sortable period key ("2024-01" or "2024");
// Label is the display form.
type PeriodAggregate struct {
	Key          string  `json:"key"`
	Label        string  `json:"label"`
	Income       int64   `json:"income"`
	Expense      int64   `json:"expense"`
	Net          int64   `json:"net"`
	SavingRate   float64 `json:"saving_rate"`
	IncomeCount  int     `json:"income_count"`
	ExpenseCount int     `json:"expense_count"`
}

// ByPeriod buckets records by calendar month or year and computes income,
// expense, net, saving rate, and per-kind counts. The result is sorted
// ascending by the chronological period key, never by label.
func ByPeriod(records []models.Transaction, g Granularity) []PeriodAggregate {
	index := map[string]int{}
	aggs := []PeriodAggregate{}

	for _, t := range records {
		key, label := periodKey(t.Date, g)
		i, ok := index[key]
		if !ok {
			aggs = append(aggs, PeriodAggregate{Key: key, Label: label})
			i = len(aggs) - 1
			index[key] = i
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			aggs[i].Income += t.Amount
			aggs[i].IncomeCount++
		case models.TransactionTypeExpense:
			aggs[i].Expense += t.Amount
			aggs[i].ExpenseCount++
		}
	}

	for i := range aggs {
		aggs[i].Net = aggs[i].Income - aggs[i].Expense
		aggs[i].SavingRate = SavingRate(aggs[i].Income, aggs[i].Expense)
	}

	sort.Slice(aggs, func(i, j int) bool {
		return aggs[i].Key < aggs[j].Key
	})
	return aggs
}

func periodKey(date time.Time, g Granularity) (key, label string) {
	if g == GranularityYear {
		y := fmt.Sprintf("%04d", date.Year())
		return y, y
	}
	return date.Format("2006-01"), date.Format("Jan 2006")
}
