package query_test

import (
	"reflect"
	"testing"
	"time"

	"duitku/internal/models"
	"duitku/internal/query"
)

func TestPeriodValid(t *testing.T) {
	for _, p := range []query.Period{
		query.PeriodCurrentMonth, query.PeriodLastMonth, query.PeriodCurrentQuarter,
		query.PeriodCurrentYear, query.PeriodLastYear, query.PeriodAllTime,
	} {
		if !p.Valid() {
			t.Errorf("expected %q to be valid", p)
		}
	}
	if query.Period("fortnight").Valid() {
		t.Error("expected unknown period to be invalid")
	}
}

func TestByPeriod(t *testing.T) {
	now := day(2024, time.March, 15)
	records := []models.Transaction{
		tx("cur-month", models.TransactionTypeExpense, 100, "food", "x", day(2024, time.March, 3)),
		tx("last-month", models.TransactionTypeExpense, 100, "food", "x", day(2024, time.February, 28)),
		tx("cur-quarter", models.TransactionTypeExpense, 100, "food", "x", day(2024, time.January, 10)),
		tx("last-year", models.TransactionTypeExpense, 100, "food", "x", day(2023, time.November, 5)),
		tx("older", models.TransactionTypeExpense, 100, "food", "x", day(2021, time.June, 1)),
	}

	cases := []struct {
		period query.Period
		want   []string
	}{
		{query.PeriodCurrentMonth, []string{"cur-month"}},
		{query.PeriodLastMonth, []string{"last-month"}},
		{query.PeriodCurrentQuarter, []string{"cur-month", "last-month", "cur-quarter"}},
		{query.PeriodCurrentYear, []string{"cur-month", "last-month", "cur-quarter"}},
		{query.PeriodLastYear, []string{"last-year"}},
		{query.PeriodAllTime, []string{"cur-month", "last-month", "cur-quarter", "last-year", "older"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.period), func(t *testing.T) {
			got := query.ByPeriod(records, tc.period, now)
			if !reflect.DeepEqual(ids(got), tc.want) {
				t.Errorf("expected %v, got %v", tc.want, ids(got))
			}
		})
	}

	t.Run("last month across a year boundary", func(t *testing.T) {
		january := day(2024, time.January, 10)
		decemberRecord := tx("dec", models.TransactionTypeExpense, 100, "food", "x", day(2023, time.December, 20))
		got := query.ByPeriod([]models.Transaction{decemberRecord}, query.PeriodLastMonth, january)
		if len(got) != 1 {
			t.Errorf("expected December record to match last-month from January, got %d records", len(got))
		}
	})

	t.Run("last month from the 31st does not skip February", func(t *testing.T) {
		march31 := day(2024, time.March, 31)
		febRecord := tx("feb", models.TransactionTypeExpense, 100, "food", "x", day(2024, time.February, 15))
		got := query.ByPeriod([]models.Transaction{febRecord}, query.PeriodLastMonth, march31)
		if len(got) != 1 {
			t.Errorf("expected February record to match last-month from March 31, got %d records", len(got))
		}
	})
}

func TestPeriodDays(t *testing.T) {
	now := day(2024, time.March, 15)

	cases := []struct {
		period query.Period
		want   int
	}{
		{query.PeriodCurrentMonth, 15},
		{query.PeriodLastMonth, 30},
		{query.PeriodCurrentQuarter, 90},
		{query.PeriodCurrentYear, 75},
		{query.PeriodLastYear, 365},
		{query.PeriodAllTime, 30},
	}
	for _, tc := range cases {
		t.Run(string(tc.period), func(t *testing.T) {
			if got := query.PeriodDays(tc.period, now); got != tc.want {
				t.Errorf("expected %d days, got %d", tc.want, got)
			}
		})
	}
}
