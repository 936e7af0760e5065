// Package query implements the filter engine: predicate filters over a
// transaction slice, plus explicit sorting. Filtering never reorders
// records; sorting is a separate operation applied afterwards.
package query

import (
	"math"
	"sort"
	"strings"
	"time"

	"duitku/internal/models"
)

// Window is a named recency window computed against "now" at call time.
type Window string

const (
	WindowAll   Window = ""
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowYear  Window = "year"
)

// days returns the window length in days, or 0 for the unbounded window.
func (w Window) days() int {
	switch w {
	case WindowToday:
		return 1
	case WindowWeek:
		return 7
	case WindowMonth:
		return 30
	case WindowYear:
		return 365
	default:
		return 0
	}
}

// Criteria is a set of optional predicates combined with logical AND. The
// zero value matches everything. Explicit DateFrom/DateTo bounds take
// precedence over Window: when either bound is set the window is ignored,
// so the two date-filter modes never combine.
type Criteria struct {
	Type       models.TransactionType
	CategoryID string
	Text       string
	DateFrom   time.Time
	DateTo     time.Time
	Window     Window
	MinAmount  *int64
	MaxAmount  *int64
}

// Filter returns the records matching every set predicate, in their input
// order. Empty criteria return the input unchanged; zero matches return an
// empty slice, never an error.
func Filter(records []models.Transaction, c Criteria) []models.Transaction {
	out := make([]models.Transaction, 0, len(records))
	now := time.Now()
	for _, t := range records {
		if matches(t, c, now) {
			out = append(out, t)
		}
	}
	return out
}

func matches(t models.Transaction, c Criteria, now time.Time) bool {
	if c.Type != "" && t.Type != c.Type {
		return false
	}
	if c.CategoryID != "" && t.Category != c.CategoryID {
		return false
	}
	if c.Text != "" {
		needle := strings.ToLower(c.Text)
		if !strings.Contains(strings.ToLower(t.Description), needle) &&
			!strings.Contains(strings.ToLower(t.Category), needle) {
			return false
		}
	}
	explicit := !c.DateFrom.IsZero() || !c.DateTo.IsZero()
	if explicit {
		if !c.DateFrom.IsZero() && t.Date.Before(c.DateFrom) {
			return false
		}
		if !c.DateTo.IsZero() && t.Date.After(c.DateTo) {
			return false
		}
	} else if d := c.Window.days(); d > 0 {
		age := int(math.Ceil(now.Sub(t.Date).Hours() / 24))
		if age > d {
			return false
		}
	}
	if c.MinAmount != nil && t.Amount < *c.MinAmount {
		return false
	}
	if c.MaxAmount != nil && t.Amount > *c.MaxAmount {
		return false
	}
	return true
}

// SortField selects the key Sort orders by.
type SortField string

const (
	SortByDate     SortField = "date"
	SortByAmount   SortField = "amount"
	SortByCategory SortField = "category"
)

// SortOrder selects ascending or descending order.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sort returns a sorted copy of records. The sort is stable so records that
// compare equal keep their input order.
func Sort(records []models.Transaction, field SortField, order SortOrder) []models.Transaction {
	out := make([]models.Transaction, len(records))
	copy(out, records)

	less := func(a, b models.Transaction) bool {
		switch field {
		case SortByAmount:
			return a.Amount < b.Amount
		case SortByCategory:
			return a.Category < b.Category
		default:
			return a.Date.Before(b.Date)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if order == SortDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}
