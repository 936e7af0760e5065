package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"duitku/internal/catalog"
	"duitku/internal/models"
	"duitku/internal/query"
)

// Localized transaction type labels used in the tabular export.
const (
	labelIncome  = "Pemasukan"
	labelExpense = "Pengeluaran"
)

// DocumentSummary is the summary block of the full-report export.
type DocumentSummary struct {
	TotalTransactions int   `json:"totalTransactions"`
	TotalIncome       int64 `json:"totalIncome"`
	TotalExpenses     int64 `json:"totalExpenses"`
}

// Document is the full-report export payload.
type Document struct {
	Period       query.Period         `json:"period"`
	Generated    time.Time            `json:"generated"`
	Summary      DocumentSummary      `json:"summary"`
	Transactions []models.Transaction `json:"transactions"`
}

// BuildDocument assembles the full-report export for records already
// restricted to the named period.
func BuildDocument(records []models.Transaction, period query.Period, now time.Time) Document {
	o := Overall(records)
	if records == nil {
		records = []models.Transaction{}
	}
	return Document{
		Period:    period,
		Generated: now,
		Summary: DocumentSummary{
			TotalTransactions: o.Count,
			TotalIncome:       o.TotalIncome,
			TotalExpenses:     o.TotalExpense,
		},
		Transactions: records,
	}
}

// CSV renders the tabular export: a header row then one row per record with
// the date, localized type label, resolved category name, description, and
// amount.
func CSV(records []models.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Date", "Type", "Category", "Description", "Amount"}); err != nil {
		return nil, err
	}
	for _, t := range records {
		label := labelExpense
		if t.Type == models.TransactionTypeIncome {
			label = labelIncome
		}
		row := []string{
			t.Date.Format("2006-01-02"),
			label,
			catalog.Resolve(t.Category).Name,
			t.Description,
			strconv.FormatInt(t.Amount, 10),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
