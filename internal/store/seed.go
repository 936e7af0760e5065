package store

import (
	"time"

	"github.com/google/uuid"

	"duitku/internal/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// seedRecords returns the example records written on the first-ever load so
// a fresh install has something to show.
func seedRecords(now time.Time) []models.Transaction {
	samples := []models.Transaction{
		{Type: models.TransactionTypeIncome, Amount: 5_000_000, Category: "salary", Description: "Gaji Bulanan", Date: date(2024, time.January, 15)},
		{Type: models.TransactionTypeExpense, Amount: 150_000, Category: "food", Description: "Makan siang", Date: date(2024, time.January, 16)},
		{Type: models.TransactionTypeExpense, Amount: 50_000, Category: "transport", Description: "Bensin motor", Date: date(2024, time.January, 16)},
		{Type: models.TransactionTypeIncome, Amount: 1_500_000, Category: "freelance", Description: "Project website", Date: date(2024, time.January, 18)},
		{Type: models.TransactionTypeExpense, Amount: 200_000, Category: "entertainment", Description: "Nonton bioskop", Date: date(2024, time.January, 20)},
	}
	for i := range samples {
		samples[i].ID = uuid.NewString()
		samples[i].CreatedAt = now
	}
	return samples
}
