package models

import "time"

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the closed set of transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a single income or expense record. Amount is an always
// positive magnitude in whole rupiah; direction comes from Type, never from
// the sign. Date is the economic date of the transaction, CreatedAt the
// record creation time (display only, never used in calculations).
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      int64           `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TransactionInput carries the caller-supplied fields for a new transaction.
// The store assigns ID and CreatedAt.
type TransactionInput struct {
	Type        TransactionType
	Amount      int64
	Category    string
	Description string
	Date        time.Time
}

// TransactionUpdate is a partial-field merge for an existing transaction.
// Nil fields are left unchanged.
type TransactionUpdate struct {
	Type        *TransactionType
	Amount      *int64
	Category    *string
	Description *string
	Date        *time.Time
}
