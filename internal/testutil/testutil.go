// Package testutil provides test helpers for setting up in-memory stores,
// creating transaction fixtures, and making assertions.
package testutil

import (
	"errors"
	"testing"
	"time"

	apperrors "duitku/internal/errors"
	"duitku/internal/kv"
	"duitku/internal/models"
	"duitku/internal/store"
)

// SetupEmptyStore creates a record store over an in-memory binding with the
// seed suppressed, so tests start from zero records.
func SetupEmptyStore(t *testing.T) *store.Store {
	t.Helper()

	binding := kv.NewMemory()
	if err := binding.Set(store.DefaultNamespace, []byte("[]")); err != nil {
		t.Fatalf("failed to prime test binding: %v", err)
	}

	s, err := store.Open(binding, store.DefaultNamespace)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	return s
}

// Date builds a UTC midnight date for fixtures.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Income builds an income transaction input fixture.
func Income(amount int64, category, description string, date time.Time) models.TransactionInput {
	return models.TransactionInput{
		Type:        models.TransactionTypeIncome,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}
}

// Expense builds an expense transaction input fixture.
func Expense(amount int64, category, description string, date time.Time) models.TransactionInput {
	return models.TransactionInput{
		Type:        models.TransactionTypeExpense,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}
}

// MustAdd adds a fixture to the store, failing the test on error.
func MustAdd(t *testing.T, s *store.Store, input models.TransactionInput) models.Transaction {
	t.Helper()

	record, err := s.Add(input)
	if err != nil {
		t.Fatalf("failed to add fixture transaction: %v", err)
	}
	return record
}

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
