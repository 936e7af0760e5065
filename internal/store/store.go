// Package store implements the record store: the single owner of the
// persisted transaction collection. All mutations go through it; every
// mutating call synchronously writes the full collection back to the
// underlying key-value binding.
package store

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "duitku/internal/errors"
	"duitku/internal/kv"
	"duitku/internal/models"
)

// DefaultNamespace is the key the transaction collection is persisted under.
const DefaultNamespace = "transactions"

// Store owns the in-memory transaction collection and its persistence.
// The HTTP surface is concurrent, so a mutex serializes all access; the
// engine packages only ever see copies.
type Store struct {
	mu        sync.Mutex
	binding   kv.Binding
	namespace string
	records   []models.Transaction
}

// Open loads the persisted collection from the binding. On the first-ever
// load (the key has never been written) it seeds the example records; the
// seeding never re-triggers once the key exists, even with zero records.
// Malformed persisted JSON fails with CORRUPT_STORE rather than silently
// discarding data.
func Open(binding kv.Binding, namespace string) (*Store, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	s := &Store{binding: binding, namespace: namespace}

	raw, ok, err := binding.Get(namespace)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	if !ok {
		s.records = seedRecords(time.Now())
		if err := s.persist(); err != nil {
			return nil, err
		}
		return s, nil
	}

	var records []models.Transaction
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCorruptStore, err)
	}
	s.records = records
	return s, nil
}

// List returns a copy of all records. Order is the persisted insertion
// order; consumers sort explicitly before display.
func (s *Store) List() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.records {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Transaction{}, apperrors.ErrTransactionNotFound
}

// Add validates the input, assigns a fresh id and creation timestamp,
// appends the record, persists, and returns the stored record.
func (s *Store) Add(input models.TransactionInput) (models.Transaction, error) {
	record := models.Transaction{
		ID:          uuid.NewString(),
		Type:        input.Type,
		Amount:      input.Amount,
		Category:    input.Category,
		Description: input.Description,
		Date:        input.Date,
		CreatedAt:   time.Now(),
	}
	if err := validate(record); err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	if err := s.persist(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return models.Transaction{}, err
	}
	return record, nil
}

// Update merges the non-nil fields into the record with the given id,
// validates the result, persists, and returns the merged record. ID and
// CreatedAt are immutable.
func (s *Store) Update(id string, update models.TransactionUpdate) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, t := range s.records {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Transaction{}, apperrors.ErrTransactionNotFound
	}

	merged := s.records[idx]
	if update.Type != nil {
		merged.Type = *update.Type
	}
	if update.Amount != nil {
		merged.Amount = *update.Amount
	}
	if update.Category != nil {
		merged.Category = *update.Category
	}
	if update.Description != nil {
		merged.Description = *update.Description
	}
	if update.Date != nil {
		merged.Date = *update.Date
	}
	if err := validate(merged); err != nil {
		return models.Transaction{}, err
	}

	previous := s.records[idx]
	s.records[idx] = merged
	if err := s.persist(); err != nil {
		s.records[idx] = previous
		return models.Transaction{}, err
	}
	return merged, nil
}

// Delete removes the record with the given id and persists. Deleting an
// unknown id is an error, not a no-op.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.records {
		if t.ID == id {
			removed := s.records[i]
			s.records = append(s.records[:i], s.records[i+1:]...)
			if err := s.persist(); err != nil {
				s.records = append(s.records, models.Transaction{})
				copy(s.records[i+1:], s.records[i:])
				s.records[i] = removed
				return err
			}
			return nil
		}
	}
	return apperrors.ErrTransactionNotFound
}

// persist writes the full collection back to the binding. Callers must hold
// the mutex.
func (s *Store) persist() error {
	data, err := json.Marshal(s.records)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.binding.Set(s.namespace, data); err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

func validate(t models.Transaction) error {
	if !t.Type.Valid() {
		return apperrors.WithMessage(apperrors.ErrValidation, "type must be income or expense")
	}
	if t.Amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrValidation, "amount must be greater than zero")
	}
	if strings.TrimSpace(t.Description) == "" {
		return apperrors.WithMessage(apperrors.ErrValidation, "description is required")
	}
	if strings.TrimSpace(t.Category) == "" {
		return apperrors.WithMessage(apperrors.ErrValidation, "category is required")
	}
	if t.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrValidation, "date is required")
	}
	return nil
}
