package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tcn-coffee/fieldbook/internal/domain/models"
	"github.com/tcn-coffee/fieldbook/internal/repository/recordstore"
)

// Store is an in-memory recordstore.Store used for local development and
// tests. Records keep insertion order per collection.
type Store struct {
	mu   sync.RWMutex
	data map[models.Collection][]models.Record
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{data: make(map[models.Collection][]models.Record)}
}

// ListAll returns copies of every record in insertion order.
func (s *Store) ListAll(_ context.Context, collection models.Collection) ([]models.Record, error) {
	if err := recordstore.ValidateCollection(collection); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]models.Record, 0, len(s.data[collection]))
	for _, r := range s.data[collection] {
		records = append(records, cloneRecord(r))
	}
	return records, nil
}

// Create stores a copy of the record with a freshly assigned uuid identity.
func (s *Store) Create(_ context.Context, collection models.Collection, fields models.Record) (models.Record, error) {
	if err := recordstore.ValidateCollection(collection); err != nil {
		return nil, err
	}

	stored := cloneRecord(fields)
	delete(stored, "_id")
	stored["id"] = uuid.NewString()

	s.mu.Lock()
	s.data[collection] = append(s.data[collection], stored)
	s.mu.Unlock()

	return cloneRecord(stored), nil
}

// Count reports how many records a collection holds.
func (s *Store) Count(collection models.Collection) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data[collection])
}

func cloneRecord(r models.Record) models.Record {
	clone := make(models.Record, len(r))
	for k, v := range r {
		clone[k] = v
	}
	return clone
}
