package recordstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/tcn-coffee/fieldbook/internal/domain/models"
)

// ErrUnknownCollection is returned when a caller names a collection outside
// the managed set.
var ErrUnknownCollection = errors.New("unknown collection")

// Store is the record persistence abstraction shared by the HTTP records
// API and the backup/restore protocol. Writes are purely additive: there is
// no update or delete, so no locking discipline is assumed of callers.
type Store interface {
	// ListAll returns every record of a collection in the backend's native
	// order. Each record carries its identity under the "id" key.
	ListAll(ctx context.Context, collection models.Collection) ([]models.Record, error)

	// Create inserts one record and returns the stored row including its
	// newly assigned identity. Identity fields present in the input are
	// ignored; the store always assigns a fresh one.
	Create(ctx context.Context, collection models.Collection, fields models.Record) (models.Record, error)
}

// ValidateCollection maps an unknown collection name onto
// ErrUnknownCollection with the offending name attached.
func ValidateCollection(collection models.Collection) error {
	if !models.KnownCollection(string(collection)) {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	return nil
}
