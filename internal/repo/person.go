// Package repo contains all persistence logic for the contact book.
// PersonRepo has a JSON-file implementation (the default) and a Postgres
// implementation; SnapshotWriter archives the store to JSON files.
// No business logic lives here, only storage and type mapping.
package repo

import (
	"context"

	"github.com/pkordes/contactbook/internal/domain"
)

// PersonRepo defines the persistence operations for person records.
// The service layer depends on this interface, not a concrete backend,
// which allows the Model to be unit-tested with a mock.
type PersonRepo interface {
	// List returns every stored person in insertion order.
	List(ctx context.Context) ([]domain.Person, error)

	// Create stores a new person.
	// Returns domain.ErrDuplicate if a person with the same phone exists.
	Create(ctx context.Context, p domain.Person) error

	// Replace substitutes the record identified by old.Phone with updated.
	// Returns domain.ErrNotFound if no record has old.Phone.
	Replace(ctx context.Context, old, updated domain.Person) error
}
