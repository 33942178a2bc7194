package ports

import (
	"context"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/delivery"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
)

// DeliveryPersonRepository defines the persistence contract for delivery
// person aggregates.
type DeliveryPersonRepository interface {
	// Add persists a new delivery person aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Person) error

	// Update persists changes to an existing delivery person aggregate.
	Update(ctx context.Context, aggregate *delivery.Person) error

	// Get retrieves a delivery person aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Person, error)

	// GetFirstAvailable retrieves one active, available delivery person and
	// locks the row for the duration of the transaction, skipping rows
	// locked by concurrent matchers. Returns errs.ErrObjectNotFound when
	// nobody is free.
	GetFirstAvailable(ctx context.Context) (*delivery.Person, error)
}
