// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage. Items are not written
	// here; AddItems persists them as a separate step so that an item write
	// failure cannot take the order record down with it.
	Add(ctx context.Context, aggregate *order.Order) error

	// AddItems persists the item snapshots of an order that was already
	// stored with Add.
	AddItems(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its item snapshots.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUnassignedPending retrieves pending orders that are not yet
	// linked to a delivery person. Used by the matching retry job to pick
	// up orders whose creation-time match failed.
	GetAllUnassignedPending(ctx context.Context) ([]*order.Order, error)
}
