// Package queries contains read-side operations of the CQRS architecture.
// Query handlers bypass the domain aggregates and read directly from the
// database, decorating the results with vendor and customer reference data
// the write side never touches.
package queries

import (
	"errors"
	"time"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
	"github.com/WWStoryMode/project-firefly/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders, optionally filtered to one customer,
// one vendor, or one delivery person. Nil filters match everything.
//
// Example:
//
//	query := NewListOrdersQuery(&customerID, nil, nil)
//	handler := NewListOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type ListOrdersQuery struct {
	customerID       *kernel.UUID
	vendorID         *kernel.UUID
	deliveryPersonID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders. Each filter is
// optional; pass nil to leave it open.
func NewListOrdersQuery(customerID, vendorID, deliveryPersonID *kernel.UUID) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		customerID:       customerID,
		vendorID:         vendorID,
		deliveryPersonID: deliveryPersonID,
		guard:            guard.NewConstructorGuard(),
	}

	for _, id := range []*kernel.UUID{customerID, vendorID, deliveryPersonID} {
		if id == nil {
			continue
		}
		if err := id.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// CustomerID returns the optional customer filter.
func (q ListOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// VendorID returns the optional vendor filter.
func (q ListOrdersQuery) VendorID() *kernel.UUID {
	return q.vendorID
}

// DeliveryPersonID returns the optional delivery person filter.
func (q ListOrdersQuery) DeliveryPersonID() *kernel.UUID {
	return q.deliveryPersonID
}

// OrderItemResponse represents one priced item snapshot of an order
// read model.
type OrderItemResponse struct {
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  decimal.Decimal
	Quantity   int
	Notes      string
}

// OrderResponse represents an order read model decorated with the vendor
// name and its item snapshots.
type OrderResponse struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	VendorID         kernel.UUID
	VendorName       string
	DeliveryPersonID *kernel.UUID
	Status           string
	TotalAmount      decimal.Decimal
	DeliveryAddress  string
	DeliveryNotes    string
	CreatedAt        time.Time
	Items            []OrderItemResponse
}
