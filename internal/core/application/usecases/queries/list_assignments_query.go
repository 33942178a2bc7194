package queries

import (
	"errors"
	"time"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
	"github.com/WWStoryMode/project-firefly/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListAssignmentsQueryIsNotConstructed = errors.New(
	"ListAssignmentsQuery must be created via NewListAssignmentsQuery constructor",
)

// ListAssignmentsQuery retrieves active delivery assignments, newest first.
// Delivered assignments are excluded; they are finished work. An optional
// filter narrows the list to one delivery person's workload.
//
// Example:
//
//	query, _ := NewListAssignmentsQuery(&personID)
//	handler := NewListAssignmentsQueryHandler(db)
//
//	assignments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list assignments: %w", err)
//	}
type ListAssignmentsQuery struct {
	deliveryPersonID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListAssignmentsQuery creates a query to list active assignments.
// Pass nil to list every delivery person's assignments.
func NewListAssignmentsQuery(deliveryPersonID *kernel.UUID) (ListAssignmentsQuery, error) {
	if deliveryPersonID != nil {
		if err := deliveryPersonID.Validate(); err != nil {
			return ListAssignmentsQuery{}, err
		}
	}

	return ListAssignmentsQuery{
		deliveryPersonID: deliveryPersonID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrListAssignmentsQueryIsNotConstructed)
}

// DeliveryPersonID returns the optional delivery person filter.
func (q ListAssignmentsQuery) DeliveryPersonID() *kernel.UUID {
	return q.deliveryPersonID
}

// AssignmentResponse represents an assignment read model decorated with
// everything the delivery person needs: where to collect the order, where
// to take it, what it contains, and who to call on arrival.
type AssignmentResponse struct {
	ID               kernel.UUID
	OrderID          kernel.UUID
	DeliveryPersonID kernel.UUID
	Status           string
	AssignedAt       time.Time
	AcceptedAt       *time.Time
	PickedUpAt       *time.Time
	DeliveredAt      *time.Time

	OrderStatus     string
	TotalAmount     decimal.Decimal
	DeliveryAddress string
	DeliveryNotes   string
	VendorName      string
	VendorAddress   string
	CustomerName    string
	CustomerPhone   string
	Items           []OrderItemResponse
}
