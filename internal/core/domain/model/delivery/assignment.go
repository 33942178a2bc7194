package delivery

import (
	"errors"
	"time"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
	"github.com/WWStoryMode/project-firefly/internal/pkg/errs"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment was not
	// created through NewAssignment or RestoreAssignment.
	ErrAssignmentIsNotConstructed = errors.New(
		"Assignment must be created via NewAssignment constructor")

	// ErrAssignedAtIsRequired is returned when the assignment timestamp is
	// the zero time.
	ErrAssignedAtIsRequired = errs.NewValueIsRequiredError("assignedAt")
)

// Assignment is the aggregate root binding one order to one delivery
// person. It owns its own status lifecycle, independent of the order's,
// and records a timestamp for each milestone exactly once.
//
// Invariants:
//   - References exactly one order and one delivery person
//   - Status moves only through the monotonic graph in status.go
//   - assigned_at is set at creation; accepted_at, picked_up_at and
//     delivered_at are stamped when their status is first reached and are
//     never overwritten
//   - Assignments are never deleted; delivered ends the active lifecycle
type Assignment struct {
	id               kernel.UUID
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID
	status           Status
	assignedAt       time.Time
	acceptedAt       *time.Time
	pickedUpAt       *time.Time
	deliveredAt      *time.Time

	isConstructed bool
}

// NewAssignment creates a pending assignment binding an order to a delivery
// person at the given time.
func NewAssignment(
	id kernel.UUID,
	orderID kernel.UUID,
	deliveryPersonID kernel.UUID,
	assignedAt time.Time,
) (*Assignment, error) {
	a := &Assignment{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setDeliveryPersonID(deliveryPersonID),
		a.setAssignedAt(assignedAt),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an Assignment from persistence, trusting
// the stored status and milestone timestamps.
func RestoreAssignment(
	id kernel.UUID,
	orderID kernel.UUID,
	deliveryPersonID kernel.UUID,
	status Status,
	assignedAt time.Time,
	acceptedAt *time.Time,
	pickedUpAt *time.Time,
	deliveredAt *time.Time,
) (*Assignment, error) {
	a := &Assignment{
		status:        status,
		acceptedAt:    acceptedAt,
		pickedUpAt:    pickedUpAt,
		deliveredAt:   deliveredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setDeliveryPersonID(deliveryPersonID),
		a.setAssignedAt(assignedAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Assignment was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two assignments by their unique identifiers.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the linked order's identifier.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// DeliveryPersonID returns the assigned delivery person's identifier.
func (a *Assignment) DeliveryPersonID() kernel.UUID {
	return a.deliveryPersonID
}

// Status returns the current assignment status.
func (a *Assignment) Status() Status {
	return a.status
}

// AssignedAt returns the creation timestamp.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// AcceptedAt returns the acceptance timestamp, or nil if not yet accepted.
func (a *Assignment) AcceptedAt() *time.Time {
	return a.acceptedAt
}

// PickedUpAt returns the pickup timestamp, or nil if not yet picked up.
func (a *Assignment) PickedUpAt() *time.Time {
	return a.pickedUpAt
}

// DeliveredAt returns the delivery timestamp, or nil if not yet delivered.
func (a *Assignment) DeliveredAt() *time.Time {
	return a.deliveredAt
}

// IsActive reports whether the assignment has not reached delivered.
func (a *Assignment) IsActive() bool {
	return !a.status.IsTerminal()
}

// TransitionTo moves the assignment to the requested status if it is the
// immediate successor of the current status, stamping the corresponding
// milestone timestamp with now. Because the graph is monotonic each
// milestone is reached at most once, so timestamps are written exactly
// once; earlier timestamps are never touched.
func (a *Assignment) TransitionTo(requested Status, now time.Time) error {
	next, err := a.status.TransitionTo(requested)
	if err != nil {
		return err
	}

	a.status = next

	switch next {
	case StatusAccepted:
		a.acceptedAt = &now
	case StatusPickedUp:
		a.pickedUpAt = &now
	case StatusDelivered:
		a.deliveredAt = &now
	case StatusPending:
		// unreachable: pending has no incoming edge
	}

	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.orderID = id
	return nil
}

func (a *Assignment) setDeliveryPersonID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.deliveryPersonID = id
	return nil
}

func (a *Assignment) setAssignedAt(t time.Time) error {
	if t.IsZero() {
		return ErrAssignedAtIsRequired
	}
	a.assignedAt = t
	return nil
}
