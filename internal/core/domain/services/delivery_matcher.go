package services

import (
	"errors"
	"time"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/delivery"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/order"
)

// ErrDeliveryPersonNotFound is returned when no eligible delivery person is
// available for an order. This occurs when no person is provided or the
// provided person is inactive or already claimed by another assignment.
var ErrDeliveryPersonNotFound = errors.New("delivery person not found")

// ErrOrderAlreadyAssigned is returned when matching is attempted for an order
// that already has a delivery person.
var ErrOrderAlreadyAssigned = errors.New("order already assigned")

// DeliveryMatcher is a domain service responsible for pairing an order with a
// delivery person and creating the assignment that tracks the delivery.
//
// Business rules:
//   - Orders must be valid and not yet assigned
//   - The delivery person must be active and available
//   - Claiming the person, creating the assignment and stamping the order
//     happen as one workflow; callers persist all three in one transaction
type DeliveryMatcher struct{}

// NewDeliveryMatcher creates a new DeliveryMatcher instance.
func NewDeliveryMatcher() DeliveryMatcher {
	return DeliveryMatcher{}
}

// Match claims the delivery person for the order and produces a pending
// assignment stamped with the given time.
//
// Returns ErrOrderAlreadyAssigned if the order already carries a delivery
// person, delivery.ErrPersonNotEligible if the person cannot take work, or
// validation errors from either aggregate.
func (m DeliveryMatcher) Match(o *order.Order, person *delivery.Person, now time.Time) (*delivery.Assignment, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if o.DeliveryPerson() != nil {
		return nil, ErrOrderAlreadyAssigned
	}

	if person == nil {
		return nil, ErrDeliveryPersonNotFound
	}

	if err := person.Validate(); err != nil {
		return nil, err
	}

	if err := person.Claim(); err != nil {
		return nil, err
	}

	assignment, err := delivery.NewAssignment(kernel.NewUUID(), o.ID(), person.ID(), now)
	if err != nil {
		return nil, err
	}

	if err = o.AssignDeliveryPerson(person.ID()); err != nil {
		return nil, err
	}

	return assignment, nil
}
