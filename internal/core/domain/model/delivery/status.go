package delivery

import (
	"errors"
	"fmt"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/order"
	"github.com/WWStoryMode/project-firefly/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a requested assignment status
// is not the immediate successor of the current status. The error message
// names both the current and the requested status.
var ErrInvalidStatusTransition = errors.New("invalid assignment status transition")

// Status represents the lifecycle state of a delivery assignment.
// The machine is strictly monotonic: each state has exactly one successor
// and delivered is terminal.
type Status string

const (
	// StatusPending is the initial status of a freshly matched assignment.
	StatusPending Status = "pending"

	// StatusAccepted indicates the delivery person accepted the assignment.
	StatusAccepted Status = "accepted"

	// StatusPickedUp indicates the order was collected from the vendor.
	StatusPickedUp Status = "picked_up"

	// StatusDelivered is the terminal state; the assignment is no longer
	// active and the delivery person is released.
	StatusDelivered Status = "delivered"
)

// successor returns the single allowed next status per state. Terminal
// states map to the empty string.
func successor() map[Status]Status {
	return map[Status]Status{
		StatusPending:   StatusAccepted,
		StatusAccepted:  StatusPickedUp,
		StatusPickedUp:  StatusDelivered,
		StatusDelivered: "",
	}
}

// StatusFromString parses a status received from an external source.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the Status is one of the four defined states.
func (s Status) Validate() error {
	if _, ok := successor()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid assignment status", string(s)))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status has no successor.
func (s Status) IsTerminal() bool {
	return successor()[s] == ""
}

// TransitionTo validates the move from s to next. Only the immediate
// successor is legal: no skipping, no repeats, no cancellation path.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}

	if successor()[s] != next {
		return "", fmt.Errorf("%w: cannot transition from %s to %s",
			ErrInvalidStatusTransition, s, next)
	}

	return next, nil
}

// CascadePolicy maps each assignment status to the order status it implies.
// The policy is injected into the assignment-transition workflow so the
// coupling between the two machines is data, not code.
type CascadePolicy map[Status]order.Status

// DefaultCascadePolicy reproduces the product's coupling between the two
// status machines. Note that accepted implies confirmed, bypassing the
// order graph's preparing and ready states.
func DefaultCascadePolicy() CascadePolicy {
	return CascadePolicy{
		StatusPending:   order.StatusPending,
		StatusAccepted:  order.StatusConfirmed,
		StatusPickedUp:  order.StatusPickedUp,
		StatusDelivered: order.StatusDelivered,
	}
}

// ImpliedOrderStatus returns the order status implied by an assignment
// status, and whether the policy defines a mapping for it.
func (p CascadePolicy) ImpliedOrderStatus(s Status) (order.Status, bool) {
	implied, ok := p[s]
	return implied, ok
}
