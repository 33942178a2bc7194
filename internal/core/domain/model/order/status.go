package order

import (
	"errors"
	"fmt"

	"github.com/WWStoryMode/project-firefly/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a requested order status is
// not reachable from the current status. The wrapping error message always
// names both the current and the requested status.
var ErrInvalidStatusTransition = errors.New("invalid order status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	pending ──> confirmed ──> preparing ──> ready ──> picked_up ──> delivered
//	   │            │             │           │
//	   └────────────┴─────────────┴───────────┴──> cancelled
//
// delivered and cancelled are terminal states with no outgoing transitions.
type Status string

const (
	// StatusPending is the initial status of every new order.
	StatusPending Status = "pending"

	// StatusConfirmed indicates the vendor (or a delivery acceptance
	// cascade) has confirmed the order.
	StatusConfirmed Status = "confirmed"

	// StatusPreparing indicates the vendor is preparing the order.
	StatusPreparing Status = "preparing"

	// StatusReady indicates the order is ready for pickup.
	StatusReady Status = "ready"

	// StatusPickedUp indicates the delivery person has collected the order.
	StatusPickedUp Status = "picked_up"

	// StatusDelivered is the terminal success state.
	StatusDelivered Status = "delivered"

	// StatusCancelled is the terminal cancellation state.
	StatusCancelled Status = "cancelled"
)

// allowedTransitions returns the order status graph. Terminal states map to
// an empty set.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusPreparing, StatusCancelled},
		StatusPreparing: {StatusReady, StatusCancelled},
		StatusReady:     {StatusPickedUp, StatusCancelled},
		StatusPickedUp:  {StatusDelivered},
		StatusDelivered: {},
		StatusCancelled: {},
	}
}

// StatusFromString parses a status received from an external source
// (request body, database row). Unknown values are rejected.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the Status is one of the seven defined states.
func (s Status) Validate() error {
	if _, ok := allowedTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(allowedTransitions()[s]) == 0
}

// CanTransitionTo reports whether next is in the allowed-next set of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the move from s to next against the status graph.
//
// Returns:
//   - (next, nil) on a legal transition
//   - ("", error) wrapping ErrInvalidStatusTransition otherwise; the error
//     message names both the current and the requested status
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}

	if !s.CanTransitionTo(next) {
		return "", fmt.Errorf("%w: cannot transition from %s to %s",
			ErrInvalidStatusTransition, s, next)
	}

	return next, nil
}
