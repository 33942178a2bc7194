package commands

import (
	"errors"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/delivery"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
	"github.com/WWStoryMode/project-firefly/internal/pkg/guard"
)

var ErrTransitionAssignmentCommandIsNotConstructed = errors.New(
	"TransitionAssignmentCommand must be created via NewTransitionAssignmentCommand constructor",
)

// TransitionAssignmentCommand represents a delivery person advancing their
// assignment: accepting it, marking pickup, or marking delivery.
type TransitionAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	status       delivery.Status

	guard guard.ConstructorGuard
}

// NewTransitionAssignmentCommand creates a command to transition an assignment.
// Validates that the assignment ID is valid and the status is a defined
// assignment status; whether the move is legal is decided by the aggregate.
func NewTransitionAssignmentCommand(
	assignmentID kernel.UUID,
	status delivery.Status,
) (TransitionAssignmentCommand, error) {
	transitionCommand := TransitionAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setAssignmentID(assignmentID),
		transitionCommand.setStatus(status),
	); err != nil {
		return TransitionAssignmentCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrTransitionAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the identifier of the assignment to transition.
func (c TransitionAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// Status returns the requested target status.
func (c TransitionAssignmentCommand) Status() delivery.Status {
	return c.status
}

func (c *TransitionAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *TransitionAssignmentCommand) setStatus(status delivery.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
