package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/delivery"
	"github.com/WWStoryMode/project-firefly/internal/core/ports"
)

// TransitionAssignmentCommandHandler handles assignment status transitions
// and their cascade onto the order.
//
// Once an assignment exists its status machine is authoritative: every
// assignment transition writes the order status implied by the cascade
// policy, bypassing the order's own transition graph. When the assignment
// reaches delivered the delivery person is released. All of it commits as
// one transaction so the two machines can never be observed disagreeing.
type TransitionAssignmentCommandHandler struct {
	uowFactory UoWFactory
	policy     delivery.CascadePolicy
}

// NewTransitionAssignmentCommandHandler creates a handler for assignment
// transition operations. The cascade policy decides which order status each
// assignment status implies; pass delivery.DefaultCascadePolicy() for the
// product behavior.
func NewTransitionAssignmentCommandHandler(
	uowFactory UoWFactory,
	policy delivery.CascadePolicy,
) TransitionAssignmentCommandHandler {
	return TransitionAssignmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the assignment transition command.
// Returns errs.ErrObjectNotFound if the assignment does not exist and
// delivery.ErrInvalidStatusTransition if the move is illegal.
func (h TransitionAssignmentCommandHandler) Handle(ctx context.Context, command TransitionAssignmentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()
	orderRepo := uow.OrderRepository()
	personRepo := uow.DeliveryPersonRepository()

	assignment, err := assignmentRepo.Get(ctx, command.AssignmentID())
	if err != nil {
		return err
	}

	if err = assignment.TransitionTo(command.Status(), time.Now().UTC()); err != nil {
		return err
	}

	implied, ok := h.policy.ImpliedOrderStatus(command.Status())
	if !ok {
		return fmt.Errorf("cascade policy has no mapping for assignment status %s", command.Status())
	}

	linkedOrder, err := orderRepo.Get(ctx, assignment.OrderID())
	if err != nil {
		return err
	}

	if err = linkedOrder.ApplyAssignmentStatus(implied); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, assignment); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, linkedOrder); err != nil {
		return err
	}

	if command.Status() == delivery.StatusDelivered {
		if err = h.releasePerson(ctx, personRepo, assignment); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h TransitionAssignmentCommandHandler) releasePerson(
	ctx context.Context,
	personRepo ports.DeliveryPersonRepository,
	assignment *delivery.Assignment,
) error {
	person, err := personRepo.Get(ctx, assignment.DeliveryPersonID())
	if err != nil {
		return err
	}

	person.Release()

	return personRepo.Update(ctx, person)
}
