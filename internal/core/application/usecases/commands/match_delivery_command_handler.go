package commands

import (
	"context"
	"errors"
	"time"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/order"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/services"
	"github.com/WWStoryMode/project-firefly/internal/pkg/errs"
)

var (
	ErrNoOrderFound              = errors.New("no order found")
	ErrNoDeliveryPeopleAvailable = errors.New("no delivery people available")
	ErrOrderIsNotMatchable       = errors.New("order is not matchable")
)

// MatchDeliveryCommandHandler orchestrates the delivery matching process.
// Claims one available delivery person for a pending order and creates the
// assignment that tracks the delivery.
//
// The claim is race-free: the delivery person row is selected with a lock
// that skips rows held by concurrent matchers, so two orders matched at the
// same instant can never land on the same person. Claiming the person,
// inserting the assignment and back-linking the order commit as one
// transaction.
//
// Example:
//
//	handler := NewMatchDeliveryCommandHandler(uowFactory)
//	cmd, _ := NewMatchDeliveryCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoDeliveryPeopleAvailable):
//	    log.Println("Everyone is busy, retry job will pick this order up")
//	case err != nil:
//	    log.Printf("Matching failed: %v", err)
//	}
type MatchDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewMatchDeliveryCommandHandler creates a handler for delivery matching operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewMatchDeliveryCommandHandler(uowFactory UoWFactory) MatchDeliveryCommandHandler {
	return MatchDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the matching command. Loads the order, locks the first
// available delivery person, runs the DeliveryMatcher and persists all three
// aggregates in a single transaction.
//
// Returns ErrNoOrderFound if the order does not exist,
// ErrOrderIsNotMatchable if it is not in pending status,
// services.ErrOrderAlreadyAssigned if it already has a delivery person, and
// ErrNoDeliveryPeopleAvailable if nobody is free.
func (h MatchDeliveryCommandHandler) Handle(ctx context.Context, command MatchDeliveryCommand) error {
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

	orderRepo := uow.OrderRepository()
	personRepo := uow.DeliveryPersonRepository()
	assignmentRepo := uow.AssignmentRepository()

	matchedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	if matchedOrder.DeliveryPerson() != nil {
		return services.ErrOrderAlreadyAssigned
	}
	if matchedOrder.Status() != order.StatusPending {
		return ErrOrderIsNotMatchable
	}

	person, err := personRepo.GetFirstAvailable(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoDeliveryPeopleAvailable
	}
	if err != nil {
		return err
	}

	assignment, err := services.NewDeliveryMatcher().Match(matchedOrder, person, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = assignmentRepo.Add(ctx, assignment); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, matchedOrder); err != nil {
		return err
	}

	if err = personRepo.Update(ctx, person); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
