package commands

import (
	"context"
	"log/slog"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/order"
)

// MatchDeliveryHandler triggers delivery matching for a freshly created
// order. Satisfied by MatchDeliveryCommandHandler.
type MatchDeliveryHandler interface {
	Handle(ctx context.Context, command MatchDeliveryCommand) error
}

// CreateOrderCommandHandler handles the business logic for order creation.
//
// Creation is deliberately tolerant of partial failure: the order record
// itself must commit, but the item snapshots and the delivery match are
// each written in their own transaction. If items or matching fail the
// customer still has an order; the gaps are logged and the matching retry
// job picks unmatched orders up later.
type CreateOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	matchHandler MatchDeliveryHandler
	logger       *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for persistence, a MatchDeliveryHandler for the
// post-creation matching attempt, and a logger for the tolerated failures.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	matchHandler MatchDeliveryHandler,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:   uowFactory,
		matchHandler: matchHandler,
		logger:       logger,
	}
}

// Handle processes the order creation command.
//
// The order aggregate is created in pending status with its total computed
// from the item line totals, and committed first. Item persistence and the
// matching attempt follow in separate transactions; their failures are
// logged and never surfaced to the caller.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		command.OrderID(),
		command.CustomerID(),
		command.VendorID(),
		command.Items(),
		command.DeliveryAddress(),
		command.DeliveryNotes(),
	)
	if err != nil {
		return err
	}

	if err = h.addOrder(ctx, newOrder); err != nil {
		return err
	}

	if err = h.addItems(ctx, newOrder); err != nil {
		h.logger.WarnContext(ctx, "order items were not persisted",
			"order_id", newOrder.ID().String(), "error", err)
	}

	matchCommand, err := NewMatchDeliveryCommand(newOrder.ID())
	if err != nil {
		return err
	}

	if err = h.matchHandler.Handle(ctx, matchCommand); err != nil {
		h.logger.InfoContext(ctx, "order created without delivery match",
			"order_id", newOrder.ID().String(), "error", err)
	}

	return nil
}

func (h CreateOrderCommandHandler) addOrder(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CreateOrderCommandHandler) addItems(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().AddItems(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
