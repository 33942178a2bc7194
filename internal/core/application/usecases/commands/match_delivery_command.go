package commands

import (
	"errors"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
	"github.com/WWStoryMode/project-firefly/internal/pkg/guard"
)

var ErrMatchDeliveryCommandIsNotConstructed = errors.New(
	"MatchDeliveryCommand must be created via NewMatchDeliveryCommand constructor",
)

// MatchDeliveryCommand represents a request to pair one order with an
// available delivery person. Issued right after order creation and again by
// the retry job for orders whose first match found nobody free.
type MatchDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMatchDeliveryCommand creates a command to match the given order.
func NewMatchDeliveryCommand(orderID kernel.UUID) (MatchDeliveryCommand, error) {
	matchCommand := MatchDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := matchCommand.setOrderID(orderID); err != nil {
		return MatchDeliveryCommand{}, err
	}

	return matchCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MatchDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrMatchDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to match.
func (c MatchDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MatchDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
