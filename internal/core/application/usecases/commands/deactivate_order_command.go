package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrDeactivateOrderCommandIsNotConstructed = errors.New(
	"DeactivateOrderCommand must be created via NewDeactivateOrderCommand constructor",
)

// DeactivateOrderCommand is the administrative override that vacates a work
// cell: the active order returns to Pending, its verified data is discarded,
// and the stage slot is freed.
type DeactivateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateOrderCommand builds the command.
func NewDeactivateOrderCommand(orderID kernel.UUID) (DeactivateOrderCommand, error) {
	cmd := DeactivateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return DeactivateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateOrderCommandIsNotConstructed)
}

// OrderID returns the order to deactivate.
func (c DeactivateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *DeactivateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
