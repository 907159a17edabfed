package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrForwardOrderCommandIsNotConstructed = errors.New(
	"ForwardOrderCommand must be created via NewForwardOrderCommand constructor",
)

// ErrNoNextStage indicates a forwarding attempt from the terminal stage of the
// production line.
var ErrNoNextStage = errors.New("stage has no downstream stage to forward to")

// ForwardOrderCommand requests routing of a completed order to the next
// stage of the production line instead of billing it here.
type ForwardOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewForwardOrderCommand builds the command.
func NewForwardOrderCommand(orderID kernel.UUID) (ForwardOrderCommand, error) {
	cmd := ForwardOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ForwardOrderCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ForwardOrderCommand) Validate() error {
	return c.guard.Validate(ErrForwardOrderCommandIsNotConstructed)
}

// OrderID returns the order to forward.
func (c ForwardOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ForwardOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
