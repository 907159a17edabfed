package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/guard"
)

var ErrVerifyOrderCommandIsNotConstructed = errors.New(
	"VerifyOrderCommand must be created via NewVerifyOrderCommand constructor",
)

// VerifyOrderCommand carries the measured parameters supplied by the
// scanning collaborator for one order.
type VerifyOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	measured order.ParameterSet

	guard guard.ConstructorGuard
}

// NewVerifyOrderCommand builds the command. The parameter set must carry at
// least one measurement; schema validation is the verification gate's job.
func NewVerifyOrderCommand(orderID kernel.UUID, measured order.ParameterSet) (VerifyOrderCommand, error) {
	cmd := VerifyOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return VerifyOrderCommand{}, err
	}
	if len(measured) == 0 {
		return VerifyOrderCommand{}, order.ErrParameterSetIsEmpty
	}

	cmd.measured = measured.Clone()
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyOrderCommand) Validate() error {
	return c.guard.Validate(ErrVerifyOrderCommandIsNotConstructed)
}

// OrderID returns the order being verified.
func (c VerifyOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Measured returns a copy of the supplied parameter set.
func (c VerifyOrderCommand) Measured() order.ParameterSet {
	return c.measured.Clone()
}

func (c *VerifyOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
