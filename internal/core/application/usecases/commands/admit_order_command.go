package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/guard"
)

var ErrAdmitOrderCommandIsNotConstructed = errors.New(
	"AdmitOrderCommand must be created via NewAdmitOrderCommand constructor",
)

// AdmitOrderCommand requests admission of a pending order into its stage's
// work slot. For verification-gated stages the command carries the accepted
// VerifiedRecord obtained from VerifyOrderCommand.
type AdmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	record  *order.VerifiedRecord

	guard guard.ConstructorGuard
}

// NewAdmitOrderCommand builds the command. The record may be nil for stages
// that admit without verification; the handler enforces the gate per stage
// configuration.
func NewAdmitOrderCommand(orderID kernel.UUID, record *order.VerifiedRecord) (AdmitOrderCommand, error) {
	cmd := AdmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AdmitOrderCommand{}, err
	}
	if record != nil {
		if err := record.Validate(); err != nil {
			return AdmitOrderCommand{}, err
		}
	}

	cmd.record = record
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdmitOrderCommandIsNotConstructed)
}

// OrderID returns the order to admit.
func (c AdmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VerifiedRecord returns the accepted verification record, or nil.
func (c AdmitOrderCommand) VerifiedRecord() *order.VerifiedRecord {
	return c.record
}

func (c *AdmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
