package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrConfirmBillingCommandIsNotConstructed = errors.New(
	"ConfirmBillingCommand must be created via NewConfirmBillingCommand constructor",
)

// ConfirmBillingCommand is the second half of the two-step billing commit.
// It can only be constructed from a BillingProposal, so the confirmation
// cannot be skipped programmatically.
type ConfirmBillingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmBillingCommand builds the confirmation from a proposal obtained
// via ProposeBillingCommandHandler.
func NewConfirmBillingCommand(proposal BillingProposal) (ConfirmBillingCommand, error) {
	if err := proposal.Validate(); err != nil {
		return ConfirmBillingCommand{}, err
	}

	return ConfirmBillingCommand{
		orderID: proposal.OrderID(),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmBillingCommand) Validate() error {
	return c.guard.Validate(ErrConfirmBillingCommandIsNotConstructed)
}

// OrderID returns the order whose billing is confirmed.
func (c ConfirmBillingCommand) OrderID() kernel.UUID {
	return c.orderID
}
