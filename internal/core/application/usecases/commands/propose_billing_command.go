package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrProposeBillingCommandIsNotConstructed = errors.New(
	"ProposeBillingCommand must be created via NewProposeBillingCommand constructor",
)

// ProposeBillingCommand is the first half of the two-step billing commit: it
// asks whether an order may be billed and, if so, yields a BillingProposal
// the caller confirms with ConfirmBillingCommand.
type ProposeBillingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProposeBillingCommand builds the command.
func NewProposeBillingCommand(orderID kernel.UUID) (ProposeBillingCommand, error) {
	cmd := ProposeBillingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ProposeBillingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProposeBillingCommand) Validate() error {
	return c.guard.Validate(ErrProposeBillingCommandIsNotConstructed)
}

// OrderID returns the order proposed for billing.
func (c ProposeBillingCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ProposeBillingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

// BillingProposal summarizes the order about to be billed so the operator
// can confirm against the right job. Only a proposal can construct a
// ConfirmBillingCommand, which is what makes the two-step commit
// unskippable.
type BillingProposal struct {
	orderID     kernel.UUID
	orderNumber string
	jobName     string

	guard guard.ConstructorGuard
}

// OrderID returns the order to be billed.
func (p BillingProposal) OrderID() kernel.UUID {
	return p.orderID
}

// OrderNumber returns the customer-facing order number for display.
func (p BillingProposal) OrderNumber() string {
	return p.orderNumber
}

// JobName returns the job description for display.
func (p BillingProposal) JobName() string {
	return p.jobName
}

// Validate ensures the proposal was produced by ProposeBillingCommandHandler.
func (p BillingProposal) Validate() error {
	return p.guard.Validate(errors.New("BillingProposal must be obtained via ProposeBillingCommandHandler"))
}
