package commands

import (
	"context"
	"fmt"

	"production/internal/core/domain/model/order"
	"production/internal/pkg/guard"
)

// ProposeBillingCommandHandler checks that an order is eligible for direct
// billing and returns the proposal for the confirmation step. Nothing is
// mutated; the billing status changes only on confirmation.
type ProposeBillingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewProposeBillingCommandHandler creates a handler for billing proposals.
func NewProposeBillingCommandHandler(uowFactory OrderUoWFactory) ProposeBillingCommandHandler {
	return ProposeBillingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies eligibility: the order must be Completed, awaiting billing
// and not forwarded. Rejections carry order.ErrNotPendingBilling,
// order.ErrOrderForwarded or order.ErrInvalidTransition.
func (h ProposeBillingCommandHandler) Handle(ctx context.Context, cmd ProposeBillingCommand) (BillingProposal, error) {
	if err := cmd.Validate(); err != nil {
		return BillingProposal{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BillingProposal{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return BillingProposal{}, err
	}

	if o.Status() != order.Completed {
		return BillingProposal{}, fmt.Errorf("%w: cannot bill order in status %s",
			order.ErrInvalidTransition, o.Status())
	}
	if o.IsForwarded() {
		return BillingProposal{}, order.ErrOrderForwarded
	}
	if o.BillingStatus() != order.PendingBilling {
		return BillingProposal{}, fmt.Errorf("%w: billing status is %s",
			order.ErrNotPendingBilling, o.BillingStatus())
	}

	return BillingProposal{
		orderID:     o.ID(),
		orderNumber: o.OrderNumber(),
		jobName:     o.JobName(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}
