package commands

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/stage"
)

// ForwardOrderCommandHandler routes a completed order downstream: a fresh
// Pending order carrying the same order number, job name, quantity and bag
// type is created at the next stage, and the source order is closed as
// forwarded. Both writes happen in one transaction, so the successor exists
// if and only if the source is marked.
//
// Forwarding excludes billing at this stage: a billed order cannot be
// forwarded (order.ErrOrderBilled) and a forwarded order cannot be billed.
type ForwardOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewForwardOrderCommandHandler creates a handler for order forwarding.
func NewForwardOrderCommandHandler(uowFactory OrderUoWFactory) ForwardOrderCommandHandler {
	return ForwardOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle forwards the order and returns the identifier of the successor
// order created at the downstream stage.
func (h ForwardOrderCommandHandler) Handle(ctx context.Context, cmd ForwardOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	cfg, err := stage.ConfigFor(o.Stage())
	if err != nil {
		return kernel.UUID{}, err
	}

	next, ok := cfg.NextStage()
	if !ok {
		return kernel.UUID{}, ErrNoNextStage
	}

	if err = o.MarkForwarded(); err != nil {
		return kernel.UUID{}, err
	}

	successor, err := order.NewOrder(
		kernel.NewUUID(),
		o.OrderNumber(),
		o.JobName(),
		o.Quantity(),
		o.BagType(),
		next,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, successor); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}
	return successor.ID(), nil
}
