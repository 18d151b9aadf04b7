package commands

import (
	"context"
	"time"

	"transfers/internal/core/domain/model/order"
)

// MarkShippedResult reports the outcome of a shipment mark.
type MarkShippedResult struct {
	Order *order.Order
	// AlreadyShipped is true when the order carried a shipment timestamp
	// before this call; the original timestamp is kept.
	AlreadyShipped bool
}

// MarkShippedCommandHandler handles recording the physical departure of a
// closed order. Repeated marks are idempotent.
type MarkShippedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkShippedCommandHandler creates a handler for shipment marks.
func NewMarkShippedCommandHandler(uowFactory OrderUoWFactory) MarkShippedCommandHandler {
	return MarkShippedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, stamps the shipment time if absent and persists.
func (h MarkShippedCommandHandler) Handle(ctx context.Context, cmd MarkShippedCommand) (*MarkShippedResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	already, err := o.MarkShipped(time.Now())
	if err != nil {
		return nil, err
	}

	if already {
		return &MarkShippedResult{Order: o, AlreadyShipped: true}, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &MarkShippedResult{Order: o}, nil
}
