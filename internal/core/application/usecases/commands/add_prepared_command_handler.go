package commands

import (
	"context"
	"time"

	"transfers/internal/core/domain/model/order"
)

// AddPreparedResult reports the outcome of recording prepared quantity.
type AddPreparedResult struct {
	Line *order.Line
	// Started is true when this scan moved the order from Sent to InProgress.
	Started bool
	Order   *order.Order
}

// AddPreparedCommandHandler handles recording prepared quantity scans.
// The first scan against a Sent order starts the preparation phase.
type AddPreparedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddPreparedCommandHandler creates a handler for prepared quantity scans.
func NewAddPreparedCommandHandler(uowFactory OrderUoWFactory) AddPreparedCommandHandler {
	return AddPreparedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the prepared increment to the line matching
// the scanned product and persists the order.
func (h AddPreparedCommandHandler) Handle(ctx context.Context, cmd AddPreparedCommand) (*AddPreparedResult, error) {
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

	line, started, err := o.AddPrepared(cmd.ProductCode(), cmd.Delta(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &AddPreparedResult{Line: line, Started: started, Order: o}, nil
}
