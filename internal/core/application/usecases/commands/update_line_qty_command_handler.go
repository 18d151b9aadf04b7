package commands

import (
	"context"
	"time"

	"transfers/internal/core/domain/model/order"
)

// UpdateLineQtyCommandHandler handles overwriting the requested quantity of a
// line on a Draft order.
type UpdateLineQtyCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateLineQtyCommandHandler creates a handler for line quantity updates.
func NewUpdateLineQtyCommandHandler(uowFactory OrderUoWFactory) UpdateLineQtyCommandHandler {
	return UpdateLineQtyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the owning order by line id, overwrites the quantity and
// persists the order.
func (h UpdateLineQtyCommandHandler) Handle(ctx context.Context, cmd UpdateLineQtyCommand) (*order.Line, error) {
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
	o, err := orderRepo.GetByLineID(ctx, cmd.LineID())
	if err != nil {
		return nil, err
	}

	line, err := o.UpdateLineQty(cmd.LineID(), cmd.Qty(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return line, nil
}
