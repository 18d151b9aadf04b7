package commands

import (
	"context"
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/order"
)

// AddLineResult reports how the added quantity landed on the order.
type AddLineResult struct {
	Mode  order.AddLineMode
	Line  *order.Line
	Order *order.Order
}

// AddLineCommandHandler handles adding product quantity to a Draft order.
// The line description is snapshotted from the catalog at add time and is
// never refreshed afterwards.
type AddLineCommandHandler struct {
	uowFactory OrderCatalogUoWFactory
}

// NewAddLineCommandHandler creates a handler for line accumulation.
func NewAddLineCommandHandler(uowFactory OrderCatalogUoWFactory) AddLineCommandHandler {
	return AddLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the product in the catalog, merges the quantity into an
// existing line for that product or creates a new one, and persists the order.
func (h AddLineCommandHandler) Handle(ctx context.Context, cmd AddLineCommand) (*AddLineResult, error) {
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

	product, err := uow.ProductRepository().GetByCode(ctx, cmd.ProductCode())
	if err != nil {
		return nil, err
	}

	mode, line, err := o.AddLine(kernel.NewUUID(), product.Code(), product.Description(), cmd.Qty(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &AddLineResult{Mode: mode, Line: line, Order: o}, nil
}
