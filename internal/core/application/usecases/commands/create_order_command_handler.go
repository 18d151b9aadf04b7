package commands

import (
	"context"
	"time"

	"transfers/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for opening a transfer
// order. Allocation of the per-year sequence number runs inside the creation
// transaction so two concurrent creations cannot compute the same number; the
// unique family index backs this up at the store level.
type CreateOrderCommandHandler struct {
	uowFactory OrderWarehouseUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderWarehouseUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command: verifies both warehouse
// endpoints exist, allocates the next sequence number for the current year,
// and persists the Draft order, all in one transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	warehouseRepo := uow.WarehouseRepository()
	if _, err := warehouseRepo.Get(ctx, cmd.FromWarehouseID()); err != nil {
		return nil, err
	}
	if _, err := warehouseRepo.Get(ctx, cmd.ToWarehouseID()); err != nil {
		return nil, err
	}

	now := time.Now()
	orderRepo := uow.OrderRepository()
	sequence, err := orderRepo.NextSequenceNumber(ctx, now.Year())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.OrderID(), now.Year(), sequence, cmd.FromWarehouseID(), cmd.ToWarehouseID(), now)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
