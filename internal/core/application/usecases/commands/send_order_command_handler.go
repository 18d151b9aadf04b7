package commands

import (
	"context"
	"time"

	"transfers/internal/core/domain/model/order"
)

// SendOrderCommandHandler handles dispatching a Draft order to its
// destination warehouse.
type SendOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSendOrderCommandHandler creates a handler for order dispatch.
func NewSendOrderCommandHandler(uowFactory OrderUoWFactory) SendOrderCommandHandler {
	return SendOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, marks it Sent with the recipient contact and
// persists it.
func (h SendOrderCommandHandler) Handle(ctx context.Context, cmd SendOrderCommand) (*order.Order, error) {
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

	if err = o.MarkSent(cmd.RecipientEmail(), time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
