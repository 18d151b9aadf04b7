package commands

import (
	"context"
)

// DeleteLineCommandHandler handles removing a line from a Draft order.
type DeleteLineCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteLineCommandHandler creates a handler for line removal.
func NewDeleteLineCommandHandler(uowFactory OrderUoWFactory) DeleteLineCommandHandler {
	return DeleteLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the owning order by line id, removes the line and persists
// the order.
func (h DeleteLineCommandHandler) Handle(ctx context.Context, cmd DeleteLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetByLineID(ctx, cmd.LineID())
	if err != nil {
		return err
	}

	if err = o.RemoveLine(cmd.LineID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
