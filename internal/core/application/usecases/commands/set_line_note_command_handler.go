package commands

import (
	"context"
	"time"

	"transfers/internal/core/domain/model/order"
)

// SetLineNoteCommandHandler handles attaching operator notes to lines. The
// order is resolved through the line because note edits happen from the
// preparation screen, which addresses lines directly.
type SetLineNoteCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetLineNoteCommandHandler creates a handler for line note edits.
func NewSetLineNoteCommandHandler(uowFactory OrderUoWFactory) SetLineNoteCommandHandler {
	return SetLineNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the owning order by line id, sets the note and persists.
func (h SetLineNoteCommandHandler) Handle(ctx context.Context, cmd SetLineNoteCommand) (*order.Line, error) {
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

	line, err := o.SetLineNote(cmd.LineID(), cmd.Note(), time.Now())
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
