package commands

import (
	"context"
	"errors"
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/order"
	"transfers/internal/core/domain/services"
	"transfers/internal/pkg/errs"
)

// SplitResidualCommandHandler handles moving the unfulfilled remainder of a
// partially prepared line from a closed order onto the next sibling order.
// Source shrink and residual placement commit in a single transaction.
type SplitResidualCommandHandler struct {
	uowFactory OrderUoWFactory
	splitter   services.ResidualSplitter
}

// NewSplitResidualCommandHandler creates a handler for residual splitting.
func NewSplitResidualCommandHandler(uowFactory OrderUoWFactory) SplitResidualCommandHandler {
	return SplitResidualCommandHandler{
		uowFactory: uowFactory,
		splitter:   services.NewResidualSplitter(),
	}
}

// Handle loads the source order and, when present, the sibling that receives
// the residual, delegates the move to the domain service and persists both
// orders.
func (h SplitResidualCommandHandler) Handle(ctx context.Context, cmd SplitResidualCommand) (*services.SplitResult, error) {
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
	source, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	var target *order.Order
	target, err = orderRepo.GetByFamily(ctx, source.Year(), source.SequenceNumber(), h.splitter.TargetSuffix(source))
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
		target = nil
	}

	result, err := h.splitter.Split(source, cmd.LineID(), target, kernel.NewUUID(), kernel.NewUUID(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, source); err != nil {
		return nil, err
	}

	if result.TargetCreated {
		err = orderRepo.Add(ctx, result.Target)
	} else {
		err = orderRepo.Update(ctx, result.Target)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}
