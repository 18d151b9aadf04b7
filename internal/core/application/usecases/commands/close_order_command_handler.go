package commands

import (
	"context"
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/services"
)

// CloseOrderCommandHandler handles closing an order under preparation.
// Untouched lines are carried over into a successor order created in the same
// transaction, so the pair is either fully persisted or not at all.
type CloseOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	orderCloser services.OrderCloser
}

// NewCloseOrderCommandHandler creates a handler for order closure.
func NewCloseOrderCommandHandler(uowFactory OrderUoWFactory) CloseOrderCommandHandler {
	return CloseOrderCommandHandler{
		uowFactory:  uowFactory,
		orderCloser: services.NewOrderCloser(),
	}
}

// Handle closes the order: gathers the sibling suffixes already taken within
// the order family and whether the closed code needs disambiguation, then
// delegates the state change to the domain service and persists both the
// closed order and, when untouched lines remain, its successor.
func (h CloseOrderCommandHandler) Handle(ctx context.Context, cmd CloseOrderCommand) (*services.CloseResult, error) {
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

	suffixes, err := orderRepo.SiblingSuffixes(ctx, o.Year(), o.SequenceNumber())
	if err != nil {
		return nil, err
	}

	closedCodeTaken, err := orderRepo.CodeInUse(ctx, o.BaseCode()+".0", o.ID())
	if err != nil {
		return nil, err
	}

	result, err := h.orderCloser.Close(o, kernel.NewUUID(), suffixes, closedCodeTaken, time.Now())
	if err != nil {
		return nil, err
	}

	if result.AlreadyClosed {
		return result, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if result.Successor != nil {
		if err = orderRepo.Add(ctx, result.Successor); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}
