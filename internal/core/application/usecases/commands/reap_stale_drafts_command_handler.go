package commands

import (
	"context"
	"time"
)

// ReapStaleDraftsCommandHandler deletes Draft orders that have been sitting
// untouched past the configured age. The delete rule is the same one the
// DeleteOrder command applies.
type ReapStaleDraftsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReapStaleDraftsCommandHandler creates a handler for reaping stale drafts.
func NewReapStaleDraftsCommandHandler(uowFactory OrderUoWFactory) ReapStaleDraftsCommandHandler {
	return ReapStaleDraftsCommandHandler{uowFactory: uowFactory}
}

// Handle deletes all stale drafts in one transaction and returns how many
// were removed.
func (h ReapStaleDraftsCommandHandler) Handle(ctx context.Context, cmd ReapStaleDraftsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	stale, err := orderRepo.GetStaleDrafts(ctx, time.Now().Add(-cmd.MaxAge()))
	if err != nil {
		return 0, err
	}

	reaped := 0
	for _, o := range stale {
		if !o.CanDelete() {
			continue
		}
		if err = orderRepo.Delete(ctx, o.ID()); err != nil {
			return 0, err
		}
		reaped++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return reaped, nil
}
