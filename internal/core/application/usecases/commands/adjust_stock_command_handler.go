package commands

import (
	"context"
	"errors"
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/stock"
	"transfers/internal/pkg/errs"
)

// AdjustStockCommandHandler handles inventory corrections on the
// current-quantity ledger. Unknown (product, warehouse) pairs get a fresh
// entry starting from zero.
type AdjustStockCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewAdjustStockCommandHandler creates a handler for stock adjustments.
func NewAdjustStockCommandHandler(uowFactory StockUoWFactory) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the product, applies the delta to its ledger entry, upserts
// it and appends an audit movement with the before/after quantities.
func (h AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) (*stock.Level, error) {
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

	product, err := uow.ProductRepository().GetByCode(ctx, cmd.ProductCode())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stockRepo := uow.StockRepository()
	level, err := stockRepo.Get(ctx, product.Code(), cmd.WarehouseID())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}

		level, err = stock.NewLevel(product.Code(), cmd.WarehouseID(), 0, now)
		if err != nil {
			return nil, err
		}
	}

	qtyBefore := level.Quantity()
	level.Adjust(cmd.Delta(), now)

	if err = stockRepo.Save(ctx, level); err != nil {
		return nil, err
	}

	movement, err := stock.NewMovement(
		kernel.NewUUID(), product.Code(), cmd.WarehouseID(), qtyBefore, level.Quantity(), now,
	)
	if err != nil {
		return nil, err
	}

	if err = stockRepo.RecordMovement(ctx, movement); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return level, nil
}
