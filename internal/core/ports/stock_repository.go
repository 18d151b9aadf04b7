package ports

import (
	"context"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/stock"
)

// StockRepository is the persistence contract for the current-quantity
// ledger. Entries are keyed by (productCode, warehouseId) and upserted.
type StockRepository interface {
	// Get retrieves the ledger entry for a product in a warehouse, or an
	// object-not-found error when no entry exists yet.
	Get(ctx context.Context, productCode string, warehouseID kernel.UUID) (*stock.Level, error)

	// Save upserts a ledger entry.
	Save(ctx context.Context, level *stock.Level) error

	// RecordMovement appends one audit entry for an adjustment.
	RecordMovement(ctx context.Context, movement *stock.Movement) error
}
