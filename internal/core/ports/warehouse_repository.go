package ports

import (
	"context"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/warehouse"
)

// WarehouseRepository is the read-side contract for warehouse reference data.
type WarehouseRepository interface {
	// Get retrieves a warehouse by identifier.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	// GetAll retrieves every warehouse, ordered by name.
	GetAll(ctx context.Context) ([]*warehouse.Warehouse, error)
}
