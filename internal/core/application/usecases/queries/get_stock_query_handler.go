package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

// GetStockQueryHandler reads the stock ledger from the database.
type GetStockQueryHandler struct {
	db *gorm.DB
}

// NewGetStockQueryHandler creates a handler for ledger lookups.
func NewGetStockQueryHandler(db *gorm.DB) GetStockQueryHandler {
	return GetStockQueryHandler{db: db}
}

// Handle fetches the ledger cell. A missing row is not an error: the ledger
// reads as zero for any (product, warehouse) pair never adjusted.
func (h GetStockQueryHandler) Handle(ctx context.Context, query GetStockQuery) (*GetStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resp := GetStockQueryResponse{
		ProductCode: query.ProductCode(),
		WarehouseID: query.WarehouseID(),
	}

	var updatedAt time.Time
	row := h.db.WithContext(ctx).Raw(`
		SELECT quantity, updated_at
		FROM stock_levels
		WHERE product_code = ? AND warehouse_id = ?
	`, query.ProductCode(), query.WarehouseID().Bytes()).Row()

	err := row.Scan(&resp.Quantity, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return &resp, nil
	}
	if err != nil {
		return nil, err
	}

	resp.UpdatedAt = &updatedAt

	return &resp, nil
}
