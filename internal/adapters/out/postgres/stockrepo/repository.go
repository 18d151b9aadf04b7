package stockrepo

import (
	"context"
	"errors"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/stock"
	"transfers/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// Get retrieves the ledger entry for a product in a warehouse.
func (r *GormStockRepository) Get(ctx context.Context, productCode string, warehouseID kernel.UUID) (*stock.Level, error) {
	if productCode == "" {
		return nil, errs.NewValueIsRequiredError("productCode")
	}
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	var dto StockLevelDTO
	err := r.db.WithContext(ctx).
		First(&dto, "product_code = ? AND warehouse_id = ?", productCode, warehouseID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock", productCode)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save upserts a ledger entry on its (product, warehouse) key.
func (r *GormStockRepository) Save(ctx context.Context, level *stock.Level) error {
	if err := level.Validate(); err != nil {
		return err
	}

	dto := fromDomain(level)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_code"}, {Name: "warehouse_id"}},
		UpdateAll: true,
	}).Create(&dto).Error
}

// RecordMovement appends one audit row for an adjustment.
func (r *GormStockRepository) RecordMovement(ctx context.Context, movement *stock.Movement) error {
	if err := movement.Validate(); err != nil {
		return err
	}

	dto := movementFromDomain(movement)
	return r.db.WithContext(ctx).Create(&dto).Error
}
