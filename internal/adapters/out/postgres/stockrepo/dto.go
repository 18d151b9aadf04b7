// Package stockrepo persists the current-quantity stock ledger.
package stockrepo

import (
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/stock"

	"github.com/google/uuid"
)

// StockLevelDTO represents one ledger row, keyed by product and warehouse.
type StockLevelDTO struct {
	ProductCode string    `gorm:"primaryKey"`
	WarehouseID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity    int
	UpdatedAt   time.Time
}

// TableName specifies the database table name for stock levels.
func (StockLevelDTO) TableName() string {
	return "stock_levels"
}

func fromDomain(level *stock.Level) StockLevelDTO {
	return StockLevelDTO{
		ProductCode: level.ProductCode(),
		WarehouseID: level.WarehouseID().Bytes(),
		Quantity:    level.Quantity(),
		UpdatedAt:   level.UpdatedAt(),
	}
}

// StockMovementDTO represents one audit row for a ledger adjustment.
type StockMovementDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductCode string    `gorm:"index"`
	WarehouseID uuid.UUID `gorm:"type:uuid;index"`
	QtyBefore   int
	QtyAfter    int
	CreatedAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for stock movements.
func (StockMovementDTO) TableName() string {
	return "stock_movements"
}

func movementFromDomain(movement *stock.Movement) StockMovementDTO {
	return StockMovementDTO{
		ID:          movement.ID().Bytes(),
		ProductCode: movement.ProductCode(),
		WarehouseID: movement.WarehouseID().Bytes(),
		QtyBefore:   movement.QtyBefore(),
		QtyAfter:    movement.QtyAfter(),
		CreatedAt:   movement.CreatedAt(),
	}
}

func toDomain(dto StockLevelDTO) (*stock.Level, error) {
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	return stock.RestoreLevel(dto.ProductCode, warehouseID, dto.Quantity, dto.UpdatedAt)
}
