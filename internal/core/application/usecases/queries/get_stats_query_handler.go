package queries

import (
	"context"
	"database/sql"
	"time"

	"transfers/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStatsQueryHandler reads stock-movement statistics from the database.
type GetStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetStatsQueryHandler creates a handler for stats queries.
func NewGetStatsQueryHandler(db *gorm.DB) GetStatsQueryHandler {
	return GetStatsQueryHandler{db: db}
}

// Handle counts the movements and distinct products touched inside the
// window and lists the most recent entries.
func (h GetStatsQueryHandler) Handle(ctx context.Context, query GetStatsQuery) (*GetStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	resp := GetStatsQueryResponse{
		Period: query.Period(),
		From:   query.PeriodStart(now),
		To:     now,
	}

	where := ` WHERE m.created_at >= ? AND m.created_at <= ?`
	args := []any{resp.From, resp.To}
	if warehouseID := query.WarehouseID(); warehouseID != nil {
		where += ` AND m.warehouse_id = ?`
		args = append(args, warehouseID.Bytes())
	}

	row := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*), COUNT(DISTINCT m.product_code) FROM stock_movements m`+where,
		args...,
	).Row()
	if err := row.Scan(&resp.Movements, &resp.ProductsTouched); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.product_code,
			m.warehouse_id,
			m.qty_before,
			m.qty_after,
			m.created_at,
			w.name
		FROM stock_movements m
		LEFT JOIN warehouses w ON w.id = m.warehouse_id`+where+`
		ORDER BY m.created_at DESC
		LIMIT ?`,
		append(args, statsMovementsLimit)...,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resp.RecentMovements = make([]GetStatsMovementResponse, 0)
	for rows.Next() {
		var (
			movement        GetStatsMovementResponse
			id, warehouseID uuid.UUID
			warehouseName   sql.NullString
		)

		err = rows.Scan(
			&id,
			&movement.ProductCode,
			&warehouseID,
			&movement.QtyBefore,
			&movement.QtyAfter,
			&movement.CreatedAt,
			&warehouseName,
		)
		if err != nil {
			return nil, err
		}

		if movement.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if movement.WarehouseID, err = kernel.UUIDFromBytes(warehouseID[:]); err != nil {
			return nil, err
		}
		movement.WarehouseName = warehouseName.String
		movement.Delta = movement.QtyAfter - movement.QtyBefore

		resp.RecentMovements = append(resp.RecentMovements, movement)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &resp, nil
}
