package queries

import (
	"context"

	"transfers/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListWarehousesQueryHandler retrieves the warehouse list from the database.
type ListWarehousesQueryHandler struct {
	db *gorm.DB
}

// NewListWarehousesQueryHandler creates a handler for warehouse listings.
func NewListWarehousesQueryHandler(db *gorm.DB) ListWarehousesQueryHandler {
	return ListWarehousesQueryHandler{db: db}
}

// Handle executes the query, returning warehouses ordered by name.
func (h ListWarehousesQueryHandler) Handle(
	ctx context.Context,
	query ListWarehousesQuery,
) ([]ListWarehousesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name
		FROM warehouses
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]ListWarehousesQueryResponse, 0)
	for rows.Next() {
		var (
			resp ListWarehousesQueryResponse
			id   uuid.UUID
		)

		if err = rows.Scan(&id, &resp.Name); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
