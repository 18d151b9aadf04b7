package queries

import (
	"context"
	"database/sql"

	"transfers/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListShippedItemsQueryHandler reads the shipped-items history from the
// database.
type ListShippedItemsQueryHandler struct {
	db *gorm.DB
}

// NewListShippedItemsQueryHandler creates a handler for shipped-items
// history queries.
func NewListShippedItemsQueryHandler(db *gorm.DB) ListShippedItemsQueryHandler {
	return ListShippedItemsQueryHandler{db: db}
}

// Handle lists the lines of shipped orders, most recently shipped first.
func (h ListShippedItemsQueryHandler) Handle(
	ctx context.Context,
	query ListShippedItemsQuery,
) ([]ListShippedItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			l.id,
			l.product_code,
			l.description,
			l.requested,
			l.prepared,
			o.id,
			o.code,
			o.shipped_at,
			wf.name,
			wt.name
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		LEFT JOIN warehouses wf ON wf.id = o.from_warehouse
		LEFT JOIN warehouses wt ON wt.id = o.to_warehouse
		WHERE o.shipped_at IS NOT NULL`
	args := make([]any, 0, 4)

	if text := query.Text(); text != "" {
		stmt += ` AND (l.product_code ILIKE ? OR l.description ILIKE ? OR o.code ILIKE ?)`
		needle := "%" + text + "%"
		args = append(args, needle, needle, needle)
	}

	stmt += `
		ORDER BY o.shipped_at DESC, l.created_at DESC
		LIMIT ?`
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]ListShippedItemsQueryResponse, 0)
	for rows.Next() {
		var (
			resp             ListShippedItemsQueryResponse
			lineID, orderID  uuid.UUID
			fromName, toName sql.NullString
		)

		err = rows.Scan(
			&lineID,
			&resp.ProductCode,
			&resp.Description,
			&resp.QtyRequested,
			&resp.QtyShipped,
			&orderID,
			&resp.OrderCode,
			&resp.ShippedAt,
			&fromName,
			&toName,
		)
		if err != nil {
			return nil, err
		}

		if resp.LineID, err = kernel.UUIDFromBytes(lineID[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		resp.FromWarehouse = fromName.String
		resp.ToWarehouse = toName.String

		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
