package queries

import (
	"context"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves the order listing from the database.
// Results are newest-family-first: year descending, sequence descending,
// then suffix ascending so siblings of one family read in creation order.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query with the filter set applied.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.code,
			o.year,
			o.sequence_number,
			o.suffix,
			o.status,
			o.from_warehouse,
			o.to_warehouse,
			o.recipient_email,
			o.created_at,
			o.sent_at,
			o.closed_at,
			o.shipped_at,
			COUNT(l.id) AS line_count
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE 1 = 1`
	args := make([]any, 0, 4)

	if state := query.State(); state != nil {
		sql += ` AND o.status = ?`
		args = append(args, int(*state))
	}
	if year := query.Year(); year != nil {
		sql += ` AND o.year = ?`
		args = append(args, *year)
	}
	if text := query.Text(); text != "" {
		sql += ` AND (o.code ILIKE ? OR o.recipient_email ILIKE ?)`
		needle := "%" + text + "%"
		args = append(args, needle, needle)
	}

	sql += `
		GROUP BY o.id
		ORDER BY o.year DESC, o.sequence_number DESC, o.suffix ASC
		LIMIT ?`
	args = append(args, listOrdersLimit)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp                          ListOrdersQueryResponse
			id, fromWarehouse, toWarehouse uuid.UUID
			status                        int
		)

		err = rows.Scan(
			&id,
			&resp.Code,
			&resp.Year,
			&resp.SequenceNumber,
			&resp.Suffix,
			&status,
			&fromWarehouse,
			&toWarehouse,
			&resp.RecipientEmail,
			&resp.CreatedAt,
			&resp.SentAt,
			&resp.ClosedAt,
			&resp.ShippedAt,
			&resp.LineCount,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.FromWarehouse, err = kernel.UUIDFromBytes(fromWarehouse[:]); err != nil {
			return nil, err
		}
		if resp.ToWarehouse, err = kernel.UUIDFromBytes(toWarehouse[:]); err != nil {
			return nil, err
		}
		resp.State = order.Status(status).WireName()

		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
