package queries

import (
	"context"
	"database/sql"
	"errors"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/order"
	"transfers/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order's detail view from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle fetches the order header and its lines, deriving per-line status and
// the aggregate preparation statistics in memory.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resp := GetOrderQueryResponse{}

	var (
		id, fromWarehouse, toWarehouse uuid.UUID
		status                         int
	)
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			year,
			sequence_number,
			suffix,
			status,
			from_warehouse,
			to_warehouse,
			recipient_email,
			created_at,
			sent_at,
			closed_at,
			shipped_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
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
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
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

	if err = h.loadLines(ctx, &resp, id); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (h GetOrderQueryHandler) loadLines(ctx context.Context, resp *GetOrderQueryResponse, orderID uuid.UUID) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_code,
			description,
			requested,
			prepared,
			note
		FROM order_lines
		WHERE order_id = ?
		ORDER BY created_at, id
	`, orderID).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	resp.Lines = make([]GetOrderLineResponse, 0)
	for rows.Next() {
		var (
			line   GetOrderLineResponse
			lineID uuid.UUID
		)

		err = rows.Scan(
			&lineID,
			&line.ProductCode,
			&line.Description,
			&line.Requested,
			&line.Prepared,
			&line.Note,
		)
		if err != nil {
			return err
		}

		if line.ID, err = kernel.UUIDFromBytes(lineID[:]); err != nil {
			return err
		}

		switch {
		case line.Prepared == 0:
			line.Status = order.NotStarted.String()
			resp.LinesNotStarted++
		case line.Prepared < line.Requested:
			line.Status = order.Partial.String()
			resp.LinesPartial++
		default:
			line.Status = order.Done.String()
			resp.LinesDone++
		}

		if residual := line.Requested - line.Prepared; residual > 0 {
			line.Residual = residual
		}

		resp.Lines = append(resp.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return err
	}

	resp.FullyPrepared = len(resp.Lines) > 0 && resp.LinesDone == len(resp.Lines)
	return nil
}
