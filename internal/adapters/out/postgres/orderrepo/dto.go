// Package orderrepo provides data transfer objects and mapping functions for
// transfer-order persistence. The order aggregate and its lines map to two
// tables; line rows always travel with the order that owns them.
package orderrepo

import (
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The (year, sequence, suffix) family key and the code carry unique indexes;
// both invariants are enforced at the store level so allocation races surface
// as constraint violations instead of silent duplicates.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Year           int       `gorm:"uniqueIndex:idx_order_family"`
	SequenceNumber int       `gorm:"uniqueIndex:idx_order_family"`
	Suffix         int       `gorm:"uniqueIndex:idx_order_family"`
	Code           string    `gorm:"uniqueIndex"`
	Status         int       `gorm:"index"`
	FromWarehouse  uuid.UUID `gorm:"type:uuid"`
	ToWarehouse    uuid.UUID `gorm:"type:uuid"`
	RecipientEmail string
	CreatedAt      time.Time `gorm:"index"`
	SentAt         *time.Time
	ClosedAt       *time.Time
	ShippedAt      *time.Time
	Lines          []LineDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one order line row.
type LineDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductCode string    `gorm:"index"`
	Description string
	Requested   int
	Prepared    int
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for line entities.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, lineFromDomain(line))
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		Year:           aggregate.Year(),
		SequenceNumber: aggregate.SequenceNumber(),
		Suffix:         aggregate.Suffix(),
		Code:           aggregate.Code(),
		Status:         int(aggregate.Status()),
		FromWarehouse:  aggregate.FromWarehouseID().Bytes(),
		ToWarehouse:    aggregate.ToWarehouseID().Bytes(),
		RecipientEmail: aggregate.RecipientEmail(),
		CreatedAt:      aggregate.CreatedAt(),
		SentAt:         aggregate.SentAt(),
		ClosedAt:       aggregate.ClosedAt(),
		ShippedAt:      aggregate.ShippedAt(),
		Lines:          lines,
	}
}

func lineFromDomain(line *order.Line) LineDTO {
	return LineDTO{
		ID:          line.ID().Bytes(),
		OrderID:     line.OrderID().Bytes(),
		ProductCode: line.ProductCode(),
		Description: line.Description(),
		Requested:   line.RequestedQty(),
		Prepared:    line.PreparedQty(),
		Note:        line.Note(),
		CreatedAt:   line.CreatedAt(),
		UpdatedAt:   line.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order aggregate, reconstructing the
// lines through RestoreLine so invariants are re-checked on load.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	fromWarehouse, err := kernel.UUIDFromBytes(dto.FromWarehouse[:])
	if err != nil {
		return nil, err
	}

	toWarehouse, err := kernel.UUIDFromBytes(dto.ToWarehouse[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		dto.Year, dto.SequenceNumber, dto.Suffix,
		dto.Code,
		order.Status(dto.Status),
		fromWarehouse, toWarehouse,
		dto.RecipientEmail,
		dto.CreatedAt,
		dto.SentAt, dto.ClosedAt, dto.ShippedAt,
		lines,
	)
}

func lineToDomain(dto LineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(
		id, orderID,
		dto.ProductCode, dto.Description,
		dto.Requested, dto.Prepared,
		dto.Note,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
