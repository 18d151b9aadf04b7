package stock

import (
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/errs"
)

// Movement is one audit entry for a ledger adjustment: the quantity before
// and after the change. Movements are append-only; corrections produce new
// entries rather than edits.
type Movement struct {
	id          kernel.UUID
	productCode string
	warehouseID kernel.UUID
	qtyBefore   int
	qtyAfter    int
	createdAt   time.Time

	isConstructed bool
}

// NewMovement creates an audit entry for one adjustment.
func NewMovement(
	id kernel.UUID,
	productCode string,
	warehouseID kernel.UUID,
	qtyBefore, qtyAfter int,
	now time.Time,
) (*Movement, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if productCode == "" {
		return nil, errs.NewValueIsRequiredError("productCode")
	}
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	return &Movement{
		id:            id,
		productCode:   productCode,
		warehouseID:   warehouseID,
		qtyBefore:     qtyBefore,
		qtyAfter:      qtyAfter,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// Validate ensures the movement was created through the constructor.
func (m *Movement) Validate() error {
	if m == nil || !m.isConstructed {
		return errs.NewValueIsRequiredError("Movement must be created via NewMovement")
	}
	return nil
}

// ID returns the movement identifier.
func (m *Movement) ID() kernel.UUID {
	return m.id
}

// ProductCode returns the adjusted product.
func (m *Movement) ProductCode() string {
	return m.productCode
}

// WarehouseID returns the adjusted warehouse.
func (m *Movement) WarehouseID() kernel.UUID {
	return m.warehouseID
}

// QtyBefore returns the ledger quantity before the adjustment.
func (m *Movement) QtyBefore() int {
	return m.qtyBefore
}

// QtyAfter returns the ledger quantity after the adjustment.
func (m *Movement) QtyAfter() int {
	return m.qtyAfter
}

// Delta returns the applied change.
func (m *Movement) Delta() int {
	return m.qtyAfter - m.qtyBefore
}

// CreatedAt returns when the adjustment happened.
func (m *Movement) CreatedAt() time.Time {
	return m.createdAt
}
