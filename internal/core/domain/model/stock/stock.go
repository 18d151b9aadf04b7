// Package stock models the current-quantity ledger keyed by product and
// warehouse. The ledger is adjusted by inventory operations unrelated to the
// order lifecycle; the engine never writes it when orders move.
package stock

import (
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/errs"
)

// Level is the ledger entry for one product in one warehouse. The quantity
// may go negative: the ledger records reality as reported by deltas, not a
// reservation system.
type Level struct {
	productCode string
	warehouseID kernel.UUID
	quantity    int
	updatedAt   time.Time

	isConstructed bool
}

// NewLevel creates a ledger entry.
func NewLevel(productCode string, warehouseID kernel.UUID, quantity int, now time.Time) (*Level, error) {
	if productCode == "" {
		return nil, errs.NewValueIsRequiredError("productCode")
	}
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	return &Level{
		productCode:   productCode,
		warehouseID:   warehouseID,
		quantity:      quantity,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreLevel reconstructs a ledger entry from persistence.
func RestoreLevel(productCode string, warehouseID kernel.UUID, quantity int, updatedAt time.Time) (*Level, error) {
	return NewLevel(productCode, warehouseID, quantity, updatedAt)
}

// Validate ensures the level was created through a constructor.
func (l *Level) Validate() error {
	if l == nil || !l.isConstructed {
		return errs.NewValueIsRequiredError("Level must be created via NewLevel")
	}
	return nil
}

// ProductCode returns the product the entry tracks.
func (l *Level) ProductCode() string {
	return l.productCode
}

// WarehouseID returns the warehouse the entry tracks.
func (l *Level) WarehouseID() kernel.UUID {
	return l.warehouseID
}

// Quantity returns the current quantity.
func (l *Level) Quantity() int {
	return l.quantity
}

// UpdatedAt returns when the entry last changed.
func (l *Level) UpdatedAt() time.Time {
	return l.updatedAt
}

// Adjust applies a signed delta to the current quantity.
func (l *Level) Adjust(delta int, now time.Time) {
	l.quantity += delta
	l.updatedAt = now
}
