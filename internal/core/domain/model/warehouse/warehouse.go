// Package warehouse models the physical locations transfer orders move
// product between. Warehouses are reference data; the lifecycle engine reads
// them to validate order endpoints and render names.
package warehouse

import (
	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/errs"
)

// Warehouse is a named physical location.
type Warehouse struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewWarehouse creates a warehouse.
func NewWarehouse(id kernel.UUID, name string) (*Warehouse, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Warehouse{id: id, name: name, isConstructed: true}, nil
}

// RestoreWarehouse reconstructs a warehouse from persistence.
func RestoreWarehouse(id kernel.UUID, name string) (*Warehouse, error) {
	return NewWarehouse(id, name)
}

// Validate ensures the warehouse was created through a constructor.
func (w *Warehouse) Validate() error {
	if w == nil || !w.isConstructed {
		return errs.NewValueIsRequiredError("Warehouse must be created via NewWarehouse")
	}
	return nil
}

// ID returns the warehouse's unique identifier.
func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

// Name returns the display name.
func (w *Warehouse) Name() string {
	return w.name
}
