// Package product models the catalog entries transfer orders reference.
// The catalog is maintained by separate import flows; the lifecycle engine
// only reads it to resolve a code into a description snapshot.
package product

import (
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/errs"
)

// Product is a catalog entry identified by its code. Orders never link to
// products by id; lines carry the code plus a description snapshot captured
// at add-time.
type Product struct {
	id          kernel.UUID
	code        string
	description string
	createdAt   time.Time

	isConstructed bool
}

// NewProduct creates a catalog entry.
func NewProduct(id kernel.UUID, code, description string, now time.Time) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	return &Product{
		id:            id,
		code:          code,
		description:   description,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreProduct reconstructs a catalog entry from persistence.
func RestoreProduct(id kernel.UUID, code, description string, createdAt time.Time) (*Product, error) {
	return NewProduct(id, code, description, createdAt)
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return errs.NewValueIsRequiredError("Product must be created via NewProduct")
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Code returns the product code scanned on labels and typed by staff.
func (p *Product) Code() string {
	return p.code
}

// Description returns the current catalog description.
func (p *Product) Description() string {
	return p.description
}

// CreatedAt returns when the entry was imported.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}
