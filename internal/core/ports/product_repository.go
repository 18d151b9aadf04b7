package ports

import (
	"context"

	"transfers/internal/core/domain/model/product"
)

// ProductRepository is the read-side contract for the product catalog.
// The lifecycle engine only resolves codes; catalog maintenance lives in the
// import flows.
type ProductRepository interface {
	// GetByCode resolves a product code, or an object-not-found error.
	GetByCode(ctx context.Context, code string) (*product.Product, error)
}
