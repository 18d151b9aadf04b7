package queries

import (
	"errors"
	"strings"
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/errs"
	"transfers/internal/pkg/guard"
)

var ErrGetStockQueryIsNotConstructed = errors.New(
	"GetStockQuery must be created via NewGetStockQuery constructor",
)

// GetStockQuery retrieves the current ledger quantity of one product at one
// warehouse.
type GetStockQuery struct {
	productCode string
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStockQuery creates a query for one ledger cell.
func NewGetStockQuery(productCode string, warehouseID kernel.UUID) (GetStockQuery, error) {
	productCode = strings.TrimSpace(productCode)
	if productCode == "" {
		return GetStockQuery{}, errs.NewValueIsRequiredError("productCode")
	}
	if err := warehouseID.Validate(); err != nil {
		return GetStockQuery{}, err
	}

	return GetStockQuery{
		productCode: productCode,
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockQuery) Validate() error {
	return q.guard.Validate(ErrGetStockQueryIsNotConstructed)
}

// ProductCode returns the product being looked up.
func (q GetStockQuery) ProductCode() string {
	return q.productCode
}

// WarehouseID returns the warehouse being looked up.
func (q GetStockQuery) WarehouseID() kernel.UUID {
	return q.warehouseID
}

// GetStockQueryResponse is one ledger cell. A product that was never adjusted
// at the warehouse reads as quantity zero with no update timestamp.
type GetStockQueryResponse struct {
	ProductCode string
	WarehouseID kernel.UUID
	Quantity    int
	UpdatedAt   *time.Time
}
