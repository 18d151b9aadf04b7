package queries

import (
	"errors"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/guard"
)

var ErrListWarehousesQueryIsNotConstructed = errors.New(
	"ListWarehousesQuery must be created via NewListWarehousesQuery constructor",
)

// ListWarehousesQuery retrieves all warehouses for endpoint selection.
type ListWarehousesQuery struct {
	guard guard.ConstructorGuard
}

// NewListWarehousesQuery creates a parameterless warehouse listing query.
func NewListWarehousesQuery() ListWarehousesQuery {
	return ListWarehousesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrListWarehousesQueryIsNotConstructed)
}

// ListWarehousesQueryResponse is one warehouse row.
type ListWarehousesQueryResponse struct {
	ID   kernel.UUID
	Name string
}
