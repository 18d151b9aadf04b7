package queries

import (
	"errors"
	"strings"
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/guard"
)

// shippedItemsDefaultLimit and shippedItemsMaxLimit bound the shipped-items
// history; the caller narrows with free text rather than paging.
const (
	shippedItemsDefaultLimit = 200
	shippedItemsMaxLimit     = 500
)

var ErrListShippedItemsQueryIsNotConstructed = errors.New(
	"ListShippedItemsQuery must be created via NewListShippedItemsQuery constructor",
)

// ListShippedItemsQuery retrieves the line history of shipped orders, with an
// optional free-text needle matched against product code, description
// snapshot and order code.
type ListShippedItemsQuery struct {
	text  string
	limit int

	guard guard.ConstructorGuard
}

// NewListShippedItemsQuery creates a shipped-items history query. text is
// optional; limit falls back to the default when non-positive and is capped.
func NewListShippedItemsQuery(text string, limit int) ListShippedItemsQuery {
	if limit <= 0 {
		limit = shippedItemsDefaultLimit
	}
	if limit > shippedItemsMaxLimit {
		limit = shippedItemsMaxLimit
	}

	return ListShippedItemsQuery{
		text:  strings.TrimSpace(text),
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListShippedItemsQuery) Validate() error {
	return q.guard.Validate(ErrListShippedItemsQueryIsNotConstructed)
}

// Text returns the free-text needle, empty when unfiltered.
func (q ListShippedItemsQuery) Text() string {
	return q.text
}

// Limit returns the row cap.
func (q ListShippedItemsQuery) Limit() int {
	return q.limit
}

// ListShippedItemsQueryResponse is one line of a shipped order. QtyShipped is
// the prepared quantity, the amount that actually left the warehouse.
type ListShippedItemsQueryResponse struct {
	LineID        kernel.UUID
	ProductCode   string
	Description   string
	QtyRequested  int
	QtyShipped    int
	OrderID       kernel.UUID
	OrderCode     string
	FromWarehouse string
	ToWarehouse   string
	ShippedAt     time.Time
}
