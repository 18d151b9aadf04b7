package queries

import (
	"errors"
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its lines and preparation statistics.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's detail view.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderLineResponse is one line of the detail view.
type GetOrderLineResponse struct {
	ID          kernel.UUID
	ProductCode string
	Description string
	Requested   int
	Prepared    int
	Residual    int
	Status      string
	Note        string
}

// GetOrderQueryResponse is the order detail view: the order header, its
// lines, and per-status line counts for the preparation dashboard.
type GetOrderQueryResponse struct {
	ID             kernel.UUID
	Code           string
	Year           int
	SequenceNumber int
	Suffix         int
	State          string
	FromWarehouse  kernel.UUID
	ToWarehouse    kernel.UUID
	RecipientEmail string
	CreatedAt      time.Time
	SentAt         *time.Time
	ClosedAt       *time.Time
	ShippedAt      *time.Time
	Lines          []GetOrderLineResponse

	LinesDone       int
	LinesPartial    int
	LinesNotStarted int
	FullyPrepared   bool
}
