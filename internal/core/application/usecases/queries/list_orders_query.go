// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the database directly and return flat response shapes;
// they never load domain aggregates or mutate state.
package queries

import (
	"errors"
	"strings"
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/order"
	"transfers/internal/pkg/guard"
)

// listOrdersLimit caps every listing; clients narrow with filters instead of
// paging through the full history.
const listOrdersLimit = 200

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrUnknownStateFilter = errors.New("unknown state filter")
	ErrYearFilterInvalid  = errors.New("year filter is out of range")
)

// ListOrdersQuery retrieves orders matching an optional filter set: lifecycle
// state, year, and a free-text needle matched against code and recipient.
type ListOrdersQuery struct {
	state *order.Status
	year  *int
	text  string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an order listing query. state and year are
// optional; zero values mean "no filter". text is trimmed and matched
// case-insensitively.
func NewListOrdersQuery(state string, year int, text string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
		text:  strings.TrimSpace(text),
	}

	if state != "" {
		parsed, err := order.StatusFromString(state)
		if err != nil {
			return ListOrdersQuery{}, errors.Join(ErrUnknownStateFilter, err)
		}
		q.state = &parsed
	}

	if year != 0 {
		if year < 2000 || year > 2200 {
			return ListOrdersQuery{}, ErrYearFilterInvalid
		}
		q.year = &year
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// State returns the state filter, nil when unfiltered.
func (q ListOrdersQuery) State() *order.Status {
	return q.state
}

// Year returns the year filter, nil when unfiltered.
func (q ListOrdersQuery) Year() *int {
	return q.year
}

// Text returns the free-text needle, empty when unfiltered.
func (q ListOrdersQuery) Text() string {
	return q.text
}

// ListOrdersQueryResponse is one row of the order listing.
type ListOrdersQueryResponse struct {
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
	LineCount      int
}
