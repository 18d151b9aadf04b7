package ports

import (
	"context"
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for transfer-order
// aggregates, including their line items. Write methods persist the whole
// aggregate; line rows follow the order they belong to.
type OrderRepository interface {
	// Add persists a new order aggregate and its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, reconciling
	// added, changed and removed lines.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByLineID retrieves the order owning the given line.
	// Line-keyed operations load the whole aggregate through this.
	GetByLineID(ctx context.Context, lineID kernel.UUID) (*order.Order, error)

	// GetByFamily retrieves the sibling with the exact (year, sequence,
	// suffix) key, for the residual-split upsert.
	GetByFamily(ctx context.Context, year, sequence, suffix int) (*order.Order, error)

	// NextSequenceNumber allocates max(sequence)+1 for the year. Must run in
	// the same transaction as the order insert; the unique family index
	// turns allocation races into a retryable conflict.
	NextSequenceNumber(ctx context.Context, year int) (int, error)

	// SiblingSuffixes returns the suffixes in use within a family.
	SiblingSuffixes(ctx context.Context, year, sequence int) ([]int, error)

	// CodeInUse reports whether another order already holds the given code.
	CodeInUse(ctx context.Context, code string, excludeID kernel.UUID) (bool, error)

	// Delete removes an order and its lines. Deletability rules are the
	// aggregate's business; the repository just executes.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetStaleDrafts retrieves Draft orders created before the given instant,
	// for the draft-reaper job.
	GetStaleDrafts(ctx context.Context, before time.Time) ([]*order.Order, error)
}
