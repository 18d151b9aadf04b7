package order

import (
	"fmt"
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/errs"
)

// LineStatus is the derived preparation state of a single line.
type LineStatus int

const (
	// NotStarted means nothing has been prepared yet (preparedQty == 0).
	NotStarted LineStatus = iota

	// Partial means preparation started but the request is not covered
	// (0 < preparedQty < requestedQty).
	Partial

	// Done means the request is covered (preparedQty >= requestedQty).
	// Over-preparation counts as Done and is never clamped away.
	Done
)

// String returns the wire name of the line status.
func (s LineStatus) String() string {
	switch s {
	case Partial:
		return "PARTIAL"
	case Done:
		return "DONE"
	default:
		return "NOT_STARTED"
	}
}

// Line is one product entry on a transfer order, owned exclusively by its
// order. The requested quantity is mutable only while the order is Draft; the
// prepared quantity only grows, and may legitimately exceed the requested
// quantity. The note is writable in every order state, including Closed.
type Line struct {
	id          kernel.UUID
	orderID     kernel.UUID
	productCode string
	description string
	requested   int
	prepared    int
	note        string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewLine creates a line with the description snapshot captured at add-time.
// The snapshot is never re-synced with the catalog afterwards.
func NewLine(id, orderID kernel.UUID, productCode, description string, qty int, now time.Time) (*Line, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if productCode == "" {
		return nil, errs.NewValueIsRequiredError("productCode")
	}
	if qty <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("qty", fmt.Errorf("%d is not greater than 0", qty))
	}

	return &Line{
		id:          id,
		orderID:     orderID,
		productCode: productCode,
		description: description,
		requested:   qty,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// RestoreLine reconstructs a line from persistence without re-running
// creation rules. Stored quantities are taken as-is; closure normalizes
// corrupt prepared values when it matters.
func RestoreLine(
	id, orderID kernel.UUID,
	productCode, description string,
	requested, prepared int,
	note string,
	createdAt, updatedAt time.Time,
) (*Line, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if productCode == "" {
		return nil, errs.NewValueIsRequiredError("productCode")
	}

	return &Line{
		id:          id,
		orderID:     orderID,
		productCode: productCode,
		description: description,
		requested:   requested,
		prepared:    prepared,
		note:        note,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// OrderID returns the identifier of the owning order.
func (l *Line) OrderID() kernel.UUID {
	return l.orderID
}

// ProductCode returns the product this line requests.
func (l *Line) ProductCode() string {
	return l.productCode
}

// Description returns the catalog description snapshot taken at add-time.
func (l *Line) Description() string {
	return l.description
}

// RequestedQty returns the requested quantity.
func (l *Line) RequestedQty() int {
	return l.requested
}

// PreparedQty returns the prepared quantity. It is never clamped to the
// requested quantity.
func (l *Line) PreparedQty() int {
	return l.prepared
}

// Note returns the free-text note.
func (l *Line) Note() string {
	return l.note
}

// CreatedAt returns when the line was added.
func (l *Line) CreatedAt() time.Time {
	return l.createdAt
}

// UpdatedAt returns when the line was last modified.
func (l *Line) UpdatedAt() time.Time {
	return l.updatedAt
}

// Status derives the preparation state from the two quantities.
func (l *Line) Status() LineStatus {
	switch {
	case l.prepared <= 0:
		return NotStarted
	case l.prepared < l.requested:
		return Partial
	default:
		return Done
	}
}

// Residual returns the unfulfilled remainder of the request. Negative values
// (over-preparation) are reported as zero.
func (l *Line) Residual() int {
	if r := l.requested - l.prepared; r > 0 {
		return r
	}
	return 0
}

func (l *Line) addRequested(qty int, now time.Time) {
	l.requested += qty
	l.updatedAt = now
}

func (l *Line) setRequested(qty int, now time.Time) {
	l.requested = qty
	l.updatedAt = now
}

func (l *Line) addPrepared(delta int, now time.Time) {
	l.prepared += delta
	l.updatedAt = now
}

func (l *Line) setNote(note string, now time.Time) {
	l.note = note
	l.updatedAt = now
}

// normalizePrepared resets a corrupt (negative) prepared quantity to zero.
// Called by closure before partitioning lines.
func (l *Line) normalizePrepared() {
	if l.prepared < 0 {
		l.prepared = 0
	}
}

// reparent moves the line onto another order, resetting preparation.
// Only untouched lines are relocated by closure, so the reset is a no-op
// in practice.
func (l *Line) reparent(orderID kernel.UUID, now time.Time) {
	l.orderID = orderID
	l.prepared = 0
	l.updatedAt = now
}
