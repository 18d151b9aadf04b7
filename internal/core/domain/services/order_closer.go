package services

import (
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/order"
	"transfers/internal/pkg/errs"
)

// CloseResult describes the outcome of closing a transfer order.
type CloseResult struct {
	// AlreadyClosed is true when the order was Closed before this call;
	// nothing was mutated in that case.
	AlreadyClosed bool

	// ClosedCode is the frozen code the order carries after closing.
	ClosedCode string

	// Successor is the sibling order created for untouched lines,
	// nil when every line had been started.
	Successor *order.Order

	// MovedLines is the number of lines relocated onto the successor.
	MovedLines int
}

// OrderCloser is the domain service implementing the closure algorithm:
// validate closability, freeze the order under its ".0" code, and fork the
// lines that were never started into a successor sibling order.
//
// Business rules:
//   - only Sent or InProgress orders with at least one line close
//   - partial closing is permitted; started lines keep their quantities
//   - the closed code is base+".0", falling back to base+".{suffix}.0" when
//     the plain form collides with an unrelated order
//   - the successor takes the smallest free suffix in the family and starts
//     in InProgress with preparation reset
//
// The caller runs Close inside one transaction together with persisting both
// orders, so concurrent preparation writes cannot interleave.
type OrderCloser struct{}

// NewOrderCloser creates a new OrderCloser instance.
func NewOrderCloser() OrderCloser {
	return OrderCloser{}
}

// Close executes the closure algorithm on o.
//
// successorID is consumed only when a successor is created. siblingSuffixes
// are the suffixes already in use within the family, fetched in the same
// transaction. closedCodeTaken reports whether base+".0" is already held by
// an unrelated order, which triggers the suffix fallback.
func (c OrderCloser) Close(
	o *order.Order,
	successorID kernel.UUID,
	siblingSuffixes []int,
	closedCodeTaken bool,
	now time.Time,
) (*CloseResult, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if o.IsClosed() {
		return &CloseResult{AlreadyClosed: true, ClosedCode: o.Code()}, nil
	}

	if !o.HasLines() {
		return nil, errs.NewInvalidStateError("close", "empty order")
	}

	closedCode := order.ClosedCode(o.BaseCode(), o.Suffix(), closedCodeTaken)
	if err := o.MarkClosed(closedCode, now); err != nil {
		return nil, err
	}

	untouched := o.DetachUntouchedLines()
	if len(untouched) == 0 {
		return &CloseResult{ClosedCode: o.Code()}, nil
	}

	suffix := order.NextFreeSuffix(siblingSuffixes)
	successor, err := o.NewSuccessor(successorID, suffix, now)
	if err != nil {
		return nil, err
	}

	successor.AdoptLines(untouched, now)
	return &CloseResult{
		ClosedCode: o.Code(),
		Successor:  successor,
		MovedLines: len(untouched),
	}, nil
}
