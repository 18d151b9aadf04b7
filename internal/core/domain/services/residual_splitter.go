package services

import (
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/order"
	"transfers/internal/pkg/errs"
)

// SplitResult describes the outcome of moving the residual of a partially
// prepared line onto the next sibling order.
type SplitResult struct {
	// Target is the order that received the residual line. It may be a
	// freshly created sibling; TargetCreated distinguishes the two cases
	// so the caller knows whether to Add or Update it.
	Target        *order.Order
	TargetCreated bool

	// Line is the residual line created on the target.
	Line *order.Line

	// QtyDelivered is what the source line actually delivered; its requested
	// quantity was shrunk down to this value, making it Done in place.
	QtyDelivered int

	// QtyResidual is the unfulfilled remainder moved to the target.
	QtyResidual int
}

// ResidualSplitter is the domain service for back-office reconciliation after
// a partial close: it takes a strictly partial line on an already Closed
// order and moves the unfulfilled remainder onto the next sibling order,
// creating that sibling when it does not exist yet.
//
// This is distinct from the automatic split performed by OrderCloser, which
// only relocates lines that were never started at all.
type ResidualSplitter struct{}

// NewResidualSplitter creates a new ResidualSplitter instance.
func NewResidualSplitter() ResidualSplitter {
	return ResidualSplitter{}
}

// TargetSuffix returns the suffix of the sibling that receives the residual:
// 1 when the source is the family root, otherwise the source's suffix + 1.
func (ResidualSplitter) TargetSuffix(source *order.Order) int {
	if source.Suffix() == 0 {
		return 1
	}
	return source.Suffix() + 1
}

// Split moves the residual of lineID from the closed source order onto
// target. target is the sibling with TargetSuffix(source) fetched in the same
// transaction, or nil when no such sibling exists yet; newOrderID and
// newLineID are consumed for the created sibling and the residual line.
//
// Fails with an invalid-state error unless source is Closed, and with a
// conflict when the line is not strictly partial or the target sibling is
// itself already Closed. Nothing is mutated on failure.
func (s ResidualSplitter) Split(
	source *order.Order,
	lineID kernel.UUID,
	target *order.Order,
	newOrderID, newLineID kernel.UUID,
	now time.Time,
) (*SplitResult, error) {
	if err := source.Validate(); err != nil {
		return nil, err
	}
	if !source.IsClosed() {
		return nil, errs.NewInvalidStateError("splitResidual", source.Status().String())
	}

	line := source.LineByID(lineID)
	if line == nil || !line.OrderID().IsEqual(source.ID()) {
		return nil, errs.NewObjectNotFoundError("lineId", lineID.String())
	}
	productCode, description := line.ProductCode(), line.Description()

	created := false
	if target == nil {
		var err error
		target, err = source.NewSuccessor(newOrderID, s.TargetSuffix(source), now)
		if err != nil {
			return nil, err
		}
		created = true
	} else if target.IsClosed() {
		return nil, errs.NewConflictError("order " + target.Code() + " is already closed and cannot receive residual")
	}

	delivered, residual, err := source.ShrinkLineToPrepared(lineID, now)
	if err != nil {
		return nil, err
	}

	residualLine, err := target.AddResidualLine(newLineID, productCode, description, residual, now)
	if err != nil {
		return nil, err
	}

	return &SplitResult{
		Target:        target,
		TargetCreated: created,
		Line:          residualLine,
		QtyDelivered:  delivered,
		QtyResidual:   residual,
	}, nil
}
