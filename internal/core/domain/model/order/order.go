package order

import (
	"errors"
	"fmt"
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrSameWarehouse is returned when source and destination coincide.
	ErrSameWarehouse = errors.New("source and destination warehouse must differ")
)

// AddLineMode reports whether an add merged into an existing line or created
// a new one.
type AddLineMode string

const (
	// AddLineModeSum means the quantity was added to an existing line for the
	// same product.
	AddLineModeSum AddLineMode = "sum"

	// AddLineModeNew means a new line was created.
	AddLineModeNew AddLineMode = "new"
)

// Order is the transfer-order aggregate root: a request to move product
// quantities from one warehouse to another, tracked from creation through
// partial fulfillment to closure and shipment.
//
// Order maintains these invariants:
//   - (year, sequenceNumber) is allocated once at creation and never changes
//   - suffix values within a family are unique; 0 denotes the root order
//   - the code is derived from year, sequence and suffix, and is frozen with
//     a ".0" marker on close
//   - source and destination warehouses are distinct and immutable
//   - at most one line exists per product code (the accumulation rule)
//   - status transitions follow the Status state machine
//
// All mutation goes through validated methods; the struct uses private fields
// to keep the invariants enforceable.
type Order struct {
	id             kernel.UUID
	year           int
	sequence       int
	suffix         int
	code           string
	status         Status
	fromWarehouse  kernel.UUID
	toWarehouse    kernel.UUID
	recipientEmail string
	createdAt      time.Time
	sentAt         *time.Time
	closedAt       *time.Time
	shippedAt      *time.Time
	lines          []*Line

	isConstructed bool
}

// NewOrder creates a root order (suffix 0) in Draft status with zero lines.
// The (year, sequence) pair must come from the sequencer inside the same
// transaction that persists the order.
func NewOrder(id kernel.UUID, year, sequence int, fromWarehouse, toWarehouse kernel.UUID, now time.Time) (*Order, error) {
	o := &Order{
		status:        Draft,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setFamily(year, sequence, 0),
		o.setWarehouses(fromWarehouse, toWarehouse),
	); err != nil {
		return nil, err
	}

	o.code = FormatCode(year, sequence, 0)
	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its lines.
// The stored code is trusted as-is: closed orders carry the frozen ".0" form
// that FormatCode alone cannot reproduce.
func RestoreOrder(
	id kernel.UUID,
	year, sequence, suffix int,
	code string,
	status Status,
	fromWarehouse, toWarehouse kernel.UUID,
	recipientEmail string,
	createdAt time.Time,
	sentAt, closedAt, shippedAt *time.Time,
	lines []*Line,
) (*Order, error) {
	o := &Order{
		recipientEmail: recipientEmail,
		createdAt:      createdAt,
		sentAt:         sentAt,
		closedAt:       closedAt,
		shippedAt:      shippedAt,
		lines:          lines,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setFamily(year, sequence, suffix),
		o.setWarehouses(fromWarehouse, toWarehouse),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	o.code = code
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Called when reconstructing orders from persistence and before writes.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Year returns the calendar year the sequence number was allocated in.
func (o *Order) Year() int {
	return o.year
}

// SequenceNumber returns the per-year sequence number.
func (o *Order) SequenceNumber() int {
	return o.sequence
}

// Suffix returns the sibling suffix; 0 denotes the root order of a family.
func (o *Order) Suffix() int {
	return o.suffix
}

// Code returns the human-readable order code.
func (o *Order) Code() string {
	return o.code
}

// BaseCode returns the family base shared by all siblings, with any closing
// or suffix decoration stripped.
func (o *Order) BaseCode() string {
	return BaseCode(o.code)
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// FromWarehouseID returns the source warehouse.
func (o *Order) FromWarehouseID() kernel.UUID {
	return o.fromWarehouse
}

// ToWarehouseID returns the destination warehouse.
func (o *Order) ToWarehouseID() kernel.UUID {
	return o.toWarehouse
}

// RecipientEmail returns the last address an order document was sent to,
// empty if the order was never sent.
func (o *Order) RecipientEmail() string {
	return o.recipientEmail
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// SentAt returns when the order document was last sent, nil if never.
func (o *Order) SentAt() *time.Time {
	return o.sentAt
}

// ClosedAt returns when the order was closed, nil while open.
func (o *Order) ClosedAt() *time.Time {
	return o.closedAt
}

// ShippedAt returns when the closed order was marked shipped, nil if not yet.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// Lines returns the order's line items in insertion order.
// The slice is shared; callers must not modify it.
func (o *Order) Lines() []*Line {
	return o.lines
}

// HasLines reports whether the order carries at least one line.
func (o *Order) HasLines() bool {
	return len(o.lines) > 0
}

// LineByID finds a line by identifier, nil if absent.
func (o *Order) LineByID(lineID kernel.UUID) *Line {
	for _, l := range o.lines {
		if l.ID().IsEqual(lineID) {
			return l
		}
	}
	return nil
}

// LineByProduct finds the single line for a product code, nil if absent.
func (o *Order) LineByProduct(productCode string) *Line {
	for _, l := range o.lines {
		if l.ProductCode() == productCode {
			return l
		}
	}
	return nil
}

// AddLine adds qty of a product to the order, merging into the existing line
// for that product when one exists ("sum" mode) or creating a new line with
// the given description snapshot ("new" mode). lineID is only consumed in
// "new" mode.
//
// Fails with an invalid-state error unless the order is Draft.
func (o *Order) AddLine(lineID kernel.UUID, productCode, description string, qty int, now time.Time) (AddLineMode, *Line, error) {
	if !o.status.CanEditLines() {
		return "", nil, errs.NewInvalidStateError("addLine", o.status.String())
	}
	if qty <= 0 {
		return "", nil, errs.NewValueIsInvalidErrorWithCause("qty", fmt.Errorf("%d is not greater than 0", qty))
	}

	if existing := o.LineByProduct(productCode); existing != nil {
		existing.addRequested(qty, now)
		return AddLineModeSum, existing, nil
	}

	line, err := NewLine(lineID, o.id, productCode, description, qty, now)
	if err != nil {
		return "", nil, err
	}

	o.lines = append(o.lines, line)
	return AddLineModeNew, line, nil
}

// UpdateLineQty replaces the requested quantity of a line.
// Fails unless the order is Draft and qty is positive.
func (o *Order) UpdateLineQty(lineID kernel.UUID, qty int, now time.Time) (*Line, error) {
	if !o.status.CanEditLines() {
		return nil, errs.NewInvalidStateError("updateLineQty", o.status.String())
	}
	if qty <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("qty", fmt.Errorf("%d is not greater than 0", qty))
	}

	line := o.LineByID(lineID)
	if line == nil {
		return nil, errs.NewObjectNotFoundError("lineId", lineID.String())
	}

	line.setRequested(qty, now)
	return line, nil
}

// RemoveLine deletes a line. Fails unless the order is Draft.
func (o *Order) RemoveLine(lineID kernel.UUID) error {
	if !o.status.CanEditLines() {
		return errs.NewInvalidStateError("deleteLine", o.status.String())
	}

	for i, l := range o.lines {
		if l.ID().IsEqual(lineID) {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("lineId", lineID.String())
}

// SetLineNote updates the free-text note of a line. Allowed in every order
// state, including Closed.
func (o *Order) SetLineNote(lineID kernel.UUID, note string, now time.Time) (*Line, error) {
	line := o.LineByID(lineID)
	if line == nil {
		return nil, errs.NewObjectNotFoundError("lineId", lineID.String())
	}

	line.setNote(note, now)
	return line, nil
}

// MarkSent records a document delivery to the given address and moves a Draft
// order to Sent. Re-sending from any non-Draft state updates the timestamp
// and address without changing the lifecycle state.
func (o *Order) MarkSent(email string, now time.Time) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !o.HasLines() {
		return errs.NewValueIsRequiredError("lines")
	}

	newStatus, err := o.status.Send()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.recipientEmail = email
	o.sentAt = &now
	return nil
}

// AddPrepared increments the prepared quantity of the line matching
// productCode, never clamping to the requested quantity. If the order was
// Sent it atomically advances to InProgress; the returned flag reports that
// transition.
func (o *Order) AddPrepared(productCode string, delta int, now time.Time) (*Line, bool, error) {
	if !o.status.CanPrepare() {
		return nil, false, errs.NewInvalidStateError("addPrepared", o.status.String())
	}
	if delta <= 0 {
		return nil, false, errs.NewValueIsInvalidErrorWithCause("delta", fmt.Errorf("%d is not greater than 0", delta))
	}

	line := o.LineByProduct(productCode)
	if line == nil {
		return nil, false, errs.NewObjectNotFoundError("productCode", productCode)
	}

	newStatus, err := o.status.StartPreparation()
	if err != nil {
		return nil, false, err
	}

	transitioned := o.status != newStatus
	o.status = newStatus
	line.addPrepared(delta, now)
	return line, transitioned, nil
}

// IsClosed reports whether the order reached the Closed state.
func (o *Order) IsClosed() bool {
	return o.status == Closed
}

// MarkClosed freezes the order under the given closed code and stamps
// closedAt. Partial closing is permitted; completeness is not checked here.
// Corrupt (negative) prepared quantities are normalized to zero first.
func (o *Order) MarkClosed(closedCode string, now time.Time) error {
	newStatus, err := o.status.Close()
	if err != nil {
		return err
	}
	if closedCode == "" {
		return errs.NewValueIsRequiredError("closedCode")
	}

	for _, l := range o.lines {
		l.normalizePrepared()
	}

	o.status = newStatus
	o.code = closedCode
	o.closedAt = &now
	return nil
}

// DetachUntouchedLines removes and returns every line with zero prepared
// quantity, for relocation onto a successor order. Only meaningful right
// after MarkClosed, inside the same transaction.
func (o *Order) DetachUntouchedLines() []*Line {
	var untouched, started []*Line
	for _, l := range o.lines {
		if l.PreparedQty() == 0 {
			untouched = append(untouched, l)
		} else {
			started = append(started, l)
		}
	}

	o.lines = started
	return untouched
}

// NewSuccessor creates the sibling order that receives relocated work: same
// family and warehouses, the given free suffix, state InProgress (it is
// already approved, waiting for preparation), no send or close history.
func (o *Order) NewSuccessor(id kernel.UUID, suffix int, now time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if suffix <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("suffix", fmt.Errorf("%d is not greater than 0", suffix))
	}

	successor := &Order{
		id:            id,
		year:          o.year,
		sequence:      o.sequence,
		suffix:        suffix,
		code:          fmt.Sprintf("%s.%d", o.BaseCode(), suffix),
		status:        InProgress,
		fromWarehouse: o.fromWarehouse,
		toWarehouse:   o.toWarehouse,
		createdAt:     now,
		isConstructed: true,
	}
	return successor, nil
}

// AdoptLines re-parents detached lines onto this order, resetting their
// prepared quantity.
func (o *Order) AdoptLines(lines []*Line, now time.Time) {
	for _, l := range lines {
		l.reparent(o.id, now)
		o.lines = append(o.lines, l)
	}
}

// AddResidualLine creates a fresh line carrying the unfulfilled remainder of
// a split. The receiving order must not be Closed.
func (o *Order) AddResidualLine(lineID kernel.UUID, productCode, description string, qty int, now time.Time) (*Line, error) {
	if o.IsClosed() {
		return nil, errs.NewConflictError(fmt.Sprintf("order %s is already closed and cannot receive residual", o.code))
	}

	line, err := NewLine(lineID, o.id, productCode, description, qty, now)
	if err != nil {
		return nil, err
	}

	o.lines = append(o.lines, line)
	return line, nil
}

// ShrinkLineToPrepared reduces the requested quantity of a strictly partial
// line down to its prepared quantity, making it Done in place while keeping
// its delivered history. Returns the delivered and residual quantities.
// Only valid on Closed orders; non-partial lines yield a conflict.
func (o *Order) ShrinkLineToPrepared(lineID kernel.UUID, now time.Time) (delivered, residual int, err error) {
	if !o.IsClosed() {
		return 0, 0, errs.NewInvalidStateError("splitResidual", o.status.String())
	}

	line := o.LineByID(lineID)
	if line == nil {
		return 0, 0, errs.NewObjectNotFoundError("lineId", lineID.String())
	}

	prepared := line.PreparedQty()
	requested := line.RequestedQty()
	if requested <= 0 {
		return 0, 0, errs.NewConflictError("line has no valid requested quantity")
	}
	if prepared <= 0 || prepared >= requested {
		return 0, 0, errs.NewConflictError("line is not strictly partial")
	}

	residual = requested - prepared
	if residual <= 0 {
		return 0, 0, errs.NewConflictError("residual is not positive")
	}

	line.setRequested(prepared, now)
	return prepared, residual, nil
}

// MarkShipped stamps a closed order as shipped. Idempotent: a second call
// reports already=true and leaves shippedAt untouched.
func (o *Order) MarkShipped(now time.Time) (already bool, err error) {
	if !o.IsClosed() {
		return false, errs.NewInvalidStateError("markShipped", o.status.String())
	}

	if o.shippedAt != nil {
		return true, nil
	}

	o.shippedAt = &now
	return false, nil
}

// CanDelete reports whether the order may be hard-deleted: Draft orders
// always, Closed orders only when they carry no send history.
func (o *Order) CanDelete() bool {
	if o.status == Draft {
		return true
	}
	return o.status == Closed && o.sentAt == nil && o.recipientEmail == ""
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setFamily(year, sequence, suffix int) error {
	if year <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("year", fmt.Errorf("%d is not greater than 0", year))
	}
	if sequence <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("sequenceNumber", fmt.Errorf("%d is not greater than 0", sequence))
	}
	if suffix < 0 {
		return errs.NewValueIsInvalidErrorWithCause("suffix", fmt.Errorf("%d is negative", suffix))
	}

	o.year = year
	o.sequence = sequence
	o.suffix = suffix
	return nil
}

func (o *Order) setWarehouses(from, to kernel.UUID) error {
	if err := from.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}
	if from.IsEqual(to) {
		return ErrSameWarehouse
	}

	o.fromWarehouse = from
	o.toWarehouse = to
	return nil
}
