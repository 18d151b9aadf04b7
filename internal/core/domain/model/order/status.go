package order

import (
	"fmt"
	"strings"

	"transfers/internal/pkg/errs"
)

// Status represents the lifecycle state of a transfer order.
// It implements a state machine with asymmetric transition rules that every
// mutating operation consults before touching the order.
//
// State transitions:
//
//	Draft --(send)--> Sent --(first prepare)--> InProgress
//	                   |                            |
//	                   +--------(close)-------------+--> Closed
//
// Closed is terminal for quantity mutation; shipping only stamps a timestamp
// on an already closed order. Draft is the only state in which lines may be
// added, edited or deleted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status: lines are freely added, edited and removed.
	Draft

	// Sent indicates the order document was delivered to the source warehouse.
	// Requested quantities are frozen; only prepared quantities may grow.
	Sent

	// InProgress indicates preparation has started. Entered automatically on
	// the first prepared-quantity increment of a Sent order.
	InProgress

	// Closed is the terminal state for quantity mutation. Closing may fork a
	// successor order for lines that were never started.
	Closed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Draft:      "Draft",
		Sent:       "Sent",
		InProgress: "InProgress",
		Closed:     "Closed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:      "Draft",
		Sent:       "Sent",
		InProgress: "InProgress",
		Closed:     "Closed",
	}
}

func getStatusWireNames() map[Status]string {
	//nolint:exhaustive // Unknown has no wire representation
	return map[Status]string{
		Draft:      "DRAFT",
		Sent:       "SENT",
		InProgress: "IN_PROGRESS",
		Closed:     "CLOSED",
	}
}

// WireName returns the uppercase name the API exchanges for this status.
func (s Status) WireName() string {
	if str, ok := getStatusWireNames()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a wire name ("DRAFT", "SENT", "IN_PROGRESS",
// "CLOSED") into a Status. Parsing is case-insensitive.
func StatusFromString(value string) (Status, error) {
	for status, name := range getStatusWireNames() {
		if strings.EqualFold(value, name) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a valid state", value))
}

// Validate checks if the Status value is one of the four lifecycle states.
// Unknown (0) and any other values are invalid. Used when reconstructing
// orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanEditLines reports whether requested quantities may be edited and lines
// added or deleted. Only Draft orders are editable.
func (s Status) CanEditLines() bool {
	return s == Draft
}

// CanPrepare reports whether prepared-quantity increments are accepted.
func (s Status) CanPrepare() bool {
	return s == Sent || s == InProgress
}

// Send transitions the status to Sent.
//
// Valid transitions:
//   - Draft -> Sent (first document delivery)
//   - Sent, InProgress, Closed -> unchanged (re-sending a document never
//     moves the lifecycle)
//
// Returns the resulting status, or an error for invalid values.
func (s Status) Send() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	if s == Draft {
		return Sent, nil
	}
	return s, nil
}

// StartPreparation transitions the status to InProgress on the first
// prepared-quantity write.
//
// Valid transitions:
//   - Sent -> InProgress
//   - InProgress -> InProgress (subsequent increments are a no-op on state)
//
// Any other status is rejected: this is the only path by which Sent advances.
func (s Status) StartPreparation() (Status, error) {
	if !s.CanPrepare() {
		return 0, errs.NewInvalidStateError("startPreparation", s.String())
	}

	return InProgress, nil
}

// Close transitions the status to Closed.
//
// Valid transitions:
//   - Sent -> Closed (closing an untouched order)
//   - InProgress -> Closed (partial closing is permitted)
//
// Draft orders cannot be closed; Closed orders stay closed (callers treat a
// repeat close as idempotent before reaching this method).
func (s Status) Close() (Status, error) {
	if s != Sent && s != InProgress {
		return 0, errs.NewInvalidStateError("close", s.String())
	}

	return Closed, nil
}
