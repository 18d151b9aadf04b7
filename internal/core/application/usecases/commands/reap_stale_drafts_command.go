package commands

import (
	"time"

	"transfers/internal/pkg/errs"
)

// ErrReapStaleDraftsCommandIsNotConstructed indicates that a
// ReapStaleDraftsCommand was not created via its constructor.
var ErrReapStaleDraftsCommandIsNotConstructed = errs.NewValueIsRequiredError(
	"ReapStaleDrafts command must be created via NewReapStaleDraftsCommand")

// ErrMaxAgeIsInvalid indicates a non-positive draft age threshold.
var ErrMaxAgeIsInvalid = errs.NewValueIsInvalidError("maxAge must be greater than 0")

// ReapStaleDraftsCommand requests deletion of Draft orders older than the
// given age.
type ReapStaleDraftsCommand struct {
	maxAge time.Duration

	isConstructed bool
}

// NewReapStaleDraftsCommand creates a validated ReapStaleDraftsCommand.
func NewReapStaleDraftsCommand(maxAge time.Duration) (ReapStaleDraftsCommand, error) {
	if maxAge <= 0 {
		return ReapStaleDraftsCommand{}, ErrMaxAgeIsInvalid
	}

	return ReapStaleDraftsCommand{
		maxAge: maxAge,

		isConstructed: true,
	}, nil
}

// MaxAge returns the age past which a Draft order is deleted.
func (c ReapStaleDraftsCommand) MaxAge() time.Duration {
	return c.maxAge
}

// Validate returns an error when the command was not properly constructed.
func (c ReapStaleDraftsCommand) Validate() error {
	if !c.isConstructed {
		return ErrReapStaleDraftsCommandIsNotConstructed
	}
	return nil
}
