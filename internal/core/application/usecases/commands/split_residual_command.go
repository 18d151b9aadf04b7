package commands

import (
	"errors"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/guard"
)

var ErrSplitResidualCommandIsNotConstructed = errors.New(
	"SplitResidualCommand must be created via NewSplitResidualCommand constructor",
)

// SplitResidualCommand represents a back-office request to move the
// unfulfilled remainder of a partially prepared line from a closed order onto
// the next sibling order.
type SplitResidualCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	lineID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewSplitResidualCommand creates a command to split a residual line.
func NewSplitResidualCommand(orderID, lineID kernel.UUID) (SplitResidualCommand, error) {
	cmd := SplitResidualCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineID(lineID),
	); err != nil {
		return SplitResidualCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SplitResidualCommand) Validate() error {
	return c.guard.Validate(ErrSplitResidualCommandIsNotConstructed)
}

// OrderID returns the closed source order.
func (c SplitResidualCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineID returns the partially prepared line to split.
func (c SplitResidualCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c *SplitResidualCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SplitResidualCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}
