package commands

import (
	"errors"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/guard"
)

var ErrDeleteLineCommandIsNotConstructed = errors.New(
	"DeleteLineCommand must be created via NewDeleteLineCommand constructor",
)

// DeleteLineCommand represents a request to remove a line from a Draft order.
type DeleteLineCommand struct { //nolint:recvcheck //using for validation
	lineID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteLineCommand creates a command to remove an order line.
func NewDeleteLineCommand(lineID kernel.UUID) (DeleteLineCommand, error) {
	cmd := DeleteLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setLineID(lineID); err != nil {
		return DeleteLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteLineCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLineCommandIsNotConstructed)
}

// LineID returns the line to remove.
func (c DeleteLineCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c *DeleteLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}
