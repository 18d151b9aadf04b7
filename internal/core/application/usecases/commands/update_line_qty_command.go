package commands

import (
	"errors"
	"fmt"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/guard"
)

var ErrUpdateLineQtyCommandIsNotConstructed = errors.New(
	"UpdateLineQtyCommand must be created via NewUpdateLineQtyCommand constructor",
)

// UpdateLineQtyCommand represents a request to overwrite the requested
// quantity of a line. Only lines of Draft orders are editable.
type UpdateLineQtyCommand struct { //nolint:recvcheck //using for validation
	lineID kernel.UUID
	qty    int

	guard guard.ConstructorGuard
}

// NewUpdateLineQtyCommand creates a command to overwrite a line quantity.
func NewUpdateLineQtyCommand(lineID kernel.UUID, qty int) (UpdateLineQtyCommand, error) {
	cmd := UpdateLineQtyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLineID(lineID),
		cmd.setQty(qty),
	); err != nil {
		return UpdateLineQtyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLineQtyCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLineQtyCommandIsNotConstructed)
}

// LineID returns the line to update.
func (c UpdateLineQtyCommand) LineID() kernel.UUID {
	return c.lineID
}

// Qty returns the replacement quantity.
func (c UpdateLineQtyCommand) Qty() int {
	return c.qty
}

func (c *UpdateLineQtyCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *UpdateLineQtyCommand) setQty(qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: got %d", ErrQtyIsInvalid, qty)
	}

	c.qty = qty
	return nil
}
