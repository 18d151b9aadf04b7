package commands

import (
	"errors"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/guard"
)

var ErrMarkShippedCommandIsNotConstructed = errors.New(
	"MarkShippedCommand must be created via NewMarkShippedCommand constructor",
)

// MarkShippedCommand represents a request to record that a closed order has
// physically left the source warehouse.
type MarkShippedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkShippedCommand creates a command to mark an order shipped.
func NewMarkShippedCommand(orderID kernel.UUID) (MarkShippedCommand, error) {
	cmd := MarkShippedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkShippedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkShippedCommand) Validate() error {
	return c.guard.Validate(ErrMarkShippedCommandIsNotConstructed)
}

// OrderID returns the order to mark as shipped.
func (c MarkShippedCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkShippedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
