package commands

import (
	"errors"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/guard"
)

var ErrCloseOrderCommandIsNotConstructed = errors.New(
	"CloseOrderCommand must be created via NewCloseOrderCommand constructor",
)

// CloseOrderCommand represents a request to close an order under preparation,
// splitting any untouched lines off into a successor order.
type CloseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCloseOrderCommand creates a command to close an order.
func NewCloseOrderCommand(orderID kernel.UUID) (CloseOrderCommand, error) {
	cmd := CloseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CloseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloseOrderCommandIsNotConstructed)
}

// OrderID returns the order to close.
func (c CloseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CloseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
