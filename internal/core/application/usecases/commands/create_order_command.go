package commands

import (
	"errors"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrSameWarehouseNotAllowed = errors.New("source and destination warehouse must differ")
)

// CreateOrderCommand represents a request to open a new transfer order
// between two distinct warehouses. The order is created in Draft status with
// zero lines; the (year, sequence) pair is allocated by the handler inside
// the creation transaction.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	fromWarehouseID kernel.UUID
	toWarehouseID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a transfer order.
// Validates that both warehouse identifiers are valid and distinct.
func NewCreateOrderCommand(orderID, fromWarehouseID, toWarehouseID kernel.UUID) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setWarehouses(fromWarehouseID, toWarehouseID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FromWarehouseID returns the source warehouse.
func (c CreateOrderCommand) FromWarehouseID() kernel.UUID {
	return c.fromWarehouseID
}

// ToWarehouseID returns the destination warehouse.
func (c CreateOrderCommand) ToWarehouseID() kernel.UUID {
	return c.toWarehouseID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setWarehouses(from, to kernel.UUID) error {
	if err := from.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}
	if from.IsEqual(to) {
		return ErrSameWarehouseNotAllowed
	}

	c.fromWarehouseID = from
	c.toWarehouseID = to
	return nil
}
