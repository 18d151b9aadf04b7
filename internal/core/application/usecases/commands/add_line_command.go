package commands

import (
	"errors"
	"fmt"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/guard"
)

var (
	ErrAddLineCommandIsNotConstructed = errors.New(
		"AddLineCommand must be created via NewAddLineCommand constructor",
	)
	ErrProductCodeIsRequired = errors.New("product code is required")
	ErrQtyIsInvalid          = errors.New("qty must be greater than 0")
)

// AddLineCommand represents a request to add a quantity of a product to a
// Draft order. When a line for the product already exists the quantity is
// merged into it; otherwise a new line is created with the catalog
// description snapshot taken at this instant.
type AddLineCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	productCode string
	qty         int

	guard guard.ConstructorGuard
}

// NewAddLineCommand creates a command to add product quantity to an order.
func NewAddLineCommand(orderID kernel.UUID, productCode string, qty int) (AddLineCommand, error) {
	cmd := AddLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductCode(productCode),
		cmd.setQty(qty),
	); err != nil {
		return AddLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLineCommand) Validate() error {
	return c.guard.Validate(ErrAddLineCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c AddLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductCode returns the product to add.
func (c AddLineCommand) ProductCode() string {
	return c.productCode
}

// Qty returns the requested quantity to add.
func (c AddLineCommand) Qty() int {
	return c.qty
}

func (c *AddLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddLineCommand) setProductCode(productCode string) error {
	if productCode == "" {
		return ErrProductCodeIsRequired
	}

	c.productCode = productCode
	return nil
}

func (c *AddLineCommand) setQty(qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: got %d", ErrQtyIsInvalid, qty)
	}

	c.qty = qty
	return nil
}
