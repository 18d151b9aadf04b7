package commands

import (
	"errors"
	"fmt"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/guard"
)

var (
	ErrAddPreparedCommandIsNotConstructed = errors.New(
		"AddPreparedCommand must be created via NewAddPreparedCommand constructor",
	)
	ErrDeltaIsInvalid = errors.New("delta must be greater than 0")
)

// AddPreparedCommand represents a warehouse operator scanning a quantity of a
// product as prepared against a Sent or InProgress order.
type AddPreparedCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	productCode string
	delta       int

	guard guard.ConstructorGuard
}

// NewAddPreparedCommand creates a command to record prepared quantity.
func NewAddPreparedCommand(orderID kernel.UUID, productCode string, delta int) (AddPreparedCommand, error) {
	cmd := AddPreparedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductCode(productCode),
		cmd.setDelta(delta),
	); err != nil {
		return AddPreparedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPreparedCommand) Validate() error {
	return c.guard.Validate(ErrAddPreparedCommandIsNotConstructed)
}

// OrderID returns the order under preparation.
func (c AddPreparedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductCode returns the scanned product.
func (c AddPreparedCommand) ProductCode() string {
	return c.productCode
}

// Delta returns the prepared quantity increment.
func (c AddPreparedCommand) Delta() int {
	return c.delta
}

func (c *AddPreparedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddPreparedCommand) setProductCode(productCode string) error {
	if productCode == "" {
		return ErrProductCodeIsRequired
	}

	c.productCode = productCode
	return nil
}

func (c *AddPreparedCommand) setDelta(delta int) error {
	if delta <= 0 {
		return fmt.Errorf("%w: got %d", ErrDeltaIsInvalid, delta)
	}

	c.delta = delta
	return nil
}
