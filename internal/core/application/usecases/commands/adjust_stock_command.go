package commands

import (
	"errors"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/guard"
)

var (
	ErrAdjustStockCommandIsNotConstructed = errors.New(
		"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
	)
	ErrDeltaIsZero = errors.New("delta must not be 0")
)

// AdjustStockCommand represents an inventory correction: a signed delta
// applied to the ledger entry of a product in a warehouse.
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	productCode string
	warehouseID kernel.UUID
	delta       int

	guard guard.ConstructorGuard
}

// NewAdjustStockCommand creates a command to adjust a stock level.
func NewAdjustStockCommand(productCode string, warehouseID kernel.UUID, delta int) (AdjustStockCommand, error) {
	cmd := AdjustStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductCode(productCode),
		cmd.setWarehouseID(warehouseID),
		cmd.setDelta(delta),
	); err != nil {
		return AdjustStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

// ProductCode returns the product whose level is adjusted.
func (c AdjustStockCommand) ProductCode() string {
	return c.productCode
}

// WarehouseID returns the warehouse whose level is adjusted.
func (c AdjustStockCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// Delta returns the signed quantity correction.
func (c AdjustStockCommand) Delta() int {
	return c.delta
}

func (c *AdjustStockCommand) setProductCode(productCode string) error {
	if productCode == "" {
		return ErrProductCodeIsRequired
	}

	c.productCode = productCode
	return nil
}

func (c *AdjustStockCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *AdjustStockCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrDeltaIsZero
	}

	c.delta = delta
	return nil
}
