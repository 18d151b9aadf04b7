package commands

import (
	"errors"
	"fmt"
	"regexp"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/guard"
)

var (
	ErrSendOrderCommandIsNotConstructed = errors.New(
		"SendOrderCommand must be created via NewSendOrderCommand constructor",
	)
	ErrRecipientEmailIsInvalid = errors.New("recipient email is invalid")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SendOrderCommand represents a request to dispatch a Draft order to the
// destination warehouse, freezing its lines for preparation.
type SendOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	recipientEmail string

	guard guard.ConstructorGuard
}

// NewSendOrderCommand creates a command to send an order to a recipient.
func NewSendOrderCommand(orderID kernel.UUID, recipientEmail string) (SendOrderCommand, error) {
	cmd := SendOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRecipientEmail(recipientEmail),
	); err != nil {
		return SendOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendOrderCommand) Validate() error {
	return c.guard.Validate(ErrSendOrderCommandIsNotConstructed)
}

// OrderID returns the order to send.
func (c SendOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RecipientEmail returns the destination contact address.
func (c SendOrderCommand) RecipientEmail() string {
	return c.recipientEmail
}

func (c *SendOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SendOrderCommand) setRecipientEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: %q", ErrRecipientEmailIsInvalid, email)
	}

	c.recipientEmail = email
	return nil
}
