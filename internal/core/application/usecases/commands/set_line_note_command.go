package commands

import (
	"errors"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/guard"
)

var ErrSetLineNoteCommandIsNotConstructed = errors.New(
	"SetLineNoteCommand must be created via NewSetLineNoteCommand constructor",
)

// SetLineNoteCommand represents a request to attach a free-form note to a
// line. Notes are operator annotations and may be edited in any order state.
type SetLineNoteCommand struct { //nolint:recvcheck //using for validation
	lineID kernel.UUID
	note   string

	guard guard.ConstructorGuard
}

// NewSetLineNoteCommand creates a command to set a line note. An empty note
// clears any previous annotation.
func NewSetLineNoteCommand(lineID kernel.UUID, note string) (SetLineNoteCommand, error) {
	cmd := SetLineNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setLineID(lineID); err != nil {
		return SetLineNoteCommand{}, err
	}

	cmd.note = note

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetLineNoteCommand) Validate() error {
	return c.guard.Validate(ErrSetLineNoteCommandIsNotConstructed)
}

// LineID returns the line to annotate.
func (c SetLineNoteCommand) LineID() kernel.UUID {
	return c.lineID
}

// Note returns the annotation text.
func (c SetLineNoteCommand) Note() string {
	return c.note
}

func (c *SetLineNoteCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}
