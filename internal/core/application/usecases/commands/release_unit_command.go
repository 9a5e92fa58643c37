package commands

import (
	"errors"
	"fmt"

	"storage/internal/pkg/guard"
)

var ErrReleaseUnitCommandIsNotConstructed = errors.New(
	"ReleaseUnitCommand must be created via NewReleaseUnitCommand constructor",
)

// ReleaseUnitCommand vacates the unit at a grid position.
type ReleaseUnitCommand struct { //nolint:recvcheck //using for validation
	row  int
	slot int

	guard guard.ConstructorGuard
}

func NewReleaseUnitCommand(row, slot int) (ReleaseUnitCommand, error) {
	if row < 0 || slot < 0 {
		return ReleaseUnitCommand{}, fmt.Errorf("%w: row %d, slot %d", ErrPositionIsInvalid, row, slot)
	}

	return ReleaseUnitCommand{
		row:   row,
		slot:  slot,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ReleaseUnitCommand) Validate() error {
	return c.guard.Validate(ErrReleaseUnitCommandIsNotConstructed)
}

func (c ReleaseUnitCommand) Row() int {
	return c.row
}

func (c ReleaseUnitCommand) Slot() int {
	return c.slot
}
