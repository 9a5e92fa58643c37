package commands

import (
	"errors"
	"fmt"
	"time"

	"storage/internal/pkg/guard"
)

var (
	ErrRentUnitCommandIsNotConstructed = errors.New(
		"RentUnitCommand must be created via NewRentUnitCommand constructor",
	)
	ErrRentalStartIsRequired = errors.New("rental start is required")
	ErrPositionIsInvalid     = errors.New("row, slot and customer index must not be negative")
)

// RentUnitCommand rents the unit at a grid position to a roster customer.
type RentUnitCommand struct { //nolint:recvcheck //using for validation
	customerIndex int
	row           int
	slot          int
	start         time.Time

	guard guard.ConstructorGuard
}

func NewRentUnitCommand(customerIndex, row, slot int, start time.Time) (RentUnitCommand, error) {
	command := RentUnitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPosition(customerIndex, row, slot),
		command.setStart(start),
	); err != nil {
		return RentUnitCommand{}, err
	}

	return command, nil
}

func (c RentUnitCommand) Validate() error {
	return c.guard.Validate(ErrRentUnitCommandIsNotConstructed)
}

func (c RentUnitCommand) CustomerIndex() int {
	return c.customerIndex
}

func (c RentUnitCommand) Row() int {
	return c.row
}

func (c RentUnitCommand) Slot() int {
	return c.slot
}

func (c RentUnitCommand) Start() time.Time {
	return c.start
}

func (c *RentUnitCommand) setPosition(customerIndex, row, slot int) error {
	if customerIndex < 0 || row < 0 || slot < 0 {
		return fmt.Errorf("%w: customer %d, row %d, slot %d", ErrPositionIsInvalid, customerIndex, row, slot)
	}

	c.customerIndex = customerIndex
	c.row = row
	c.slot = slot
	return nil
}

func (c *RentUnitCommand) setStart(start time.Time) error {
	if start.IsZero() {
		return ErrRentalStartIsRequired
	}

	c.start = start
	return nil
}
