package commands

import (
	"errors"
	"fmt"
	"time"

	"storage/internal/core/domain/model/unit"
	"storage/internal/pkg/guard"
)

var ErrAllocateUnitCommandIsNotConstructed = errors.New(
	"AllocateUnitCommand must be created via NewAllocateUnitCommand constructor",
)

// AllocateUnitCommand rents the first vacant unit of a kind to a roster
// customer. The caller names the kind, the allocator picks the position.
type AllocateUnitCommand struct { //nolint:recvcheck //using for validation
	customerIndex int
	kind          unit.Kind
	start         time.Time

	guard guard.ConstructorGuard
}

func NewAllocateUnitCommand(customerIndex int, kind unit.Kind, start time.Time) (AllocateUnitCommand, error) {
	command := AllocateUnitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerIndex(customerIndex),
		command.setKind(kind),
		command.setStart(start),
	); err != nil {
		return AllocateUnitCommand{}, err
	}

	return command, nil
}

func (c AllocateUnitCommand) Validate() error {
	return c.guard.Validate(ErrAllocateUnitCommandIsNotConstructed)
}

func (c AllocateUnitCommand) CustomerIndex() int {
	return c.customerIndex
}

func (c AllocateUnitCommand) Kind() unit.Kind {
	return c.kind
}

func (c AllocateUnitCommand) Start() time.Time {
	return c.start
}

func (c *AllocateUnitCommand) setCustomerIndex(customerIndex int) error {
	if customerIndex < 0 {
		return fmt.Errorf("%w: customer %d", ErrPositionIsInvalid, customerIndex)
	}

	c.customerIndex = customerIndex
	return nil
}

func (c *AllocateUnitCommand) setKind(kind unit.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *AllocateUnitCommand) setStart(start time.Time) error {
	if start.IsZero() {
		return ErrRentalStartIsRequired
	}

	c.start = start
	return nil
}
