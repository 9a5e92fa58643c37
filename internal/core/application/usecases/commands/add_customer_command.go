package commands

import (
	"errors"

	"storage/internal/pkg/guard"
)

var (
	ErrAddCustomerCommandIsNotConstructed = errors.New(
		"AddCustomerCommand must be created via NewAddCustomerCommand constructor",
	)
	ErrNameIsRequired  = errors.New("name is required")
	ErrPhoneIsRequired = errors.New("phone is required")
)

// AddCustomerCommand registers a new customer on the location roster.
//
// Example:
//
//	cmd, err := NewAddCustomerCommand("Pat Perkins", "425-555-1314")
//	if err != nil {
//	    return err
//	}
//	index, err := handler.Handle(ctx, cmd)
type AddCustomerCommand struct { //nolint:recvcheck //using for validation
	name  string
	phone string

	guard guard.ConstructorGuard
}

func NewAddCustomerCommand(name string, phone string) (AddCustomerCommand, error) {
	command := AddCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(command.setName(name), command.setPhone(phone)); err != nil {
		return AddCustomerCommand{}, err
	}

	return command, nil
}

func (c AddCustomerCommand) Validate() error {
	return c.guard.Validate(ErrAddCustomerCommandIsNotConstructed)
}

func (c AddCustomerCommand) Name() string {
	return c.name
}

func (c AddCustomerCommand) Phone() string {
	return c.phone
}

func (c *AddCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddCustomerCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}
