package kernel

import (
	"errors"
	"fmt"

	"storage/internal/pkg/errs"
	"storage/internal/pkg/guard"
)

const (
	// FootprintMultiple is the module every width and length must divide by.
	FootprintMultiple = 4
	// HeightMultiple is the module every height must divide by.
	HeightMultiple = 2
)

// ErrDimensionsAreNotConstructed is returned when a zero Dimensions value is used.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

// Dimensions is the immutable size of a storage unit in feet.
//
// Business rules:
//   - every side is greater than 0
//   - width and length are multiples of FootprintMultiple
//   - height is a multiple of HeightMultiple
//
// Example:
//
//	dims, err := kernel.NewDimensions(4, 8, 8)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(dims) // 4'(w) x 8'(l) x 8'(h)
type Dimensions struct { //nolint:recvcheck //using for validation
	width  int
	length int
	height int
	guard  guard.ConstructorGuard
}

// NewDimensions validates all three sides and returns every violation joined
// into a single error.
func NewDimensions(width, length, height int) (Dimensions, error) {
	dims := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dims.setWidth(width),
		dims.setLength(length),
		dims.setHeight(height),
	); err != nil {
		return Dimensions{}, err
	}

	return dims, nil
}

func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

func (d Dimensions) Width() int {
	return d.width
}

func (d Dimensions) Length() int {
	return d.length
}

func (d Dimensions) Height() int {
	return d.height
}

// Area is the floor area, width times length, in square feet.
func (d Dimensions) Area() int {
	return d.width * d.length
}

// Volume is the enclosed space in cubic feet.
func (d Dimensions) Volume() int {
	return d.width * d.length * d.height
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%d'(w) x %d'(l) x %d'(h)", d.width, d.length, d.height)
}

func (d *Dimensions) setWidth(width int) error {
	if err := validateSide("width", width, FootprintMultiple); err != nil {
		return err
	}

	d.width = width
	return nil
}

func (d *Dimensions) setLength(length int) error {
	if err := validateSide("length", length, FootprintMultiple); err != nil {
		return err
	}

	d.length = length
	return nil
}

func (d *Dimensions) setHeight(height int) error {
	if err := validateSide("height", height, HeightMultiple); err != nil {
		return err
	}

	d.height = height
	return nil
}

func validateSide(name string, value, multiple int) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			name+" is invalid",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}

	if value%multiple != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			name+" is invalid",
			fmt.Errorf("%d is not a multiple of %d", value, multiple),
		)
	}

	return nil
}
