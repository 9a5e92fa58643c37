// Package guard holds ConstructorGuard, a marker embedded in entities and
// commands so that zero values created without their constructor can be told
// apart from properly built ones.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner went through a constructor.
// Embed it as a field, set it with NewConstructorGuard inside the
// constructor, and call Validate from the owner's Validate method:
//
//	type Customer struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c *Customer) Validate() error {
//	    return c.guard.Validate(ErrCustomerIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
