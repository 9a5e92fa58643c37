// Package errs provides the error types shared by the storage facility domain.
//
// Every validation failure raised by the domain is one of:
//   - ValueIsRequiredError: a mandatory value is missing (empty name, nil customer)
//   - ValueIsInvalidError: a value is present but malformed (designation, dimensions)
//   - ValueIsOutOfRangeError: a value is outside its bounds (levels, grid indices)
//
// All three also match ErrInvalidArgument through errors.Is, so callers can
// tell "invalid usage" apart from a meaningfully declined operation, which
// the domain reports with a boolean or an empty result instead of an error.
//
// ObjectNotFoundError is not a validation error and does not match
// ErrInvalidArgument.
package errs
