// Package kernel provides the value objects shared by the storage facility
// domain model.
//
// The package includes:
//   - UUID: identity for customers and storage units
//   - Dimensions: validated width, length and height of a storage unit
//   - RoundToNickel and ValidateAmount: monetary helpers over shopspring/decimal
//
// Value objects are immutable. Their zero values are invalid and fail
// Validate, so they must be created through their constructors.
package kernel
