// Package services provides domain services for operations that span the
// location aggregate and its customers.
//
// The package includes:
//   - UnitAllocator: rents the first vacant unit of a requested kind
package services
