package ports

import (
	"context"

	"storage/internal/core/domain/model/customer"
	"storage/internal/core/domain/model/location"
)

// LocationRepository gives access to the facility the application serves.
type LocationRepository interface {
	// Get returns the location aggregate.
	Get(ctx context.Context) (*location.Location, error)

	// GetCustomer returns the customer at roster index.
	GetCustomer(ctx context.Context, index int) (*customer.Customer, error)
}
