// Package commands contains operations that change the location: roster
// additions, rentals, releases and billing runs. Every handler validates its
// command, then works inside one unit of work.
package commands

import (
	"context"

	"storage/internal/core/ports"
)

// Unit of Work interfaces give command handlers exclusive access to the
// location for the length of one operation.
type (
	// TxManager handles the unit of work lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LocationRepoFactory provides access to the location repository within a
	// unit of work.
	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	UoW interface {
		TxManager
		LocationRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
