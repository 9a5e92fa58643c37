package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork brackets every read or change of the location. Between Begin
// and Commit or Rollback the caller has exclusive access.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	LocationRepository() LocationRepository
}
