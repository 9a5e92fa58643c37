package memory

import (
	"context"

	"storage/internal/core/domain/model/location"
)

// Store holds the single location served by the process together with the
// lock that serializes units of work over it.
type Store struct {
	location *location.Location
	sem      chan struct{}
}

func NewStore(loc *location.Location) *Store {
	return &Store{
		location: loc,
		sem:      make(chan struct{}, 1),
	}
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.sem
}
