package commands

import (
	"context"
)

type ReleaseUnitCommandHandler struct {
	uowFactory UoWFactory
}

func NewReleaseUnitCommandHandler(uowFactory UoWFactory) ReleaseUnitCommandHandler {
	return ReleaseUnitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle vacates the unit and reports false, without error, when it was
// already vacant.
func (h *ReleaseUnitCommandHandler) Handle(ctx context.Context, cmd ReleaseUnitCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loc, err := uow.LocationRepository().Get(ctx)
	if err != nil {
		return false, err
	}

	u, err := loc.Unit(cmd.Row(), cmd.Slot())
	if err != nil {
		return false, err
	}

	released := u.Release()

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return released, nil
}
