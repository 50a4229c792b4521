package usecase

import (
	"context"
	"errors"

	"admin-srv/internal/event"
	"admin-srv/internal/model"
	"admin-srv/pkg/platformsrv"
)

// List retrieves the management listing of events with the given filters.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input event.ListInput) (event.ListOutput, error) {
	if input.Status != "" && !model.ValidEventStatus(model.EventStatus(input.Status)) {
		return event.ListOutput{}, event.ErrInvalidFilters
	}
	input.PagQuery.Adjust()

	list, err := uc.platform.GetEvents(ctx, sc.SessionToken, input.Params())
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.List: platform GetEvents failed: %v", err)
		return event.ListOutput{}, uc.mapPlatformError(err)
	}

	return event.ListOutput{
		Events:     list.Events,
		Pagination: list.Pagination,
	}, nil
}

// Detail retrieves one event by ID.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, eventID string) (model.Event, error) {
	if eventID == "" {
		return model.Event{}, event.ErrEventRequired
	}

	e, err := uc.platform.GetEvent(ctx, sc.SessionToken, eventID)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Detail: platform GetEvent failed: %v", err)
		return model.Event{}, uc.mapPlatformError(err)
	}

	return *e, nil
}

// UpdateStatus changes an event's moderation status. The status enum is
// validated here so bad input never reaches the platform.
func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input event.UpdateStatusInput) (model.Event, error) {
	if input.EventID == "" {
		return model.Event{}, event.ErrEventRequired
	}
	if !model.ValidEventStatus(input.Status) {
		return model.Event{}, event.ErrInvalidStatus
	}

	e, err := uc.platform.UpdateEventStatus(ctx, sc.SessionToken, input.EventID, input.Status)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.UpdateStatus: platform UpdateEventStatus failed: %v", err)
		return model.Event{}, uc.mapPlatformError(err)
	}

	uc.l.Infof(ctx, "event.usecase.UpdateStatus: event %s set to %s by %s", input.EventID, input.Status, sc.UserID)
	return *e, nil
}

func (uc *implUseCase) mapPlatformError(err error) error {
	switch {
	case errors.Is(err, platformsrv.ErrNotFound):
		return event.ErrEventNotFound
	case errors.Is(err, platformsrv.ErrUnauthorized):
		return event.ErrNotPermitted
	case errors.Is(err, platformsrv.ErrBadRequest):
		return event.ErrInvalidFilters
	default:
		return event.ErrUpstream
	}
}
