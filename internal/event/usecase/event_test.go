package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"admin-srv/internal/event"
	"admin-srv/internal/model"
	"admin-srv/pkg/log"
	"admin-srv/pkg/platformsrv"
)

type fakePlatform struct {
	platformsrv.IPlatform

	list       *model.EventList
	detail     *model.Event
	updated    *model.Event
	err        error
	gotParams  map[string]string
	gotEventID string
	gotStatus  model.EventStatus
}

func (p *fakePlatform) GetEvents(_ context.Context, _ string, params map[string]string) (*model.EventList, error) {
	p.gotParams = params
	return p.list, p.err
}

func (p *fakePlatform) GetEvent(_ context.Context, _ string, eventID string) (*model.Event, error) {
	p.gotEventID = eventID
	return p.detail, p.err
}

func (p *fakePlatform) UpdateEventStatus(_ context.Context, _ string, eventID string, status model.EventStatus) (*model.Event, error) {
	p.gotEventID = eventID
	p.gotStatus = status
	return p.updated, p.err
}

func TestList(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{SessionToken: "tok"}

	t.Run("forwards filters with normalized pagination", func(t *testing.T) {
		platform := &fakePlatform{list: &model.EventList{}}
		uc := New(log.NewNopLogger(), platform)

		_, err := uc.List(ctx, sc, event.ListInput{Status: "pending", Category: "music"})
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if platform.gotParams["status"] != "pending" || platform.gotParams["category"] != "music" {
			t.Errorf("filters: got %v", platform.gotParams)
		}
		if platform.gotParams["page"] != "1" || platform.gotParams["limit"] != "10" {
			t.Errorf("pagination: got page=%q limit=%q, want 1/10",
				platform.gotParams["page"], platform.gotParams["limit"])
		}
	})

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		uc := New(log.NewNopLogger(), &fakePlatform{})

		_, err := uc.List(ctx, sc, event.ListInput{Status: "archived"})
		if !errors.Is(err, event.ErrInvalidFilters) {
			t.Fatalf("error: got %v, want ErrInvalidFilters", err)
		}
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{SessionToken: "tok"}

	t.Run("empty id is rejected", func(t *testing.T) {
		uc := New(log.NewNopLogger(), &fakePlatform{})

		_, err := uc.Detail(ctx, sc, "")
		if !errors.Is(err, event.ErrEventRequired) {
			t.Fatalf("error: got %v, want ErrEventRequired", err)
		}
	})

	t.Run("upstream 404 maps to not found", func(t *testing.T) {
		uc := New(log.NewNopLogger(), &fakePlatform{
			err: fmt.Errorf("%w (status 404)", platformsrv.ErrNotFound),
		})

		_, err := uc.Detail(ctx, sc, "ev_1")
		if !errors.Is(err, event.ErrEventNotFound) {
			t.Fatalf("error: got %v, want ErrEventNotFound", err)
		}
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "admin-1", SessionToken: "tok"}

	t.Run("valid transition reaches the platform", func(t *testing.T) {
		platform := &fakePlatform{updated: &model.Event{ID: "ev_1", Status: model.EventStatusApproved}}
		uc := New(log.NewNopLogger(), platform)

		out, err := uc.UpdateStatus(ctx, sc, event.UpdateStatusInput{EventID: "ev_1", Status: model.EventStatusApproved})
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if platform.gotStatus != model.EventStatusApproved {
			t.Errorf("status sent: got %q, want approved", platform.gotStatus)
		}
		if out.Status != model.EventStatusApproved {
			t.Errorf("returned status: got %q, want approved", out.Status)
		}
	})

	t.Run("unknown status never reaches the platform", func(t *testing.T) {
		platform := &fakePlatform{}
		uc := New(log.NewNopLogger(), platform)

		_, err := uc.UpdateStatus(ctx, sc, event.UpdateStatusInput{EventID: "ev_1", Status: "archived"})
		if !errors.Is(err, event.ErrInvalidStatus) {
			t.Fatalf("error: got %v, want ErrInvalidStatus", err)
		}
		if platform.gotEventID != "" {
			t.Error("platform must not be called for an invalid status")
		}
	})
}
