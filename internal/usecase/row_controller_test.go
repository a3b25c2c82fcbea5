package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"psaops/internal/domain/entities"
	mock_interfaces "psaops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func testEstimate() entities.Estimate {
	return entities.Estimate{
		ID:              "est-1",
		InvoiceCenterID: "dc-eu",
		Currency:        "USD",
		StartDate:       date(2026, time.January, 7),
		EndDate:         date(2026, time.January, 20),
	}
}

type rowDeps struct {
	repo    *mock_interfaces.MockILineItemRepository
	refdata *mock_interfaces.MockIReferenceDataRepository
	idstore *mock_interfaces.MockIRowIdentityStore
}

func newTestRow(ctrl *gomock.Controller) (*RowController, rowDeps) {
	deps := rowDeps{
		repo:    mock_interfaces.NewMockILineItemRepository(ctrl),
		refdata: mock_interfaces.NewMockIReferenceDataRepository(ctrl),
		idstore: mock_interfaces.NewMockIRowIdentityStore(ctrl),
	}
	registry := NewRowIdentityRegistry(deps.idstore, "est-1")
	c := NewRowController("row-1", testEstimate(), deps.repo, deps.refdata, registry, NewCurrencyTable(testRates()), 0)
	return c, deps
}

func TestRowController_CreateOnFirstSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, deps := newTestRow(ctrl)

	deps.refdata.EXPECT().GetRole(gomock.Any(), "role-1").Return(testRole(), nil)
	deps.repo.EXPECT().Create(gomock.Any(), "est-1", gomock.AssignableToTypeOf(entities.LineItem{})).DoAndReturn(
		func(_ context.Context, _ string, item entities.LineItem) (entities.LineItem, error) {
			if item.ID != "" {
				t.Fatalf("create payload must not carry an id: %+v", item)
			}
			if item.RoleID != "role-1" || item.DeliveryCenterID != "dc-eu" || item.Currency != "USD" {
				t.Fatalf("unexpected create payload: %+v", item)
			}
			// Rates resolved from the EUR role rate: 110.00 / 44.00.
			if item.Rate != 110.00 || item.Cost != 44.00 {
				t.Fatalf("expected resolved rates in payload, got %+v", item)
			}
			item.ID = "li-1"
			return item, nil
		},
	)
	deps.idstore.EXPECT().Set(gomock.Any(), "est-1", "row-1", "li-1").Return(nil)

	snap, err := c.SetField(context.Background(), entities.LineItemPatch{RoleID: strPtr("role-1")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Phase != RowPersisted || snap.LineItemID != "li-1" {
		t.Fatalf("expected persisted row with id, got %+v", snap)
	}
}

func TestRowController_AtMostOneCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, deps := newTestRow(ctrl)

	deps.refdata.EXPECT().GetRole(gomock.Any(), "role-1").Return(testRole(), nil)
	deps.repo.EXPECT().Create(gomock.Any(), "est-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, item entities.LineItem) (entities.LineItem, error) {
			item.ID = "li-1"
			return item, nil
		},
	).Times(1)
	deps.idstore.EXPECT().Set(gomock.Any(), "est-1", "row-1", "li-1").Return(nil)

	// Every save after the first successful create must be an update
	// against the captured id.
	deps.repo.EXPECT().Update(gomock.Any(), "est-1", "li-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, id string, patch entities.LineItemPatch) (entities.LineItem, error) {
			return entities.LineItem{ID: id}, nil
		},
	).Times(2)

	ctx := context.Background()
	if _, err := c.SetField(ctx, entities.LineItemPatch{RoleID: strPtr("role-1")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.SetField(ctx, entities.LineItemPatch{Cost: f64Ptr(60)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.SetField(ctx, entities.LineItemPatch{DayNotes: strPtr("ramp-up week")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRowController_ValidationBlocksLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, _ := newTestRow(ctrl)

	// No role yet: no remote call of any kind is expected.
	snap, err := c.SetField(context.Background(), entities.LineItemPatch{DayNotes: strPtr("note")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Phase != RowDraft {
		t.Fatalf("expected draft phase, got %s", snap.Phase)
	}
}

func TestRowController_DiscardEmptyDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, _ := newTestRow(ctrl)

	ctx := context.Background()
	if _, err := c.SetField(ctx, entities.LineItemPatch{DayNotes: strPtr("note")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Clearing the selection before anything persisted discards the row.
	snap, err := c.SetField(ctx, entities.LineItemPatch{DayNotes: strPtr(""), RoleID: strPtr("")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Phase != RowEmpty {
		t.Fatalf("expected empty row, got %s", snap.Phase)
	}
}

func TestRowController_FailedPayloadNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, deps := newTestRow(ctrl)
	ctx := context.Background()

	deps.refdata.EXPECT().GetRole(gomock.Any(), "role-1").Return(testRole(), nil)
	deps.repo.EXPECT().Create(gomock.Any(), "est-1", gomock.Any()).Return(entities.LineItem{}, errors.New("gateway timeout")).Times(1)

	snap, err := c.SetField(ctx, entities.LineItemPatch{RoleID: strPtr("role-1")})
	if err != nil {
		t.Fatalf("field change itself must not error: %v", err)
	}
	if snap.Phase != RowError || snap.ErrorMessage != "gateway timeout" {
		t.Fatalf("expected error phase with message, got %+v", snap)
	}
	if !c.NeedsRefetch() {
		t.Fatalf("unknown-outcome save must request a reconciling refetch")
	}

	// A change that reproduces the identical payload must not trigger a
	// second Create (Times(1) above enforces it).
	snap, err = c.SetField(ctx, entities.LineItemPatch{DayNotes: strPtr("")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Phase != RowError {
		t.Fatalf("row must stay in error until something changes, got %s", snap.Phase)
	}

	// Local edits survived the failure.
	if snap.Item.RoleID != "role-1" {
		t.Fatalf("local edits must be preserved, got %+v", snap.Item)
	}
}

func TestRowController_RetryAfterChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, deps := newTestRow(ctrl)
	ctx := context.Background()

	deps.refdata.EXPECT().GetRole(gomock.Any(), "role-1").Return(testRole(), nil)
	gomock.InOrder(
		deps.repo.EXPECT().Create(gomock.Any(), "est-1", gomock.Any()).Return(entities.LineItem{}, errors.New("boom")),
		deps.repo.EXPECT().Create(gomock.Any(), "est-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, item entities.LineItem) (entities.LineItem, error) {
				item.ID = "li-1"
				return item, nil
			},
		),
	)
	deps.idstore.EXPECT().Set(gomock.Any(), "est-1", "row-1", "li-1").Return(nil)

	if _, err := c.SetField(ctx, entities.LineItemPatch{RoleID: strPtr("role-1")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// An actual change produces a different payload and is allowed through.
	snap, err := c.SetField(ctx, entities.LineItemPatch{WeekNotes: strPtr("second attempt")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Phase != RowPersisted || snap.LineItemID != "li-1" {
		t.Fatalf("expected persisted row after retry, got %+v", snap)
	}
}

func TestRowController_CoalescesEditsDuringInFlightSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, deps := newTestRow(ctrl)
	ctx := context.Background()

	deps.refdata.EXPECT().GetRole(gomock.Any(), "role-1").Return(testRole(), nil)
	deps.repo.EXPECT().Create(gomock.Any(), "est-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, item entities.LineItem) (entities.LineItem, error) {
			// An edit lands while the create is still in flight. It must not
			// spawn a second save; it is queued and re-dispatched after the
			// create settles.
			if _, err := c.SetField(ctx, entities.LineItemPatch{DayNotes: strPtr("late edit")}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			item.ID = "li-1"
			return item, nil
		},
	).Times(1)
	deps.idstore.EXPECT().Set(gomock.Any(), "est-1", "row-1", "li-1").Return(nil)
	deps.repo.EXPECT().Update(gomock.Any(), "est-1", "li-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, id string, patch entities.LineItemPatch) (entities.LineItem, error) {
			if patch.DayNotes == nil || *patch.DayNotes != "late edit" {
				t.Fatalf("queued edit missing from follow-up update: %+v", patch)
			}
			return entities.LineItem{ID: id}, nil
		},
	).Times(1)

	snap, err := c.SetField(ctx, entities.LineItemPatch{RoleID: strPtr("role-1")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Phase != RowPersisted {
		t.Fatalf("expected persisted row, got %+v", snap)
	}
	if snap.Item.DayNotes != "late edit" {
		t.Fatalf("late edit must survive: %+v", snap.Item)
	}
}

func TestRowController_UpdateAgainstVanishedRecordResets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, deps := newTestRow(ctrl)
	ctx := context.Background()

	c.Seed(entities.LineItem{ID: "li-9", EstimateID: "est-1", RoleID: "role-1", DeliveryCenterID: "dc-eu", Currency: "USD"})

	deps.repo.EXPECT().Update(gomock.Any(), "est-1", "li-9", gomock.Any()).Return(entities.LineItem{}, nil)
	deps.idstore.EXPECT().Clear(gomock.Any(), "est-1", "row-1").Return(nil)

	snap, err := c.SetField(ctx, entities.LineItemPatch{Cost: f64Ptr(77)})
	if err != nil {
		t.Fatalf("vanished record is not a user-facing failure: %v", err)
	}
	if snap.Phase != RowEmpty || snap.LineItemID != "" {
		t.Fatalf("expected reset to empty, got %+v", snap)
	}
}

func TestRowController_Reconcile(t *testing.T) {
	t.Run("remembered id absent resets row without delete or create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		c, _ := newTestRow(ctrl)
		c.Seed(entities.LineItem{ID: "li-1", RoleID: "role-1"})

		cleared := c.Reconcile(map[string]entities.LineItem{})
		if cleared != "li-1" {
			t.Fatalf("expected cleared id li-1, got %q", cleared)
		}
		if snap := c.Snapshot(); snap.Phase != RowEmpty {
			t.Fatalf("expected empty row, got %+v", snap)
		}
	})

	t.Run("clean row defers to authoritative copy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		c, _ := newTestRow(ctrl)
		c.Seed(entities.LineItem{ID: "li-1", RoleID: "role-1", Cost: 10})

		remote := entities.LineItem{ID: "li-1", RoleID: "role-1", Cost: 99, CustomHours: map[string]float64{"2026-01-11": 8}}
		if cleared := c.Reconcile(map[string]entities.LineItem{"li-1": remote}); cleared != "" {
			t.Fatalf("unexpected clear: %q", cleared)
		}
		snap := c.Snapshot()
		if snap.Item.Cost != 99 || snap.Item.CustomHours["2026-01-11"] != 8 {
			t.Fatalf("expected reseed from remote copy, got %+v", snap.Item)
		}
	})

	t.Run("unsaved local edits are not clobbered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		c, deps := newTestRow(ctrl)
		c.Seed(entities.LineItem{ID: "li-1", RoleID: "role-1", Cost: 10})

		// A failing update leaves an unsaved patch behind.
		deps.repo.EXPECT().Update(gomock.Any(), "est-1", "li-1", gomock.Any()).Return(entities.LineItem{}, errors.New("net"))
		if _, err := c.SetField(context.Background(), entities.LineItemPatch{Cost: f64Ptr(55)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		remote := entities.LineItem{ID: "li-1", RoleID: "role-1", Cost: 10}
		c.Reconcile(map[string]entities.LineItem{"li-1": remote})
		if snap := c.Snapshot(); snap.Item.Cost != 55 {
			t.Fatalf("in-flight work lost on reconcile: %+v", snap.Item)
		}
	})
}

func TestRowController_Delete(t *testing.T) {
	t.Run("persisted row deletes remote then resets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		c, deps := newTestRow(ctrl)
		c.Seed(entities.LineItem{ID: "li-1", RoleID: "role-1"})

		deps.repo.EXPECT().Delete(gomock.Any(), "est-1", "li-1").Return(true, nil)
		deps.idstore.EXPECT().Clear(gomock.Any(), "est-1", "row-1").Return(nil)

		if err := c.Delete(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap := c.Snapshot(); snap.Phase != RowEmpty {
			t.Fatalf("expected empty row, got %+v", snap)
		}
	})

	t.Run("explicit delete of vanished record surfaces not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		c, deps := newTestRow(ctrl)
		c.Seed(entities.LineItem{ID: "li-1", RoleID: "role-1"})

		deps.repo.EXPECT().Delete(gomock.Any(), "est-1", "li-1").Return(false, nil)
		deps.idstore.EXPECT().Clear(gomock.Any(), "est-1", "row-1").Return(nil)

		if err := c.Delete(context.Background()); !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
		if snap := c.Snapshot(); snap.Phase != RowEmpty {
			t.Fatalf("row must still reset, got %+v", snap)
		}
	})

	t.Run("transport error keeps the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		c, deps := newTestRow(ctrl)
		c.Seed(entities.LineItem{ID: "li-1", RoleID: "role-1"})

		deps.repo.EXPECT().Delete(gomock.Any(), "est-1", "li-1").Return(false, errors.New("net down"))

		if err := c.Delete(context.Background()); err == nil {
			t.Fatalf("expected transport error")
		}
		if snap := c.Snapshot(); snap.Phase == RowEmpty {
			t.Fatalf("row must not reset on transport failure")
		}
	})

	t.Run("draft-only delete is purely local", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		c, _ := newTestRow(ctrl)

		if _, err := c.SetField(context.Background(), entities.LineItemPatch{DayNotes: strPtr("x")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := c.Delete(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap := c.Snapshot(); snap.Phase != RowEmpty {
			t.Fatalf("expected empty row, got %+v", snap)
		}
	})
}

func TestRowController_StaleReferenceFetchNotApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, deps := newTestRow(ctrl)
	ctx := context.Background()

	// The role fetch settles after the user already switched to role-2: by
	// then the draft selection no longer matches the fetched entity, so the
	// resolver must skip and the stale numbers are never applied.
	deps.refdata.EXPECT().GetRole(gomock.Any(), "role-1").DoAndReturn(
		func(_ context.Context, _ string) (entities.Role, error) {
			c.mu.Lock()
			c.draft.RoleID = "role-2"
			c.mu.Unlock()
			return testRole(), nil
		},
	)
	deps.repo.EXPECT().Create(gomock.Any(), "est-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, item entities.LineItem) (entities.LineItem, error) {
			if item.Rate != 0 || item.Cost != 0 {
				t.Fatalf("stale rates must not be applied: %+v", item)
			}
			item.ID = "li-1"
			return item, nil
		},
	)
	deps.idstore.EXPECT().Set(gomock.Any(), "est-1", "row-1", "li-1").Return(nil)

	if _, err := c.SetField(ctx, entities.LineItemPatch{RoleID: strPtr("role-1")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
