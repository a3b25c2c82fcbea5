package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"psaops/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestRowController_HoursAgainstFreshRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, deps := newTestRow(ctrl)
	ctx := context.Background()

	// Seed the draft with a role directly; the row never persisted.
	c.mu.Lock()
	c.draft.RoleID = "role-1"
	c.draft.Cost = 44
	c.draft.Rate = 110
	c.phase = RowDraft
	c.mu.Unlock()

	gomock.InOrder(
		deps.repo.EXPECT().Create(gomock.Any(), "est-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, item entities.LineItem) (entities.LineItem, error) {
				item.ID = "li-1"
				return item, nil
			},
		),
		deps.repo.EXPECT().SetWeeklyHours(gomock.Any(), "est-1", "li-1", "custom", map[string]float64{"2026-01-11": 8}).Return(nil),
	)
	deps.idstore.EXPECT().Set(gomock.Any(), "est-1", "row-1", "li-1").Return(nil)

	snap, err := c.SetHours(ctx, "2026-01-11", 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Phase != RowPersisted || snap.LineItemID != "li-1" {
		t.Fatalf("expected persisted row, got %+v", snap)
	}
	if snap.Totals.Hours != 8 || snap.Totals.Revenue != 880 {
		t.Fatalf("totals must reflect the write immediately: %+v", snap.Totals)
	}
}

func TestRowController_HoursOutsideWindowIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, _ := newTestRow(ctrl)

	c.mu.Lock()
	c.draft.RoleID = "role-1"
	c.phase = RowDraft
	c.mu.Unlock()

	// Window is 2026-01-07..2026-01-20; this week ends before it starts.
	// Rejected silently: no error, no remote call, no local hours.
	snap, err := c.SetHours(context.Background(), "2025-12-14", 8)
	if err != nil {
		t.Fatalf("out-of-range write must not error: %v", err)
	}
	if len(snap.Item.CustomHours) != 0 || snap.Totals.Hours != 0 {
		t.Fatalf("out-of-range hours must not be recorded: %+v", snap)
	}
}

func TestRowController_HoursValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, _ := newTestRow(ctrl)

	if _, err := c.SetHours(context.Background(), "2026-01-11", 8); !errors.Is(err, ErrMissingRole) {
		t.Fatalf("expected ErrMissingRole, got %v", err)
	}

	c.mu.Lock()
	c.draft.RoleID = "role-1"
	c.mu.Unlock()

	if _, err := c.SetHours(context.Background(), "2026-01-11", -1); !errors.Is(err, ErrNegativeHours) {
		t.Fatalf("expected ErrNegativeHours, got %v", err)
	}
	if _, err := c.SetHours(context.Background(), "bogus", 8); err == nil {
		t.Fatalf("expected week key parse error")
	}
}

func TestRowController_DebouncedHoursUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, deps := newTestRow(ctrl)
	ctx := context.Background()

	c.Seed(entities.LineItem{
		ID: "li-1", EstimateID: "est-1", RoleID: "role-1",
		StartDate: date(2026, time.January, 7), EndDate: date(2026, time.January, 20),
		Rate: 100,
	})

	// Rapid consecutive edits: the debounce is zero in tests so each one
	// flushes, but totals always reflect the latest local value first.
	deps.repo.EXPECT().SetWeeklyHours(gomock.Any(), "est-1", "li-1", "custom", gomock.Any()).Return(nil).Times(2)

	snap, err := c.SetHours(ctx, "2026-01-11", 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Totals.Hours != 8 {
		t.Fatalf("expected 8 hours, got %+v", snap.Totals)
	}
	snap, err = c.SetHours(ctx, "2026-01-11", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Totals.Hours != 20 || snap.Totals.Revenue != 2000 {
		t.Fatalf("totals must track the latest edit: %+v", snap.Totals)
	}
}

func TestRowController_FillHours(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, deps := newTestRow(ctrl)
	ctx := context.Background()

	c.Seed(entities.LineItem{
		ID: "li-1", EstimateID: "est-1", RoleID: "role-1",
		StartDate: date(2026, time.January, 7), EndDate: date(2026, time.January, 20),
	})

	deps.repo.EXPECT().SetWeeklyHours(gomock.Any(), "est-1", "li-1", "custom",
		map[string]float64{"2026-01-04": 40, "2026-01-11": 40, "2026-01-18": 40}).Return(nil)

	snap, err := c.FillHours(ctx, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Totals.Hours != 120 {
		t.Fatalf("expected 120 filled hours, got %+v", snap.Totals)
	}
}

func TestHoursDispatcher_SupersedingGenerations(t *testing.T) {
	var fired atomic.Int32
	d := &hoursDispatcher{delay: 20 * time.Millisecond}

	// Two schedules in quick succession: only the newest generation fires.
	d.schedule(func() { fired.Add(1) })
	d.schedule(func() { fired.Add(1) })
	time.Sleep(60 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Fatalf("expected exactly one flush, got %d", got)
	}

	// An explicit supersede cancels a scheduled flush.
	d.schedule(func() { fired.Add(1) })
	d.supersede()
	time.Sleep(60 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Fatalf("superseded flush must not fire, got %d", got)
	}
}

func TestHoursDispatcher_ZeroDelayIsSynchronous(t *testing.T) {
	d := &hoursDispatcher{}
	ran := false
	d.schedule(func() { ran = true })
	if !ran {
		t.Fatalf("zero-delay dispatch must run inline")
	}
}
