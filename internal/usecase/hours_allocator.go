package usecase

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"psaops/internal/domain/entities"
)

// hoursDispatcher debounces remote weekly-hours writes for one row. Each
// schedule bumps a generation; the timer only fires the flush if its
// generation is still current, so a newer write always supersedes an older
// one and no timer ever races a fresh edit.
type hoursDispatcher struct {
	delay time.Duration
	gen   atomic.Uint64
}

func (d *hoursDispatcher) schedule(flush func()) {
	gen := d.gen.Add(1)
	if d.delay <= 0 {
		flush()
		return
	}
	time.AfterFunc(d.delay, func() {
		if d.gen.Load() == gen {
			flush()
		}
	})
}

// supersede invalidates any scheduled flush without running it.
func (d *hoursDispatcher) supersede() {
	d.gen.Add(1)
}

// SetHours writes one week's hours for the row.
//
// The local draft and totals update immediately and synchronously; only the
// remote dispatch is debounced. A week outside the row's date window is
// ignored without error. A row with no durable id yet is created first, and
// that first hours write flushes synchronously so the remote record and its
// hours land together before any other update can race ahead.
func (c *RowController) SetHours(ctx context.Context, weekKey string, hours float64) (RowSnapshot, error) {
	ws, err := ParseWeekKey(weekKey)
	if err != nil {
		return c.Snapshot(), err
	}
	if hours < 0 {
		return c.Snapshot(), ErrNegativeHours
	}

	c.mu.Lock()
	if c.draft.RoleID == "" {
		c.mu.Unlock()
		return c.Snapshot(), ErrMissingRole
	}
	if !WeekEligible(ws, c.draft.StartDate, c.draft.EndDate) {
		log.Printf("[rows][hours] week %s outside window for row %s; ignored", weekKey, c.rowKey)
		c.mu.Unlock()
		return c.Snapshot(), nil
	}
	key := ws.Format(entities.WeekKeyLayout)
	if hours == 0 {
		delete(c.draft.CustomHours, key)
	} else {
		c.draft.CustomHours[key] = hours
	}
	if c.phase == RowEmpty {
		c.phase = RowDraft
	}
	hasID := c.draft.ID != ""
	c.mu.Unlock()

	if !hasID {
		c.save(ctx)
		c.mu.Lock()
		hasID = c.draft.ID != ""
		c.mu.Unlock()
		if !hasID {
			return c.Snapshot(), nil
		}
		c.hours.supersede()
		c.flushHours(ctx)
		return c.Snapshot(), nil
	}

	c.hours.schedule(func() {
		c.flushHours(context.Background())
	})
	return c.Snapshot(), nil
}

// FillHours sets the same hours across every calendar week overlapping the
// row's date window.
func (c *RowController) FillHours(ctx context.Context, hours float64) (RowSnapshot, error) {
	if hours < 0 {
		return c.Snapshot(), ErrNegativeHours
	}

	c.mu.Lock()
	if c.draft.RoleID == "" {
		c.mu.Unlock()
		return c.Snapshot(), ErrMissingRole
	}
	keys := EligibleWeekKeys(c.draft.StartDate, c.draft.EndDate)
	for _, key := range keys {
		if hours == 0 {
			delete(c.draft.CustomHours, key)
		} else {
			c.draft.CustomHours[key] = hours
		}
	}
	if c.phase == RowEmpty {
		c.phase = RowDraft
	}
	hasID := c.draft.ID != ""
	c.mu.Unlock()

	if len(keys) == 0 {
		return c.Snapshot(), nil
	}
	if !hasID {
		c.save(ctx)
		c.mu.Lock()
		hasID = c.draft.ID != ""
		c.mu.Unlock()
		if !hasID {
			return c.Snapshot(), nil
		}
		c.hours.supersede()
		c.flushHours(ctx)
		return c.Snapshot(), nil
	}

	c.hours.schedule(func() {
		c.flushHours(context.Background())
	})
	return c.Snapshot(), nil
}

// FlushHours forces any locally recorded hours to the remote store now,
// bypassing the debounce. Used when a grid is being closed or by tests.
func (c *RowController) FlushHours(ctx context.Context) {
	c.hours.supersede()
	c.flushHours(ctx)
}

func (c *RowController) flushHours(ctx context.Context) {
	c.mu.Lock()
	id := c.draft.ID
	if id == "" {
		c.mu.Unlock()
		return
	}
	hours := make(map[string]float64, len(c.draft.CustomHours))
	for k, v := range c.draft.CustomHours {
		hours[k] = v
	}
	c.mu.Unlock()

	if err := c.repo.SetWeeklyHours(ctx, c.estimate.ID, id, "custom", hours); err != nil {
		log.Printf("[rows][hours] weekly hours write failed row=%s id=%s err=%v", c.rowKey, id, err)
		c.mu.Lock()
		c.errMsg = err.Error()
		c.needsRefetch = true
		c.mu.Unlock()
	}
}
