package usecase

import (
	"time"

	"psaops/internal/domain/entities"
)

// Calendar weeks run Sunday through Saturday. A week is eligible for a line
// item when it overlaps the item's date range at all; it does not need to be
// fully contained.

// WeekStart returns the Sunday that starts the calendar week containing d,
// normalized to midnight UTC.
func WeekStart(d time.Time) time.Time {
	d = d.UTC()
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// WeekEligible reports whether the Sunday–Saturday week starting at weekStart
// overlaps [start, end].
func WeekEligible(weekStart, start, end time.Time) bool {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return false
	}
	ws := WeekStart(weekStart)
	weekEnd := ws.AddDate(0, 0, 6)
	return !weekEnd.Before(dateOnly(start)) && !ws.After(dateOnly(end))
}

// EligibleWeekKeys lists the week-start keys of every calendar week
// overlapping [start, end], in chronological order.
func EligibleWeekKeys(start, end time.Time) []string {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil
	}
	var keys []string
	for ws := WeekStart(start); !ws.After(dateOnly(end)); ws = ws.AddDate(0, 0, 7) {
		keys = append(keys, ws.Format(entities.WeekKeyLayout))
	}
	return keys
}

// ParseWeekKey parses a week-start key and snaps it to its Sunday.
func ParseWeekKey(key string) (time.Time, error) {
	d, err := time.Parse(entities.WeekKeyLayout, key)
	if err != nil {
		return time.Time{}, err
	}
	return WeekStart(d), nil
}

func dateOnly(d time.Time) time.Time {
	d = d.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
