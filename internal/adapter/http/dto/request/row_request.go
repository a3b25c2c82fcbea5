package request

import (
	"errors"
	"strings"
	"time"

	"psaops/internal/domain/entities"
)

var (
	ErrEmptyRowChange = errors.New("row change carries no fields")
	ErrInvalidRowDate = errors.New("invalid row date")
	ErrMissingHours   = errors.New("missing hours value")
)

const dateLayout = "2006-01-02"

// RowFieldRequest is a partial row edit. Absent fields are left untouched;
// an explicitly empty employee_id clears the assignment.
type RowFieldRequest struct {
	RoleID                    *string  `json:"role_id"`
	EmployeeID                *string  `json:"employee_id"`
	Cost                      *float64 `json:"cost"`
	Rate                      *float64 `json:"rate"`
	StartDate                 *string  `json:"start_date"`
	EndDate                   *string  `json:"end_date"`
	Billable                  *bool    `json:"billable"`
	BillableExpensePercentage *float64 `json:"billable_expense_percentage"`
	DayNotes                  *string  `json:"day_notes"`
	WeekNotes                 *string  `json:"week_notes"`
}

// ResolvePatch translates the payload into the domain patch.
func (r RowFieldRequest) ResolvePatch() (entities.LineItemPatch, error) {
	patch := entities.LineItemPatch{
		Cost:                      r.Cost,
		Rate:                      r.Rate,
		Billable:                  r.Billable,
		BillableExpensePercentage: r.BillableExpensePercentage,
		DayNotes:                  r.DayNotes,
		WeekNotes:                 r.WeekNotes,
	}
	if r.RoleID != nil {
		v := strings.TrimSpace(*r.RoleID)
		patch.RoleID = &v
	}
	if r.EmployeeID != nil {
		v := strings.TrimSpace(*r.EmployeeID)
		patch.EmployeeID = &v
	}

	var err error
	if patch.StartDate, err = parseDate(r.StartDate); err != nil {
		return entities.LineItemPatch{}, err
	}
	if patch.EndDate, err = parseDate(r.EndDate); err != nil {
		return entities.LineItemPatch{}, err
	}

	if patch.IsZero() {
		return entities.LineItemPatch{}, ErrEmptyRowChange
	}
	return patch, nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil, ErrInvalidRowDate
	}
	return &t, nil
}

// WeekHoursRequest carries the hours value for a single week or for a fill
// across the row's date range.
type WeekHoursRequest struct {
	Hours *float64 `json:"hours" binding:"required"`
}

func (r WeekHoursRequest) ResolveHours() (float64, error) {
	if r.Hours == nil {
		return 0, ErrMissingHours
	}
	return *r.Hours, nil
}
