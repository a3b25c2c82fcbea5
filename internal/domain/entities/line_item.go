package entities

import "time"

// WeekKeyLayout is the wire format for weekly-hour keys. A key is always the
// Sunday that starts the calendar week.
const WeekKeyLayout = "2006-01-02"

// LineItem is one persisted row of an estimate: a role (optionally a named
// employee) staffed for a date range at a resolved cost/rate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id
//
// Domain notes:
//   - DeliveryCenterID is always the owning estimate's invoice center.
//   - CustomHours maps week-start keys (WeekKeyLayout, Sundays) to hours.
//   - A UI row maps to at most one LineItem; the durable id is assigned by
//     the store on first create and never changes.
type LineItem struct {
	ID                        string             `json:"id"`
	EstimateID                string             `json:"estimate_id"`
	RoleID                    string             `json:"role_id"`
	EmployeeID                string             `json:"employee_id,omitempty"`
	DeliveryCenterID          string             `json:"delivery_center_id"`
	Cost                      float64            `json:"cost"`
	Rate                      float64            `json:"rate"`
	Currency                  string             `json:"currency"`
	StartDate                 time.Time          `json:"start_date"`
	EndDate                   time.Time          `json:"end_date"`
	Billable                  bool               `json:"billable"`
	BillableExpensePercentage float64            `json:"billable_expense_percentage"`
	DayNotes                  string             `json:"day_notes,omitempty"`
	WeekNotes                 string             `json:"week_notes,omitempty"`
	CustomHours               map[string]float64 `json:"custom_hours,omitempty"`
	CreatedAt                 time.Time          `json:"created_at"`
	UpdatedAt                 time.Time          `json:"updated_at"`
}

// LineItemPatch is a partial update against a persisted line item. Nil fields
// are left untouched by the store.
type LineItemPatch struct {
	RoleID                    *string    `json:"role_id,omitempty"`
	EmployeeID                *string    `json:"employee_id,omitempty"`
	Cost                      *float64   `json:"cost,omitempty"`
	Rate                      *float64   `json:"rate,omitempty"`
	StartDate                 *time.Time `json:"start_date,omitempty"`
	EndDate                   *time.Time `json:"end_date,omitempty"`
	Billable                  *bool      `json:"billable,omitempty"`
	BillableExpensePercentage *float64   `json:"billable_expense_percentage,omitempty"`
	DayNotes                  *string    `json:"day_notes,omitempty"`
	WeekNotes                 *string    `json:"week_notes,omitempty"`
}

// IsZero reports whether the patch carries no changes at all.
func (p LineItemPatch) IsZero() bool {
	return p.RoleID == nil && p.EmployeeID == nil && p.Cost == nil && p.Rate == nil &&
		p.StartDate == nil && p.EndDate == nil && p.Billable == nil &&
		p.BillableExpensePercentage == nil && p.DayNotes == nil && p.WeekNotes == nil
}
