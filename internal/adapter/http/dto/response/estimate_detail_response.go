package response

import (
	"time"

	"psaops/internal/usecase"
)

// TotalsResponse renders derived money/hour totals. The margin percentages
// are null when the denominator is zero, never NaN.
type TotalsResponse struct {
	Hours                   float64  `json:"hours"`
	Cost                    float64  `json:"cost"`
	Revenue                 float64  `json:"revenue"`
	BillableExpense         float64  `json:"billable_expense"`
	Margin                  float64  `json:"margin"`
	MarginPctWithExpenses   *float64 `json:"margin_pct_with_expenses"`
	MarginPctWithoutExpense *float64 `json:"margin_pct_without_expense"`
}

func FromTotals(t usecase.Totals) TotalsResponse {
	out := TotalsResponse{
		Hours:           t.Hours,
		Cost:            t.Cost,
		Revenue:         t.Revenue,
		BillableExpense: t.BillableExpense,
		Margin:          t.Margin,
	}
	if t.MarginPctWithValid {
		v := t.MarginPctWithExpenses
		out.MarginPctWithExpenses = &v
	}
	if t.MarginPctWithoutValid {
		v := t.MarginPctWithoutExpense
		out.MarginPctWithoutExpense = &v
	}
	return out
}

// RowResponse is one grid row: its slot key, lifecycle state, the line-item
// fields, and the row's derived totals.
type RowResponse struct {
	RowKey                    string             `json:"row_key"`
	State                     string             `json:"state"`
	LineItemID                string             `json:"line_item_id,omitempty"`
	Error                     string             `json:"error,omitempty"`
	RoleID                    string             `json:"role_id,omitempty"`
	EmployeeID                string             `json:"employee_id,omitempty"`
	DeliveryCenterID          string             `json:"delivery_center_id,omitempty"`
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
	Totals                    TotalsResponse     `json:"totals"`
}

func FromRowSnapshot(s usecase.RowSnapshot) RowResponse {
	return RowResponse{
		RowKey:                    s.RowKey,
		State:                     s.Phase.String(),
		LineItemID:                s.LineItemID,
		Error:                     s.ErrorMessage,
		RoleID:                    s.Item.RoleID,
		EmployeeID:                s.Item.EmployeeID,
		DeliveryCenterID:          s.Item.DeliveryCenterID,
		Cost:                      s.Item.Cost,
		Rate:                      s.Item.Rate,
		Currency:                  s.Item.Currency,
		StartDate:                 s.Item.StartDate,
		EndDate:                   s.Item.EndDate,
		Billable:                  s.Item.Billable,
		BillableExpensePercentage: s.Item.BillableExpensePercentage,
		DayNotes:                  s.Item.DayNotes,
		WeekNotes:                 s.Item.WeekNotes,
		CustomHours:               s.Item.CustomHours,
		Totals:                    FromTotals(s.Totals),
	}
}

// EstimateDetailResponse is the reconciled grid view of one estimate.
type EstimateDetailResponse struct {
	EstimateID        string         `json:"estimate_id"`
	OpportunityID     string         `json:"opportunity_id"`
	Name              string         `json:"name"`
	InvoiceCenterID   string         `json:"invoice_center_id"`
	InvoiceCenterName string         `json:"invoice_center_name,omitempty"`
	Currency          string         `json:"currency"`
	StartDate         time.Time      `json:"start_date"`
	EndDate           time.Time      `json:"end_date"`
	Rows              []RowResponse  `json:"rows"`
	Totals            TotalsResponse `json:"totals"`
}

func FromEditorDetail(d usecase.EditorDetail) EstimateDetailResponse {
	rows := make([]RowResponse, 0, len(d.Rows))
	for _, r := range d.Rows {
		rows = append(rows, FromRowSnapshot(r))
	}
	return EstimateDetailResponse{
		EstimateID:        d.Estimate.ID,
		OpportunityID:     d.Estimate.OpportunityID,
		Name:              d.Estimate.Name,
		InvoiceCenterID:   d.Estimate.InvoiceCenterID,
		InvoiceCenterName: d.InvoiceCenterName,
		Currency:          d.Estimate.Currency,
		StartDate:         d.Estimate.StartDate,
		EndDate:           d.Estimate.EndDate,
		Rows:              rows,
		Totals:            FromTotals(d.Totals),
	}
}
