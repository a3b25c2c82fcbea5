package entities

import "time"

// Estimate is the staffing estimate that owns the line-item grid.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Domain notes:
//   - InvoiceCenterID is the estimate's fixed invoice delivery center. Every
//     line item inherits it; a row never chooses its own center.
//   - Currency is the estimate's presentation currency; all resolved rates
//     are converted into it.
type Estimate struct {
	ID              string    `json:"id"`
	OpportunityID   string    `json:"opportunity_id"`
	Name            string    `json:"name"`
	InvoiceCenterID string    `json:"invoice_center_id"`
	Currency        string    `json:"currency"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// EstimateDetail is the authoritative snapshot returned by the store. The
// line-item list is ground truth for reconciliation: rows whose remembered id
// is absent here must revert to empty.
type EstimateDetail struct {
	Estimate  Estimate   `json:"estimate"`
	LineItems []LineItem `json:"line_items"`
}
