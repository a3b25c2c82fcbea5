package entities

// Reference data consumed by the rate resolver. These are read-only rows
// cached by the caller; the engines never mutate them.

// RoleRate is one (role, delivery center, currency) pricing row. A role may
// carry several of these, one per delivery-center/currency combination.
type RoleRate struct {
	RoleID           string  `json:"role_id"`
	DeliveryCenterID string  `json:"delivery_center_id"`
	Currency         string  `json:"currency"`
	InternalCostRate float64 `json:"internal_cost_rate"`
	ExternalRate     float64 `json:"external_rate"`
}

// Role is a staffable role with its rate table and its own default rates.
// The defaults apply, unconverted, when no RoleRate matches the estimate's
// delivery center.
type Role struct {
	ID                      string     `json:"id"`
	Name                    string     `json:"name"`
	Currency                string     `json:"currency"`
	DefaultInternalCostRate float64    `json:"default_internal_cost_rate"`
	DefaultExternalRate     float64    `json:"default_external_rate"`
	Rates                   []RoleRate `json:"rates,omitempty"`
}

// Employee is a named resource. When attached to a line item the cost side of
// the row is derived from the employee, never the rate side.
type Employee struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	DeliveryCenterID string  `json:"delivery_center_id"`
	Currency         string  `json:"currency"`
	InternalCostRate float64 `json:"internal_cost_rate"`
	InternalBillRate float64 `json:"internal_bill_rate"`
}

// DeliveryCenter is an organizational cost/billing location.
type DeliveryCenter struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CurrencyRate maps one currency unit to US dollars.
type CurrencyRate struct {
	Currency string  `json:"currency"`
	USDRate  float64 `json:"usd_rate"`
}
