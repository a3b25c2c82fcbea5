package usecase

import (
	"log"

	"psaops/internal/domain/entities"
)

// RateQuote is the outcome of one successful rate resolution.
type RateQuote struct {
	Cost float64
	Rate float64
	// CostFromEmployee marks whether the cost side came from the attached
	// employee instead of the role's rate table.
	CostFromEmployee bool
}

// ResolveInput carries the loaded reference data together with the ids the
// user currently has selected. The loaded entities may be stale: a fetch can
// settle after the selection already moved on, so ids are compared before any
// number is applied.
type ResolveInput struct {
	Role               entities.Role
	Employee           *entities.Employee
	SelectedRoleID     string
	SelectedEmployeeID string
	DeliveryCenterID   string
	TargetCurrency     string
}

type resolveKey struct {
	roleID     string
	employeeID string
	centerID   string
	currency   string
}

// RateResolver computes the cost and bill rate for one line-item row from the
// role/employee/delivery-center/currency lattice.
//
// Resolution is idempotent per input combination: the last successfully
// applied (role, employee, center, currency) key is memoized and a repeat
// resolves to a skip, so recomputation never fights a user-entered override.
type RateResolver struct {
	last resolveKey
	has  bool
}

// Resolve returns the quote to apply, or ok=false when resolution must be
// skipped: reference data not loaded yet, loaded data stale against the
// current selection, or the input combination already applied.
func (r *RateResolver) Resolve(in ResolveInput, fx CurrencyTable) (RateQuote, bool) {
	if in.SelectedRoleID == "" || in.Role.ID == "" {
		return RateQuote{}, false
	}
	if in.Role.ID != in.SelectedRoleID {
		log.Printf("[rates][resolver] stale role fetch discarded loaded=%s selected=%s", in.Role.ID, in.SelectedRoleID)
		return RateQuote{}, false
	}
	if in.SelectedEmployeeID != "" && (in.Employee == nil || in.Employee.ID != in.SelectedEmployeeID) {
		log.Printf("[rates][resolver] stale employee fetch discarded selected=%s", in.SelectedEmployeeID)
		return RateQuote{}, false
	}

	key := resolveKey{
		roleID:     in.SelectedRoleID,
		employeeID: in.SelectedEmployeeID,
		centerID:   in.DeliveryCenterID,
		currency:   in.TargetCurrency,
	}
	if r.has && r.last == key {
		return RateQuote{}, false
	}

	q := RateQuote{}
	rr, found := matchRoleRate(in.Role, in.DeliveryCenterID, in.TargetCurrency)
	if found {
		q.Rate = fx.Convert(rr.ExternalRate, rr.Currency, in.TargetCurrency)
	} else {
		// No rate row for this center: the role's own default applies as-is.
		q.Rate = RoundCents(in.Role.DefaultExternalRate)
	}

	switch {
	case in.SelectedEmployeeID == "":
		if found {
			q.Cost = fx.Convert(rr.InternalCostRate, rr.Currency, in.TargetCurrency)
		} else {
			q.Cost = RoundCents(in.Role.DefaultInternalCostRate)
		}
	case in.Employee.DeliveryCenterID == in.DeliveryCenterID:
		// Home-center staffing: the employee's cost rate applies with no
		// conversion, whatever the nominal currency fields say.
		q.Cost = RoundCents(in.Employee.InternalCostRate)
		q.CostFromEmployee = true
	default:
		q.Cost = fx.Convert(in.Employee.InternalBillRate, in.Employee.Currency, in.TargetCurrency)
		q.CostFromEmployee = true
	}

	r.last = key
	r.has = true
	return q, true
}

// Invalidate drops the memoized key so the next Resolve recomputes. Called
// when the row is reset or reseeded from the authoritative list.
func (r *RateResolver) Invalidate() {
	r.has = false
}

// matchRoleRate picks the role's rate row for a delivery center, preferring
// an exact currency match when the role prices the center in more than one
// currency.
func matchRoleRate(role entities.Role, centerID, currency string) (entities.RoleRate, bool) {
	var fallback entities.RoleRate
	var has bool
	for _, rr := range role.Rates {
		if rr.DeliveryCenterID != centerID {
			continue
		}
		if rr.Currency == currency {
			return rr, true
		}
		if !has {
			fallback = rr
			has = true
		}
	}
	return fallback, has
}
