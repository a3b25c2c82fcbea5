package usecase

import (
	"testing"

	"psaops/internal/domain/entities"
)

func testRole() entities.Role {
	return entities.Role{
		ID:                      "role-1",
		Name:                    "Senior Engineer",
		Currency:                "USD",
		DefaultInternalCostRate: 45,
		DefaultExternalRate:     95,
		Rates: []entities.RoleRate{
			{RoleID: "role-1", DeliveryCenterID: "dc-eu", Currency: "EUR", InternalCostRate: 40, ExternalRate: 100},
			{RoleID: "role-1", DeliveryCenterID: "dc-us", Currency: "USD", InternalCostRate: 55, ExternalRate: 120},
		},
	}
}

func TestRateResolver_RoleRates(t *testing.T) {
	fx := NewCurrencyTable(testRates())

	t.Run("matching role rate converted and rounded", func(t *testing.T) {
		var r RateResolver
		q, ok := r.Resolve(ResolveInput{
			Role:             testRole(),
			SelectedRoleID:   "role-1",
			DeliveryCenterID: "dc-eu",
			TargetCurrency:   "USD",
		}, fx)
		if !ok {
			t.Fatalf("expected resolution")
		}
		// EUR 100 external at 1.10 -> USD 110.00.
		if q.Rate != 110.00 {
			t.Fatalf("expected rate 110.00, got %v", q.Rate)
		}
		// EUR 40 cost -> USD 44.00.
		if q.Cost != 44.00 || q.CostFromEmployee {
			t.Fatalf("expected role-sourced cost 44.00, got %+v", q)
		}
	})

	t.Run("no matching center falls back to defaults unconverted", func(t *testing.T) {
		var r RateResolver
		q, ok := r.Resolve(ResolveInput{
			Role:             testRole(),
			SelectedRoleID:   "role-1",
			DeliveryCenterID: "dc-apac",
			TargetCurrency:   "USD",
		}, fx)
		if !ok {
			t.Fatalf("expected resolution")
		}
		if q.Rate != 95 || q.Cost != 45 {
			t.Fatalf("expected default rates 95/45, got %+v", q)
		}
	})

	t.Run("exact currency match preferred", func(t *testing.T) {
		role := testRole()
		role.Rates = append(role.Rates, entities.RoleRate{
			RoleID: "role-1", DeliveryCenterID: "dc-eu", Currency: "USD", InternalCostRate: 42, ExternalRate: 105,
		})
		var r RateResolver
		q, ok := r.Resolve(ResolveInput{
			Role:             role,
			SelectedRoleID:   "role-1",
			DeliveryCenterID: "dc-eu",
			TargetCurrency:   "USD",
		}, fx)
		if !ok || q.Rate != 105 {
			t.Fatalf("expected USD row to win, got %+v", q)
		}
	})
}

func TestRateResolver_EmployeeCost(t *testing.T) {
	fx := NewCurrencyTable(testRates())

	t.Run("home center matches: cost rate, no conversion", func(t *testing.T) {
		emp := &entities.Employee{
			ID: "emp-1", DeliveryCenterID: "dc-eu", Currency: "EUR",
			InternalCostRate: 50, InternalBillRate: 90,
		}
		var r RateResolver
		q, ok := r.Resolve(ResolveInput{
			Role:               testRole(),
			Employee:           emp,
			SelectedRoleID:     "role-1",
			SelectedEmployeeID: "emp-1",
			DeliveryCenterID:   "dc-eu",
			TargetCurrency:     "USD",
		}, fx)
		if !ok {
			t.Fatalf("expected resolution")
		}
		if q.Cost != 50 || !q.CostFromEmployee {
			t.Fatalf("expected unconverted employee cost 50, got %+v", q)
		}
		// Rate still comes from the role, never the employee.
		if q.Rate != 110.00 {
			t.Fatalf("expected role rate 110.00, got %v", q.Rate)
		}
	})

	t.Run("foreign center: bill rate converted from employee currency", func(t *testing.T) {
		emp := &entities.Employee{
			ID: "emp-2", DeliveryCenterID: "dc-in", Currency: "EUR",
			InternalCostRate: 30, InternalBillRate: 80,
		}
		var r RateResolver
		q, ok := r.Resolve(ResolveInput{
			Role:               testRole(),
			Employee:           emp,
			SelectedRoleID:     "role-1",
			SelectedEmployeeID: "emp-2",
			DeliveryCenterID:   "dc-eu",
			TargetCurrency:     "USD",
		}, fx)
		if !ok {
			t.Fatalf("expected resolution")
		}
		// EUR 80 bill rate -> USD 88.00.
		if q.Cost != 88.00 || !q.CostFromEmployee {
			t.Fatalf("expected converted bill rate 88.00, got %+v", q)
		}
	})
}

func TestRateResolver_Guards(t *testing.T) {
	fx := NewCurrencyTable(testRates())

	t.Run("role not loaded yet", func(t *testing.T) {
		var r RateResolver
		if _, ok := r.Resolve(ResolveInput{SelectedRoleID: "role-1", TargetCurrency: "USD"}, fx); ok {
			t.Fatalf("must skip while role data is missing")
		}
	})

	t.Run("stale role fetch discarded", func(t *testing.T) {
		var r RateResolver
		in := ResolveInput{Role: testRole(), SelectedRoleID: "role-2", DeliveryCenterID: "dc-eu", TargetCurrency: "USD"}
		if _, ok := r.Resolve(in, fx); ok {
			t.Fatalf("loaded role no longer selected; must skip")
		}
	})

	t.Run("stale employee fetch discarded", func(t *testing.T) {
		var r RateResolver
		in := ResolveInput{
			Role:               testRole(),
			Employee:           &entities.Employee{ID: "emp-old"},
			SelectedRoleID:     "role-1",
			SelectedEmployeeID: "emp-new",
			DeliveryCenterID:   "dc-eu",
			TargetCurrency:     "USD",
		}
		if _, ok := r.Resolve(in, fx); ok {
			t.Fatalf("loaded employee no longer selected; must skip")
		}
	})

	t.Run("memoized key skips a second application", func(t *testing.T) {
		var r RateResolver
		in := ResolveInput{Role: testRole(), SelectedRoleID: "role-1", DeliveryCenterID: "dc-eu", TargetCurrency: "USD"}
		if _, ok := r.Resolve(in, fx); !ok {
			t.Fatalf("first resolve must apply")
		}
		if _, ok := r.Resolve(in, fx); ok {
			t.Fatalf("identical combination must not re-apply")
		}

		// A different center resolves again.
		in.DeliveryCenterID = "dc-us"
		if _, ok := r.Resolve(in, fx); !ok {
			t.Fatalf("changed center must resolve")
		}

		// Invalidate drops the memo.
		r.Invalidate()
		if _, ok := r.Resolve(in, fx); !ok {
			t.Fatalf("resolve after Invalidate must apply")
		}
	})
}
