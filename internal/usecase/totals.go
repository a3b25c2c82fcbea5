package usecase

import "github.com/shopspring/decimal"

// Totals is the derived money/hour view of one row or a whole estimate.
// Margin percentages carry an explicit validity flag instead of NaN: a zero
// denominator renders as "not applicable", never as NaN or Infinity.
type Totals struct {
	Hours                   float64
	Cost                    float64
	Revenue                 float64
	BillableExpense         float64
	Margin                  float64
	MarginPctWithExpenses   float64
	MarginPctWithoutExpense float64
	MarginPctWithValid      bool
	MarginPctWithoutValid   bool
}

// ComputeTotals derives a row's totals from its weekly hours and resolved
// cost/rate. Pure and reproducible; callers recompute it synchronously on
// every local edit so displayed totals never lag a keystroke.
func ComputeTotals(hoursByWeek map[string]float64, cost, rate, billableExpensePct float64) Totals {
	hours := decimal.Zero
	for _, h := range hoursByWeek {
		if h > 0 {
			hours = hours.Add(decimal.NewFromFloat(h))
		}
	}

	totalCost := hours.Mul(decimal.NewFromFloat(cost))
	revenue := hours.Mul(decimal.NewFromFloat(rate))
	expense := decimal.NewFromFloat(billableExpensePct).Div(decimal.NewFromInt(100)).Mul(revenue)
	margin := revenue.Sub(totalCost)

	t := Totals{
		Cost:            roundCents(totalCost),
		Revenue:         roundCents(revenue),
		BillableExpense: roundCents(expense),
		Margin:          roundCents(margin),
	}
	t.Hours, _ = hours.Float64()
	t.fillMarginPcts(margin, revenue, expense)
	return t
}

// CombineTotals folds per-row totals into estimate-wide totals. Amounts sum;
// margin percentages are recomputed from the summed amounts, not averaged.
func CombineTotals(rows []Totals) Totals {
	hours, cost, revenue, expense := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, r := range rows {
		hours = hours.Add(decimal.NewFromFloat(r.Hours))
		cost = cost.Add(decimal.NewFromFloat(r.Cost))
		revenue = revenue.Add(decimal.NewFromFloat(r.Revenue))
		expense = expense.Add(decimal.NewFromFloat(r.BillableExpense))
	}
	margin := revenue.Sub(cost)

	t := Totals{
		Cost:            roundCents(cost),
		Revenue:         roundCents(revenue),
		BillableExpense: roundCents(expense),
		Margin:          roundCents(margin),
	}
	t.Hours, _ = hours.Float64()
	t.fillMarginPcts(margin, revenue, expense)
	return t
}

func (t *Totals) fillMarginPcts(margin, revenue, expense decimal.Decimal) {
	if !revenue.IsZero() {
		pct, _ := margin.Div(revenue).Round(4).Float64()
		t.MarginPctWithoutExpense = pct
		t.MarginPctWithoutValid = true
	}
	if denom := revenue.Add(expense); !denom.IsZero() {
		pct, _ := margin.Div(denom).Round(4).Float64()
		t.MarginPctWithExpenses = pct
		t.MarginPctWithValid = true
	}
}
