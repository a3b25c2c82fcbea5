package usecase

import (
	"psaops/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CurrencyTable converts amounts between currencies through their USD rates.
// It is a pure lookup built from the currency_rates reference rows and is
// passed explicitly into the engines that need it; there is no ambient
// package-level rate cache.
type CurrencyTable struct {
	usd map[string]decimal.Decimal
}

func NewCurrencyTable(rates []entities.CurrencyRate) CurrencyTable {
	usd := make(map[string]decimal.Decimal, len(rates))
	for _, r := range rates {
		if r.Currency == "" || r.USDRate <= 0 {
			continue
		}
		usd[r.Currency] = decimal.NewFromFloat(r.USDRate)
	}
	return CurrencyTable{usd: usd}
}

// Convert translates amount from one currency into another, rounded to
// cents. Same-currency conversion and any currency missing from the table
// leave the amount unchanged (still rounded), so an incomplete rate table
// degrades to pass-through rather than zeroing prices.
func (t CurrencyTable) Convert(amount float64, from, to string) float64 {
	d := decimal.NewFromFloat(amount)
	if from != to {
		fromUSD, okFrom := t.usd[from]
		toUSD, okTo := t.usd[to]
		if okFrom && okTo {
			d = d.Mul(fromUSD).Div(toUSD)
		}
	}
	return roundCents(d)
}

// Known reports whether the table carries a USD rate for the currency.
func (t CurrencyTable) Known(currency string) bool {
	_, ok := t.usd[currency]
	return ok
}

func roundCents(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// RoundCents rounds a monetary amount to 2 decimals.
func RoundCents(amount float64) float64 {
	return roundCents(decimal.NewFromFloat(amount))
}
