// Package currency converts expense amounts into the trip's base currency.
//
// The rates are the fixed planning rates used throughout the trip, not live
// quotes. All aggregation and totals are computed in the base currency (TWD).
package currency

import "github.com/kuanensn/italy/internal/models"

// Base is the currency all amounts are normalized into.
const Base = models.CurrencyTWD

// toBase maps one unit of a non-base currency to base currency units.
var toBase = map[models.Currency]float64{
	models.CurrencyEUR: 34.5,
	models.CurrencyUSD: 31,
	models.CurrencyJPY: 0.22,
}

// Rate returns the multiplier that converts one unit of c into the base
// currency, and whether c is a recognized currency. The base currency and
// unrecognized currencies both yield 1; callers that care about the
// degraded path must check known.
func Rate(c models.Currency) (rate float64, known bool) {
	if c == Base {
		return 1, true
	}
	if r, ok := toBase[c]; ok {
		return r, true
	}
	return 1, false
}

// ToBase converts amount from c into the base currency. Unrecognized
// currencies pass through at face value rather than failing; the enumerated
// currency set is closed upstream, so that path is defensive only.
func ToBase(amount float64, c models.Currency) float64 {
	rate, _ := Rate(c)
	return amount * rate
}
