package market

import "math"

// PriceRange is the computed price band for one location, in local currency.
type PriceRange struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Recommended float64 `json:"recommended"`
	Currency    string  `json:"currency"`
}

// Per-location pricing adjustments relative to the base ranges.
var priceAdjustments = map[string]float64{
	"Germany": 1.1,
	"Japan":   1.15,
	"India":   0.9,
	"Brazil":  0.95,
}

// Pricing computes the price band for a location given its AI market score.
// Unknown locations fall back to USA reference data rather than failing, so a
// single bad location cannot sink an aggregate analysis.
// TODO: the USA fallback mirrors upstream behavior but may hide caller bugs;
// consider returning an error once callers validate locations themselves.
func Pricing(table Table, location string, marketScore float64) PriceRange {
	entry, ok := table.Get(location)
	if !ok {
		entry, ok = table.Get("USA")
		if !ok {
			return PriceRange{Currency: "USD"}
		}
	}

	scoreMultiplier := marketScore / 75.0
	adjustment, ok := priceAdjustments[location]
	if !ok {
		adjustment = 1.0
	}

	min := round2(entry.BasePriceMin * scoreMultiplier * adjustment)
	max := round2(entry.BasePriceMax * scoreMultiplier * adjustment)

	return PriceRange{
		Min:         min,
		Max:         max,
		Recommended: round2((min + max) / 2),
		Currency:    entry.Currency,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
