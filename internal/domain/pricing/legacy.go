package pricing

import "strconv"

// SurchargeKeys are the historical per-type settings rows
// (charge_hatchback .. charge_luxury). The scheme predates per-service
// pricing rules and survives only as a fallback for services without rules.
var SurchargeKeys = map[string]string{
	"hatchback": "charge_hatchback",
	"sedan":     "charge_sedan",
	"suv":       "charge_suv",
	"luxury":    "charge_luxury",
}

// DefaultSurcharges seeds the legacy table: a flat amount added on top of
// the hatchback baseline per broad car type.
var DefaultSurcharges = map[string]string{
	"charge_hatchback": "0",
	"charge_sedan":     "100",
	"charge_suv":       "200",
	"charge_luxury":    "400",
}

// ResolveLegacy computes basePrice plus the flat per-type surcharge from the
// settings table. It must only be consulted when the service carries no
// pricing rules; rules always win.
func ResolveLegacy(basePrice float64, carType string, settings map[string]string) float64 {
	key, ok := SurchargeKeys[carType]
	if !ok {
		return basePrice
	}

	raw, ok := settings[key]
	if !ok {
		return basePrice
	}

	surcharge, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return basePrice
	}

	return basePrice + surcharge
}
