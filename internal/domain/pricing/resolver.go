package pricing

import "github.com/gleamhub/carwash-booking/internal/models"

// Resolve returns the price a service charges for the selected car model.
//
// The lookup is an exact string match between the model's segment label and
// the service's pricing-rule keys. An unmatched segment falls back to the
// base price without error; callers relying on a rule must make sure the
// label is registered in the segments vocabulary.
func Resolve(service *models.Service, model *models.CarModel) float64 {
	if model == nil {
		return service.BasePrice
	}
	return ResolveSegment(service, model.Segment)
}

// ResolveSegment is Resolve for callers that only carry the segment label.
func ResolveSegment(service *models.Service, segment string) float64 {
	if segment == "" {
		return service.BasePrice
	}
	if price, ok := service.PricingRules[segment]; ok {
		return price
	}
	return service.BasePrice
}
