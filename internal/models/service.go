package models

import "time"

type Service struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:120" json:"title"`
	Description string `gorm:"size:1000" json:"description"`

	BasePrice float64 `json:"base_price"`

	// PricingRules maps a segment label to an absolute price that replaces
	// BasePrice for cars in that segment. Keys are validated against the
	// segments vocabulary at write time; lookup stays exact-string-match.
	PricingRules PricingRules `gorm:"type:jsonb" json:"pricing_rules"`

	Features StringList `gorm:"type:jsonb" json:"features"`

	Image string `gorm:"size:255" json:"image"`

	// AvailableLocations narrows where the service is offered. An empty list
	// means everywhere; the current deployment leaves it empty.
	AvailableLocations UintList `gorm:"type:jsonb" json:"available_locations"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AvailableAt reports whether the service is offered at the given location.
func (s *Service) AvailableAt(locationID uint) bool {
	if len(s.AvailableLocations) == 0 {
		return true
	}
	for _, id := range s.AvailableLocations {
		if id == locationID {
			return true
		}
	}
	return false
}
