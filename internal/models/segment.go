package models

import "time"

// Segment is the controlled vocabulary for pricing keys. CarModel.Segment and
// Service pricing-rule keys must reference a registered segment, so a typo in
// either place is rejected at write time instead of silently falling back to
// the base price at booking time.
type Segment struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:60;uniqueIndex" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
