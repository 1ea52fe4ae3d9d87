package models

import "time"

// Setting is a free-form key/value row. Its remaining production use is the
// legacy per-type surcharge table (charge_hatchback, charge_sedan, charge_suv,
// charge_luxury) consulted only when a service has no pricing rules.
type Setting struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"size:60;uniqueIndex" json:"key"`
	Value string `gorm:"size:255" json:"value"`

	UpdatedAt time.Time `json:"updated_at"`
}
