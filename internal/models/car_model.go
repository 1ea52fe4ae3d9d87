package models

import "time"

const (
	CarTypeHatchback = "hatchback"
	CarTypeSedan     = "sedan"
	CarTypeSUV       = "suv"
	CarTypeLuxury    = "luxury"
)

// CarTypes is the closed set of broad vehicle categories. The Segment field
// is the finer-grained label actually used for pricing lookups.
var CarTypes = []string{CarTypeHatchback, CarTypeSedan, CarTypeSUV, CarTypeLuxury}

func IsValidCarType(t string) bool {
	for _, v := range CarTypes {
		if v == t {
			return true
		}
	}
	return false
}

type CarModel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100" json:"name"`

	BrandID uint  `json:"brand_id"`
	Brand   Brand `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"brand"`

	Type    string `gorm:"size:20" json:"type"`
	Segment string `gorm:"size:60" json:"segment"`
	Image   string `gorm:"size:255" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
