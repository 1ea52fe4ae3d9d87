package models

import "time"

type Brand struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex" json:"name"`

	// Logo holds the stored file name under the uploads directory when the
	// logo was uploaded through the API, or a seeded image reference.
	Logo string `gorm:"size:255" json:"logo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
