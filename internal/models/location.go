package models

import "time"

type Location struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	City string `gorm:"size:100;uniqueIndex" json:"city"`

	Areas StringList `gorm:"type:jsonb" json:"areas"`

	// IsActive defaults to true in application code, not the schema: a bool
	// column with a database default would silently drop explicit false on
	// insert (gorm skips zero values when a default exists).
	IsActive bool `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
