package models

import "time"

// Admin is a database-backed dashboard account. The master admin configured
// through the environment is checked first and never stored here.
type Admin struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"size:120;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"size:100" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
