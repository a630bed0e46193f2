package models

import "time"

// Preference is a durable key-value pair backing the budget profile.
type Preference struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}
