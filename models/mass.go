package models

import (
	"time"

	"gorm.io/gorm"
)

// One body-mass sample in kilograms. The service surfaces at most one
// logical measurement per calendar day; the schema does not enforce it.
type Mass struct {
	gorm.Model
	Value      float64   `gorm:"not null"`
	MeasuredAt time.Time `gorm:"index;not null"`
}
