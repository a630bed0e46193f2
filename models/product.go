package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal slots a product can be logged under.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
)

func ValidMealSlot(s string) bool {
	return s == MealBreakfast || s == MealLunch || s == MealDinner
}

// One logged food item. Calorie and the macro grams are always written
// together from a single nutrition lookup.
type Product struct {
	gorm.Model
	Name    string `gorm:"not null"`
	Amount  string // combined quantity string, e.g. "136g"
	Meal    string `gorm:"index"`
	Calorie int
	Protein float64
	Fats    float64
	Carbs   float64
	EatenAt time.Time `gorm:"index;not null"`
}

// NutrientSet is the ephemeral calorie/macro total over a set of products.
type NutrientSet struct {
	Calorie int     `json:"calorie"`
	Protein float64 `json:"protein"`
	Fats    float64 `json:"fats"`
	Carbs   float64 `json:"carbs"`
}

// DayCalorieSum is one calendar day's calorie total.
type DayCalorieSum struct {
	Date    string `json:"date"` // yyyy-mm-dd
	Calorie int    `json:"calorie"`
}
