package models

import "gorm.io/gorm"

// A reusable named bundle of ingredients.
type Recipe struct {
	gorm.Model
	Name  string       `gorm:"not null"`
	Items []RecipeItem `gorm:"constraint:OnDelete:CASCADE"`
}

// One ingredient line within a recipe. Deleting the parent recipe
// cascades to its items.
type RecipeItem struct {
	gorm.Model
	RecipeID uint   `gorm:"index;not null"`
	Name     string `gorm:"not null"`
	Amount   string
	Calorie  int
	Protein  float64
	Fats     float64
	Carbs    float64
}
