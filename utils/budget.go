package utils

import "math"

// Activity levels, ordinal. Out-of-range values fall back to sedentary.
const (
	ActivitySedentary = 0
	ActivityLow       = 1
	ActivityMedium    = 2
	ActivityAthletic  = 3
)

var activityMultipliers = map[int]float64{
	ActivitySedentary: 1.2,
	ActivityLow:       1.4,
	ActivityMedium:    1.6,
	ActivityAthletic:  1.8,
}

// CalculateCalorieBudget estimates the daily calorie budget from biometrics:
// Mifflin-St Jeor basal rate scaled by the activity multiplier, floored to an
// integer. Inputs are not clamped; pathological biometrics give a
// correspondingly pathological budget.
func CalculateCalorieBudget(sex string, heightCm, weightKg float64, age, activity int) int {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == "Male" || sex == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := activityMultipliers[activity]
	if !ok {
		mult = activityMultipliers[ActivitySedentary]
	}
	return int(math.Floor(bmr * mult))
}

// MacroSplit holds daily gram targets derived from a calorie budget.
type MacroSplit struct {
	ProteinGrams int `json:"protein_grams"`
	FatGrams     int `json:"fat_grams"`
	CarbGrams    int `json:"carb_grams"`
}

// CalculateMacros splits a calorie budget 20% protein / 25% fat / 55% carbs
// by calories, converted to grams at 4, 9 and 4 kcal per gram. Each value is
// floored independently; the gram totals may sum to slightly under the
// budget and are not renormalized.
func CalculateMacros(calorieBudget int) MacroSplit {
	b := float64(calorieBudget)
	return MacroSplit{
		ProteinGrams: int(math.Floor(b * 0.20 / 4)),
		FatGrams:     int(math.Floor(b * 0.25 / 9)),
		CarbGrams:    int(math.Floor(b * 0.55 / 4)),
	}
}
