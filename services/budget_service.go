package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"calorietrack/utils"

	"gorm.io/gorm"
)

// Preference keys of the budget profile. Budget and the macro grams are
// derived fields; only Recompute writes them.
const (
	prefSex       = "sex"
	prefHeight    = "height_cm"
	prefBodyMass  = "body_mass_kg"
	prefBirthDate = "birth_date"
	prefActivity  = "activity_level"
	prefBudget    = "calorie_budget"
	prefProtein   = "protein_grams"
	prefFats      = "fat_grams"
	prefCarbs     = "carb_grams"
)

// BudgetProfile is the persisted biometric snapshot plus the budget derived
// from it.
type BudgetProfile struct {
	Sex           string           `json:"sex"`
	HeightCm      float64          `json:"height_cm"`
	BodyMassKg    float64          `json:"body_mass_kg"`
	BirthDate     string           `json:"birth_date"` // yyyy-mm-dd
	ActivityLevel int              `json:"activity_level"`
	CalorieBudget int              `json:"calorie_budget"`
	Macros        utils.MacroSplit `json:"macros"`
}

// BudgetInput is the user-editable part of the profile.
type BudgetInput struct {
	Sex           string  `json:"sex"`
	HeightCm      float64 `json:"height_cm"`
	BodyMassKg    float64 `json:"body_mass_kg"`
	BirthDate     string  `json:"birth_date"`
	ActivityLevel int     `json:"activity_level"`
}

// BudgetService derives the calorie/macro budget from biometrics and keeps
// the whole profile in the preference store.
type BudgetService struct{ db *gorm.DB }

func NewBudgetService(db *gorm.DB) *BudgetService { return &BudgetService{db: db} }

// AgeAt returns whole years between the yyyy-mm-dd birth date and now.
func AgeAt(birthDate string, now time.Time) (int, error) {
	bd, err := time.ParseInLocation("2006-01-02", birthDate, now.Location())
	if err != nil {
		return 0, fmt.Errorf("invalid birth date %q: %w", birthDate, err)
	}
	age := now.Year() - bd.Year()
	if now.Before(bd.AddDate(age, 0, 0)) {
		age--
	}
	return age, nil
}

// Recompute derives the calorie budget and macro targets from the input and
// persists inputs and derived fields together in one transaction, so a
// concurrent reader never observes a stale budget paired with new
// biometrics.
func (s *BudgetService) Recompute(ctx context.Context, in BudgetInput) (*BudgetProfile, error) {
	if in.HeightCm <= 0 || in.BodyMassKg <= 0 {
		return nil, fmt.Errorf("height and body mass must be positive")
	}

	age, err := AgeAt(in.BirthDate, time.Now())
	if err != nil {
		return nil, err
	}

	budget := utils.CalculateCalorieBudget(in.Sex, in.HeightCm, in.BodyMassKg, age, in.ActivityLevel)
	macros := utils.CalculateMacros(budget)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pairs := map[string]string{
			prefSex:       in.Sex,
			prefHeight:    strconv.FormatFloat(in.HeightCm, 'f', -1, 64),
			prefBodyMass:  strconv.FormatFloat(in.BodyMassKg, 'f', -1, 64),
			prefBirthDate: in.BirthDate,
			prefActivity:  strconv.Itoa(in.ActivityLevel),
			prefBudget:    strconv.Itoa(budget),
			prefProtein:   strconv.Itoa(macros.ProteinGrams),
			prefFats:      strconv.Itoa(macros.FatGrams),
			prefCarbs:     strconv.Itoa(macros.CarbGrams),
		}
		for k, v := range pairs {
			if err := putString(tx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &BudgetProfile{
		Sex:           in.Sex,
		HeightCm:      in.HeightCm,
		BodyMassKg:    in.BodyMassKg,
		BirthDate:     in.BirthDate,
		ActivityLevel: in.ActivityLevel,
		CalorieBudget: budget,
		Macros:        macros,
	}, nil
}

// Load reads the persisted profile. Never-written keys come back as zero
// values.
func (s *BudgetService) Load(ctx context.Context) (*BudgetProfile, error) {
	db := s.db.WithContext(ctx)

	var p BudgetProfile
	var err error
	if p.Sex, err = getString(db, prefSex, ""); err != nil {
		return nil, err
	}

	heightRaw, err := getString(db, prefHeight, "0")
	if err != nil {
		return nil, err
	}
	p.HeightCm, _ = strconv.ParseFloat(heightRaw, 64)

	massRaw, err := getString(db, prefBodyMass, "0")
	if err != nil {
		return nil, err
	}
	p.BodyMassKg, _ = strconv.ParseFloat(massRaw, 64)

	if p.BirthDate, err = getString(db, prefBirthDate, ""); err != nil {
		return nil, err
	}
	if p.ActivityLevel, err = getInt(db, prefActivity, 0); err != nil {
		return nil, err
	}
	if p.CalorieBudget, err = getInt(db, prefBudget, 0); err != nil {
		return nil, err
	}
	if p.Macros.ProteinGrams, err = getInt(db, prefProtein, 0); err != nil {
		return nil, err
	}
	if p.Macros.FatGrams, err = getInt(db, prefFats, 0); err != nil {
		return nil, err
	}
	if p.Macros.CarbGrams, err = getInt(db, prefCarbs, 0); err != nil {
		return nil, err
	}
	return &p, nil
}
