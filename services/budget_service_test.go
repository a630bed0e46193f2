package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"calorietrack/utils"
)

func TestAgeAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	cases := []struct {
		birth string
		want  int
	}{
		{"1995-06-15", 30}, // birthday today
		{"1995-06-16", 29}, // birthday tomorrow
		{"1995-06-14", 30},
		{"2025-01-01", 0},
	}

	for _, tc := range cases {
		got, err := AgeAt(tc.birth, now)
		if err != nil {
			t.Fatalf("AgeAt(%q) failed: %v", tc.birth, err)
		}
		if got != tc.want {
			t.Errorf("AgeAt(%q) = %d, want %d", tc.birth, got, tc.want)
		}
	}
}

func TestAgeAtRejectsMalformedDate(t *testing.T) {
	if _, err := AgeAt("15/06/1995", time.Now()); err == nil {
		t.Fatal("expected error for malformed birth date")
	}
}

func TestRecomputePersistsWholeProfileTogether(t *testing.T) {
	db := testDB(t)
	svc := NewBudgetService(db)
	ctx := context.Background()

	in := BudgetInput{
		Sex:           "male",
		HeightCm:      180,
		BodyMassKg:    80,
		BirthDate:     "1990-01-01",
		ActivityLevel: utils.ActivityMedium,
	}
	got, err := svc.Recompute(ctx, in)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}

	age, err := AgeAt(in.BirthDate, time.Now())
	if err != nil {
		t.Fatalf("age: %v", err)
	}
	wantBudget := utils.CalculateCalorieBudget(in.Sex, in.HeightCm, in.BodyMassKg, age, in.ActivityLevel)
	wantMacros := utils.CalculateMacros(wantBudget)

	if got.CalorieBudget != wantBudget {
		t.Errorf("budget = %d, want %d", got.CalorieBudget, wantBudget)
	}
	if got.Macros != wantMacros {
		t.Errorf("macros = %+v, want %+v", got.Macros, wantMacros)
	}

	// every input and every derived field is durable after the one call
	for key, want := range map[string]string{
		prefSex:       "male",
		prefHeight:    "180",
		prefBodyMass:  "80",
		prefBirthDate: "1990-01-01",
		prefActivity:  strconv.Itoa(utils.ActivityMedium),
		prefBudget:    strconv.Itoa(wantBudget),
		prefProtein:   strconv.Itoa(wantMacros.ProteinGrams),
		prefFats:      strconv.Itoa(wantMacros.FatGrams),
		prefCarbs:     strconv.Itoa(wantMacros.CarbGrams),
	} {
		stored, err := getString(db, key, "<missing>")
		if err != nil {
			t.Fatalf("read %s: %v", key, err)
		}
		if stored != want {
			t.Errorf("%s = %q, want %q", key, stored, want)
		}
	}

	// a reader sees inputs and derived fields from the same recompute
	loaded, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != *got {
		t.Errorf("loaded profile %+v differs from recomputed %+v", loaded, got)
	}
}

func TestRecomputeRejectsNonPositiveBiometrics(t *testing.T) {
	svc := NewBudgetService(testDB(t))

	in := BudgetInput{Sex: "female", HeightCm: 0, BodyMassKg: 60, BirthDate: "1990-01-01"}
	if _, err := svc.Recompute(context.Background(), in); err == nil {
		t.Fatal("expected error for zero height")
	}
}
