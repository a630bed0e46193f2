package utils

import "testing"

func TestCalculateCalorieBudget(t *testing.T) {
	// male bmr = 10*80 + 6.25*180 - 5*30 + 5 = 1780
	// female bmr = 10*80 + 6.25*180 - 5*30 - 161 = 1614
	cases := []struct {
		sex      string
		height   float64
		weight   float64
		age      int
		activity int
		want     int
	}{
		{"male", 180, 80, 30, ActivityLow, 2492},         // 1780 * 1.4
		{"male", 180, 80, 30, ActivityMedium, 2848},      // 1780 * 1.6
		{"female", 180, 80, 30, ActivitySedentary, 1936}, // floor(1614 * 1.2)
		{"male", 180, 80, 30, 99, 2136},                  // out of range -> 1.2
		{"male", 180, 80, 30, -1, 2136},
	}

	for _, tc := range cases {
		got := CalculateCalorieBudget(tc.sex, tc.height, tc.weight, tc.age, tc.activity)
		if got != tc.want {
			t.Errorf("CalculateCalorieBudget(%q, %v, %v, %d, %d) = %d, want %d",
				tc.sex, tc.height, tc.weight, tc.age, tc.activity, got, tc.want)
		}
	}
}

func TestCalculateMacros(t *testing.T) {
	m := CalculateMacros(2000)
	if m.ProteinGrams != 100 {
		t.Errorf("protein = %d, want 100", m.ProteinGrams)
	}
	if m.FatGrams != 55 {
		t.Errorf("fat = %d, want 55", m.FatGrams)
	}
	if m.CarbGrams != 275 {
		t.Errorf("carbs = %d, want 275", m.CarbGrams)
	}
}

func TestCalculateMacrosZeroBudget(t *testing.T) {
	m := CalculateMacros(0)
	if m.ProteinGrams != 0 || m.FatGrams != 0 || m.CarbGrams != 0 {
		t.Errorf("CalculateMacros(0) = %+v, want all zeros", m)
	}
}
