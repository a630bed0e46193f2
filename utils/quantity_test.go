package utils

import "testing"

func TestSplitQuantity(t *testing.T) {
	cases := []struct {
		in     string
		amount string
		unit   string
	}{
		{"136g", "136", "g"},
		{"1kg", "1", "kg"},
		{"250ml", "250", "ml"},
		{"g", "", "g"},
		{"42", "42", ""},
		{"", "", ""},
		{"1x2y3", "123", "xy"},
	}

	for _, tc := range cases {
		amount, unit := SplitQuantity(tc.in)
		if amount != tc.amount || unit != tc.unit {
			t.Errorf("SplitQuantity(%q) = (%q, %q), want (%q, %q)",
				tc.in, amount, unit, tc.amount, tc.unit)
		}
	}
}

func TestSplitQuantityPreservesCharacters(t *testing.T) {
	// Every input character lands in exactly one of the two parts, order
	// preserved within each.
	for _, s := range []string{"136g", "12oz", "0.5l", "abc123def"} {
		amount, unit := SplitQuantity(s)
		if len(amount)+len(unit) != len(s) {
			t.Errorf("SplitQuantity(%q): parts %q + %q do not cover input", s, amount, unit)
		}
		for _, r := range amount {
			if r < '0' || r > '9' {
				t.Errorf("SplitQuantity(%q): non-digit %q in amount", s, r)
			}
		}
		for _, r := range unit {
			if r >= '0' && r <= '9' {
				t.Errorf("SplitQuantity(%q): digit %q in unit", s, r)
			}
		}
	}
}
