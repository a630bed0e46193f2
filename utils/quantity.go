package utils

import "strings"

// ParseAmount returns the digit characters of a combined quantity string
// such as "136g", in their original order. No digits yields "".
func ParseAmount(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseUnit returns the non-digit characters of a combined quantity string,
// in their original order. No unit suffix yields "".
func ParseUnit(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SplitQuantity splits "136g" into ("136", "g"). Malformed input degrades to
// empty parts; callers validate non-emptiness before use.
func SplitQuantity(s string) (amount, unit string) {
	return ParseAmount(s), ParseUnit(s)
}
