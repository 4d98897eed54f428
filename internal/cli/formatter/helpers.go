package formatter

import (
	"fmt"
	"strconv"
	"strings"
)

// Amount formats a monetary value with thousands separators and no decimals.
func Amount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// Fraction formats an allocation fraction with two decimals.
func Fraction(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Effort formats an effort value, trimming a trailing zero (1.50 → 1.5,
// 2.00 → 2).
func Effort(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
