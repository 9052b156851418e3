// Package normalize converts the raw string cells of the published fund
// spreadsheet into typed values. Every cleaning rule degrades to a zero
// value on malformed input; nothing in this package returns an error.
package normalize

import (
	"strconv"
	"strings"
)

// Text trims surrounding whitespace and keeps the cell as-is otherwise.
func Text(s string) string {
	return strings.TrimSpace(s)
}

// Percent parses a percentage-formatted cell such as "84.5%" into 84.5.
// The value stays expressed in percent, not as a fraction.
func Percent(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Currency parses a currency-formatted cell such as "$1,234.56" into 1234.56.
func Currency(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Magnitude parses an AUM-style cell with an optional magnitude suffix:
// "$3.95M" -> 3_950_000, "$8.63B" -> 8_630_000_000, "1250000" -> 1_250_000.
func Magnitude(s string) float64 {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")

	scale := 1.0
	switch {
	case strings.HasSuffix(s, "M"):
		scale = 1e6
		s = strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "B"):
		scale = 1e9
		s = strings.TrimSuffix(s, "B")
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v * scale
}
