package shared

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount reads a salary typed into a form: surrounding blanks, a
// leading "S/" currency mark and thousands commas are tolerated. ok is
// false for blank or non-numeric text, which callers treat as "not
// computed yet".
func ParseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "S/")
	s = strings.TrimPrefix(s, "s/")
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
