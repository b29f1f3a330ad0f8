// Package text holds small formatting helpers shared by the engine feed and
// the terminal UI.
package text

import (
	"fmt"
	"strings"
)

// Money renders a dollar amount with thousands separators. Negative values
// keep the sign in front of the dollar sign.
func Money(v int) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%d", v)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

// Signed renders an integer with an explicit sign, "+0" excluded.
func Signed(v int) string {
	if v > 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}

// StatLabel maps an internal stat key to its display name.
func StatLabel(key string) string {
	switch key {
	case "money":
		return "money"
	case "health":
		return "health"
	case "san":
		return "SAN"
	case "credit":
		return "credit"
	case "luck":
		return "luck"
	case "skills":
		return "skills"
	case "influence":
		return "influence"
	default:
		return key
	}
}

var yearPhases = []string{
	"Year one: survival mode",
	"Year two: breaking ground",
	"Year three: climbing up",
	"Year four: tearing through",
	"Year five: reaching the top",
}

// YearPhase captions the month with the arc of its year.
func YearPhase(round int) string {
	if round < 1 {
		round = 1
	}
	year := (round-1)/12 + 1
	if year <= len(yearPhases) {
		return yearPhases[year-1]
	}
	return fmt.Sprintf("Year %d: legend", year)
}

// RoundTitle renders the month header for the feed and status bar.
func RoundTitle(round int) string {
	return fmt.Sprintf("Month %d", round)
}
