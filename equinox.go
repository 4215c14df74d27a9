package koyomi

import (
	"math"
	"time"
)

// Base offsets of the equinox approximation for the 1980 epoch.
const (
	vernalEquinoxBase   = 20.8431
	autumnalEquinoxBase = 23.2488
)

// VernalEquinox returns the day of March on which the vernal equinox
// falls in the given year.
func VernalEquinox(year int) int {
	return equinoxDay(vernalEquinoxBase, year)
}

// AutumnalEquinox returns the day of September on which the autumnal
// equinox falls in the given year.
func AutumnalEquinox(year int) int {
	return equinoxDay(autumnalEquinoxBase, year)
}

// equinoxDay is the empirical approximation published for 1851-2150.
// Years outside that range still produce a value; it is just not an
// equinox anyone observed.
func equinoxDay(base float64, year int) int {
	x := float64(year - 1980)
	y := int(math.Floor(0.242194*x + base))
	z := int(math.Floor(x / 4))
	day := y - z
	if day < 0 {
		return -day
	}
	return day
}

// isNthMonday reports whether d is the nth Monday of its month. The nth
// occurrence of any weekday always falls on day 7(n-1)+1 through 7n.
func isNthMonday(d Date, n int) bool {
	return d.Weekday() == time.Monday && d.Day > 7*(n-1) && d.Day <= 7*n
}
