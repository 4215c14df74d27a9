package koyomi

import "time"

// substituteEnforced is the day the 1973 amendment introducing 振替休日
// took effect.
var substituteEnforced = Date{1973, time.April, 30}

// HolidayOn returns the national holiday observed on d, including
// substitute holidays.
//
// TODO: 国民の休日 (a weekday sandwiched between two named holidays, such
// as 2026-09-22) is not modeled yet.
func HolidayOn(d Date) (Holiday, bool) {
	if h, ok := HolidayWithoutSubstitute(d); ok {
		return h, true
	}
	return MatchSubstituteHoliday(d)
}

// HolidayWithoutSubstitute returns the named holiday falling on d, ignoring
// substitute holidays.
func HolidayWithoutSubstitute(d Date) (Holiday, bool) {
	for _, r := range rules {
		if h, ok := r.Match(d); ok {
			return h, true
		}
	}
	return 0, false
}

// MatchSubstituteHoliday reports whether d is a substitute holiday: the
// run of named holidays ending the day before d started on a Sunday.
// Dates in 1973 and earlier never match.
func MatchSubstituteHoliday(d Date) (Holiday, bool) {
	if d.Before(substituteEnforced) || d.Year <= 1973 {
		return 0, false
	}
	prev := d.Prev()
	if _, ok := HolidayWithoutSubstitute(prev); !ok {
		return 0, false
	}
	if prev.Weekday() == time.Sunday {
		return SubstituteHoliday, true
	}
	return MatchSubstituteHoliday(prev)
}
