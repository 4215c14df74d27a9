package koyomi

import "time"

// Rule is the legal definition of one named holiday. Match reports the
// holiday the definition assigns to a date, if any. Dates outside the
// period in which the definition was in force never match.
type Rule struct {
	Holiday Holiday
	Match   func(Date) (Holiday, bool)
}

// rules is the base (non-substitute) rule set. At most one entry matches
// any date, so the order only matters for speed.
var rules = []Rule{
	{NewYearsDay, MatchNewYearsDay},
	{ComingOfAgeDay, MatchComingOfAgeDay},
	{NationalFoundationDay, MatchNationalFoundationDay},
	{EmperorsBirthday, MatchEmperorsBirthday},
	{VernalEquinoxDay, MatchVernalEquinoxDay},
	{ShowaDay, MatchShowaDay},
	{GreeneryDay, MatchGreeneryDay},
	{ConstitutionDay, MatchConstitutionDay},
	{ChildrensDay, MatchChildrensDay},
	{MarineDay, MatchMarineDay},
	{MountainDay, MatchMountainDay},
	{RespectForTheAgedDay, MatchRespectForTheAgedDay},
	{AutumnalEquinoxDay, MatchAutumnalEquinoxDay},
	{HealthSportsDay, MatchHealthSportsDay},
	{SportsDay, MatchSportsDay},
	{CultureDay, MatchCultureDay},
	{LaborThanksgivingDay, MatchLaborThanksgivingDay},
	{0, MatchImperialCeremony},
}

// Rules returns a copy of the base rule set. The imperial ceremony rule
// has a zero Holiday because it yields one of several variants.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// olympicYear reports whether Marine Day, Mountain Day and Sports Day were
// moved that year by the Tokyo 2020 special measures act.
func olympicYear(year int) bool {
	return year == 2020 || year == 2021
}

func on(d Date, month time.Month, day int) bool {
	return d.Month == month && d.Day == day
}

func during(d Date, from, to int) bool {
	return d.Year >= from && d.Year <= to
}

// MatchNewYearsDay matches January 1 from 1949.
func MatchNewYearsDay(d Date) (Holiday, bool) {
	if d.Year >= 1949 && on(d, time.January, 1) {
		return NewYearsDay, true
	}
	return 0, false
}

// MatchComingOfAgeDay matches January 15 from 1949 to 1999 and the second
// Monday of January from 2000.
func MatchComingOfAgeDay(d Date) (Holiday, bool) {
	switch {
	case during(d, 1949, 1999) && on(d, time.January, 15):
	case d.Year >= 2000 && d.Month == time.January && isNthMonday(d, 2):
	default:
		return 0, false
	}
	return ComingOfAgeDay, true
}

// MatchNationalFoundationDay matches February 11 from 1967.
func MatchNationalFoundationDay(d Date) (Holiday, bool) {
	if d.Year >= 1967 && on(d, time.February, 11) {
		return NationalFoundationDay, true
	}
	return 0, false
}

// MatchEmperorsBirthday matches the birthday of the reigning emperor:
// April 29 (1949-1988), December 23 (1989-2018) and February 23 (from
// 2020). There is none in 2019.
func MatchEmperorsBirthday(d Date) (Holiday, bool) {
	switch {
	case during(d, 1949, 1988) && on(d, time.April, 29):
	case during(d, 1989, 2018) && on(d, time.December, 23):
	case d.Year >= 2020 && on(d, time.February, 23):
	default:
		return 0, false
	}
	return EmperorsBirthday, true
}

// MatchVernalEquinoxDay matches the March equinox from 1949.
func MatchVernalEquinoxDay(d Date) (Holiday, bool) {
	if d.Year >= 1949 && d.Month == time.March && d.Day == VernalEquinox(d.Year) {
		return VernalEquinoxDay, true
	}
	return 0, false
}

// MatchShowaDay matches April 29 from 2007.
func MatchShowaDay(d Date) (Holiday, bool) {
	if d.Year >= 2007 && on(d, time.April, 29) {
		return ShowaDay, true
	}
	return 0, false
}

// MatchGreeneryDay matches April 29 from 1989 to 2006 and May 4 from 2007.
func MatchGreeneryDay(d Date) (Holiday, bool) {
	switch {
	case during(d, 1989, 2006) && on(d, time.April, 29):
	case d.Year >= 2007 && on(d, time.May, 4):
	default:
		return 0, false
	}
	return GreeneryDay, true
}

// MatchConstitutionDay matches May 3 from 1948.
func MatchConstitutionDay(d Date) (Holiday, bool) {
	if d.Year >= 1948 && on(d, time.May, 3) {
		return ConstitutionDay, true
	}
	return 0, false
}

// MatchChildrensDay matches May 5 from 1948.
func MatchChildrensDay(d Date) (Holiday, bool) {
	if d.Year >= 1948 && on(d, time.May, 5) {
		return ChildrensDay, true
	}
	return 0, false
}

// MatchMarineDay matches July 20 from 1996 to 2002, the third Monday of
// July from 2003, and the Olympic dates 2020-07-23 and 2021-07-22.
func MatchMarineDay(d Date) (Holiday, bool) {
	switch {
	case d.Year == 2020 && on(d, time.July, 23):
	case d.Year == 2021 && on(d, time.July, 22):
	case during(d, 1996, 2002) && on(d, time.July, 20):
	case d.Year >= 2003 && !olympicYear(d.Year) && d.Month == time.July && isNthMonday(d, 3):
	default:
		return 0, false
	}
	return MarineDay, true
}

// MatchMountainDay matches August 11 from 2016 and the Olympic dates
// 2020-08-10 and 2021-08-08.
func MatchMountainDay(d Date) (Holiday, bool) {
	switch {
	case d.Year == 2020 && on(d, time.August, 10):
	case d.Year == 2021 && on(d, time.August, 8):
	case d.Year >= 2016 && !olympicYear(d.Year) && on(d, time.August, 11):
	default:
		return 0, false
	}
	return MountainDay, true
}

// MatchRespectForTheAgedDay matches September 15 from 1966 to 2002 and the
// third Monday of September from 2003.
func MatchRespectForTheAgedDay(d Date) (Holiday, bool) {
	switch {
	case during(d, 1966, 2002) && on(d, time.September, 15):
	case d.Year >= 2003 && d.Month == time.September && isNthMonday(d, 3):
	default:
		return 0, false
	}
	return RespectForTheAgedDay, true
}

// MatchAutumnalEquinoxDay matches the September equinox from 1949.
func MatchAutumnalEquinoxDay(d Date) (Holiday, bool) {
	if d.Year >= 1949 && d.Month == time.September && d.Day == AutumnalEquinox(d.Year) {
		return AutumnalEquinoxDay, true
	}
	return 0, false
}

// MatchHealthSportsDay matches 体育の日: October 10 from 1966 to 1999 and
// the second Monday of October from 2000 to 2019.
func MatchHealthSportsDay(d Date) (Holiday, bool) {
	switch {
	case during(d, 1966, 1999) && on(d, time.October, 10):
	case during(d, 2000, 2019) && d.Month == time.October && isNthMonday(d, 2):
	default:
		return 0, false
	}
	return HealthSportsDay, true
}

// MatchSportsDay matches スポーツの日, which replaced 体育の日 in 2020: the
// Olympic dates 2020-07-24 and 2021-07-23, then the second Monday of
// October.
func MatchSportsDay(d Date) (Holiday, bool) {
	switch {
	case d.Year == 2020 && on(d, time.July, 24):
	case d.Year == 2021 && on(d, time.July, 23):
	case d.Year >= 2020 && !olympicYear(d.Year) && d.Month == time.October && isNthMonday(d, 2):
	default:
		return 0, false
	}
	return SportsDay, true
}

// MatchCultureDay matches November 3 from 1948.
func MatchCultureDay(d Date) (Holiday, bool) {
	if d.Year >= 1948 && on(d, time.November, 3) {
		return CultureDay, true
	}
	return 0, false
}

// MatchLaborThanksgivingDay matches November 23 from 1948.
func MatchLaborThanksgivingDay(d Date) (Holiday, bool) {
	if d.Year >= 1948 && on(d, time.November, 23) {
		return LaborThanksgivingDay, true
	}
	return 0, false
}

var imperialCeremonies = map[Date]Holiday{
	{1959, time.April, 10}:    WeddingOfPrinceAkihito,
	{1989, time.February, 24}: FuneralOfEmperorShowa,
	{1990, time.November, 12}: EnthronementCeremonyHeisei,
	{1993, time.June, 9}:      WeddingOfPrinceNaruhito,
	{2019, time.May, 1}:       EnthronementReiwa,
	{2019, time.October, 22}:  EnthronementCeremonyReiwa,
}

// MatchImperialCeremony matches the one-off holidays declared for imperial
// weddings, funerals and enthronements.
func MatchImperialCeremony(d Date) (Holiday, bool) {
	h, ok := imperialCeremonies[d]
	return h, ok
}
