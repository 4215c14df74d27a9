package koyomi

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Era is a Japanese imperial era (元号). Only eras from Meiji onward are
// supported; earlier eras followed the lunisolar calendar.
type Era uint8

const (
	_ Era = iota
	Meiji
	Taisho
	Showa
	Heisei
	Reiwa
)

type eraSpan struct {
	era    Era
	name   string
	romaji string
	begin  Date
}

// eras is ordered newest first; each era ends the day before the next one
// begins.
var eras = []eraSpan{
	{Reiwa, "令和", "reiwa", Date{2019, time.May, 1}},
	{Heisei, "平成", "heisei", Date{1989, time.January, 8}},
	{Showa, "昭和", "showa", Date{1926, time.December, 25}},
	{Taisho, "大正", "taisho", Date{1912, time.July, 30}},
	{Meiji, "明治", "meiji", Date{1868, time.October, 23}},
}

func (e Era) span() (eraSpan, bool) {
	for _, s := range eras {
		if s.era == e {
			return s, true
		}
	}
	return eraSpan{}, false
}

// Name returns the kanji name of the era, e.g. "令和".
func (e Era) Name() string {
	s, _ := e.span()
	return s.name
}

func (e Era) String() string { return e.Name() }

// Begin returns the first day of the era.
func (e Era) Begin() Date {
	s, _ := e.span()
	return s.begin
}

// EraYear is a year counted within an era, e.g. 令和6年.
type EraYear struct {
	Era  Era
	Year int
}

// String renders the era year, using 元年 for the first year. The zero
// EraYear renders as "".
func (ey EraYear) String() string {
	if ey.Era == 0 {
		return ""
	}
	if ey.Year == 1 {
		return ey.Era.Name() + "元年"
	}
	return ey.Era.Name() + strconv.Itoa(ey.Year) + "年"
}

// Gregorian returns the Gregorian year of ey.
func (ey EraYear) Gregorian() int {
	return ey.Era.Begin().Year + ey.Year - 1
}

// EraOf returns the era and era year of d. It returns false for dates
// before the Meiji era.
func EraOf(d Date) (EraYear, bool) {
	for _, s := range eras {
		if !d.Before(s.begin) {
			return EraYear{Era: s.era, Year: d.Year - s.begin.Year + 1}, true
		}
	}
	return EraYear{}, false
}

// ParseEra returns the era for a kanji ("令和"), romaji ("Reiwa") or
// single-letter ("R") name. Full-width input is accepted.
func ParseEra(name string) (Era, error) {
	n := normalizeName(name)
	lower := strings.ToLower(n)
	for _, s := range eras {
		switch {
		case n == s.name, lower == s.romaji, lower == s.romaji[:1]:
			return s.era, nil
		}
	}
	return 0, fmt.Errorf("%w: era %q", ErrUnknownName, name)
}
