// Package jpcal exposes the Japanese national holidays as
// github.com/rickar/cal/v2 holidays, so they can be mixed into a
// cal.BusinessCalendar alongside other countries' holidays.
//
// Dates come from the koyomi rule engine. 振替休日 is expressed the way
// rickar/cal expresses it for every country: as the observed date of the
// holiday that fell on a Sunday.
package jpcal

import (
	"sync"
	"time"

	"github.com/rickar/cal/v2"

	koyomi "github.com/rabitt1ove/jp-koyomi"
)

// substituteFrom is the first year in which a Sunday holiday carries over.
const substituteFrom = 1974

// carry is how far a Sunday occurrence moves in the years [from, to]. A zero
// to means the period is open.
type carry struct {
	from, to int
	offset   int
}

// carries lists the Golden Week holidays whose Sunday occurrence has to
// skip the named holidays that follow it. Every other holiday carries over
// to the next day.
var carries = map[koyomi.Holiday][]carry{
	koyomi.ConstitutionDay: {{substituteFrom, 2006, 1}, {2007, 0, 3}},
	koyomi.GreeneryDay:     {{substituteFrom, 2006, 1}, {2007, 0, 2}},
}

var nextDay = []carry{{substituteFrom, 0, 1}}

// Holidays returns the cal.Holiday definitions for every named Japanese
// holiday, including the one-off imperial ceremony days. A holiday is
// split into one definition per substitute rule period, so a name may
// appear more than once; exactly one of them applies in any year.
func Holidays() []*cal.Holiday {
	var hs []*cal.Holiday
	for _, h := range koyomi.AllHolidays() {
		if h == koyomi.SubstituteHoliday {
			continue
		}
		base := newHoliday(h)
		hs = append(hs, base.Clone(&cal.Holiday{EndYear: substituteFrom - 1}))

		periods, ok := carries[h]
		if !ok {
			periods = nextDay
		}
		for _, p := range periods {
			hs = append(hs, base.Clone(&cal.Holiday{
				StartYear: p.from,
				EndYear:   p.to,
				Observed:  []cal.AltDay{{Day: time.Sunday, Offset: p.offset}},
			}))
		}
	}
	return hs
}

// NewBusinessCalendar returns a Monday to Friday business calendar preloaded
// with every Japanese holiday.
func NewBusinessCalendar() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(Holidays()...)
	return c
}

func newHoliday(h koyomi.Holiday) *cal.Holiday {
	return &cal.Holiday{
		Name:        h.Name(),
		Description: h.English(),
		Type:        cal.ObservancePublic,
		Func: func(_ *cal.Holiday, year int) time.Time {
			return calc(h, year)
		},
	}
}

// calc returns the date of h in year, or the zero time when h does not
// occur that year.
func calc(h koyomi.Holiday, year int) time.Time {
	d, ok := occurrences(year)[h]
	if !ok {
		return time.Time{}
	}
	return d.Time()
}

// maxCachedYears bounds the occurrence cache; it is reset when full.
const maxCachedYears = 64

var (
	mu    sync.Mutex
	years = make(map[int]map[koyomi.Holiday]koyomi.Date)
)

// occurrences maps each named holiday to its date in year. A named holiday
// occurs at most once a year.
func occurrences(year int) map[koyomi.Holiday]koyomi.Date {
	mu.Lock()
	defer mu.Unlock()

	if m, ok := years[year]; ok {
		return m
	}
	if len(years) >= maxCachedYears {
		clear(years)
	}
	m := make(map[koyomi.Holiday]koyomi.Date)
	from := koyomi.NewDate(year, time.January, 1)
	to := koyomi.NewDate(year, time.December, 31)
	for d := from; !d.After(to); d = d.Next() {
		if h, ok := koyomi.HolidayWithoutSubstitute(d); ok {
			m[h] = d
		}
	}
	years[year] = m
	return m
}
