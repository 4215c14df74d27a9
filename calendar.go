// Package koyomi computes Japanese calendar facts for Gregorian dates:
// national holidays (国民の祝日), imperial eras (元号), traditional month and
// weekday names, and the sexagenary cycle (干支).
//
// Holidays are derived from the legal definitions in force on each date
// rather than from a table, so any date from 1948 onward can be classified.
// Every rule is a pure function of the date; the engine keeps no state and
// is safe for concurrent use.
//
// All time.Time inputs are normalized to JST (Asia/Tokyo, UTC+9) before
// extracting the calendar date, so the correct Japanese holiday is returned
// regardless of the input timezone.
//
// Basic usage with package-level functions:
//
//	jst := time.FixedZone("Asia/Tokyo", 9*60*60)
//	t := time.Date(2024, 1, 1, 0, 0, 0, 0, jst)
//	koyomi.IsHoliday(t)    // true
//	koyomi.HolidayName(t)  // "元日"
//
// Rules can also be queried directly on a [Date]:
//
//	h, ok := koyomi.HolidayOn(koyomi.NewDate(2024, time.February, 12))
//	// h == koyomi.SubstituteHoliday, ok == true
//
// For isolated custom holiday management, create a Calendar instance:
//
//	cal := koyomi.New()
//	cal.AddCustomHoliday(t, "会社記念日")
package koyomi

import (
	"sync"
	"time"
)

// searchLimit bounds the day-by-day scans of NextHoliday, PreviousHoliday
// and the business day searches. Every year from 1949 has a New Year's Day.
const searchLimit = 366

// Entry is a single holiday occurrence.
type Entry struct {
	Date    Date
	Name    string  // The Japanese name of the holiday (e.g., "元日").
	Holiday Holiday // Zero for custom holidays.
}

// Calendar layers custom holidays over the national holiday rules.
// Create one with [New]. All methods are safe for concurrent use.
type Calendar struct {
	mu      sync.RWMutex
	custom  map[Date]string
	removed map[Date]bool
}

// New creates a new Calendar backed by the national holiday rules.
func New() *Calendar {
	return &Calendar{
		custom:  make(map[Date]string),
		removed: make(map[Date]bool),
	}
}

// defaultCal is the package-level calendar used by top-level functions.
var defaultCal = New()

// lookup returns the holiday for a date, checking custom holidays first,
// then the national rules (unless removed).
func (c *Calendar) lookup(d Date) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lookupLocked(d)
}

func (c *Calendar) lookupLocked(d Date) (Entry, bool) {
	if name, ok := c.custom[d]; ok {
		return Entry{Date: d, Name: name}, true
	}
	if c.removed[d] {
		return Entry{}, false
	}
	if h, ok := HolidayOn(d); ok {
		return Entry{Date: d, Name: h.Name(), Holiday: h}, true
	}
	return Entry{}, false
}

// IsHoliday reports whether the given date is a holiday (national or custom).
// The input time is converted to JST (Asia/Tokyo, UTC+9) before extracting
// the calendar date, so the result is always correct for the Japanese calendar
// regardless of the input timezone.
func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.lookup(DateOf(t))
	return ok
}

// HolidayName returns the holiday name for the given date, or an empty string
// if it is not a holiday.
func (c *Calendar) HolidayName(t time.Time) string {
	e, _ := c.lookup(DateOf(t))
	return e.Name
}

// Lookup returns the holiday entry for the given date.
func (c *Calendar) Lookup(t time.Time) (Entry, bool) {
	return c.lookup(DateOf(t))
}

// HolidaysInYear returns all holidays in the given year, sorted by date.
func (c *Calendar) HolidaysInYear(year int) []Entry {
	return c.holidaysInRange(Date{year, time.January, 1}, Date{year, time.December, 31})
}

// HolidaysInMonth returns all holidays in the given year and month, sorted by date.
func (c *Calendar) HolidaysInMonth(year int, month time.Month) []Entry {
	from := Date{year, month, 1}
	to := Date{year, month, lastDayOfMonth(year, month)}
	return c.holidaysInRange(from, to)
}

// HolidaysBetween returns all holidays in the range [from, to] inclusive,
// sorted by date. If from is after to, returns nil.
func (c *Calendar) HolidaysBetween(from, to time.Time) []Entry {
	fromD := DateOf(from)
	toD := DateOf(to)
	if toD.Before(fromD) {
		return nil
	}
	return c.holidaysInRange(fromD, toD)
}

// holidaysInRange walks the range (inclusive) one day at a time, so the
// result is already in date order.
func (c *Calendar) holidaysInRange(from, to Date) []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []Entry
	for d := from; !d.After(to); d = d.Next() {
		if e, ok := c.lookupLocked(d); ok {
			result = append(result, e)
		}
	}
	return result
}

// AddCustomHoliday registers a custom holiday on the given date.
// If a custom holiday already exists on that date, it is overwritten.
// If a national holiday falls on the same date, this custom holiday takes
// precedence in lookups and list APIs.
func (c *Calendar) AddCustomHoliday(t time.Time, name string) {
	d := DateOf(t)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.custom[d] = name
}

// RemoveCustomHoliday removes a previously added custom holiday.
// Has no effect if no custom holiday exists on that date.
func (c *Calendar) RemoveCustomHoliday(t time.Time) {
	d := DateOf(t)
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.custom, d)
}

// RemoveHoliday suppresses a national holiday so it no longer appears in queries.
// Has no effect on custom holidays. Use [Calendar.RestoreHoliday] to undo.
func (c *Calendar) RemoveHoliday(t time.Time) {
	d := DateOf(t)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removed[d] = true
}

// RestoreHoliday restores a previously removed national holiday.
func (c *Calendar) RestoreHoliday(t time.Time) {
	d := DateOf(t)
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.removed, d)
}

// --- Package-level convenience functions ---

// IsHoliday reports whether the given date is a holiday.
func IsHoliday(t time.Time) bool { return defaultCal.IsHoliday(t) }

// HolidayName returns the holiday name for the given date, or "".
func HolidayName(t time.Time) string { return defaultCal.HolidayName(t) }

// Lookup returns the holiday entry for the given date.
func Lookup(t time.Time) (Entry, bool) { return defaultCal.Lookup(t) }

// HolidaysInYear returns all holidays in the given year, sorted by date.
func HolidaysInYear(year int) []Entry { return defaultCal.HolidaysInYear(year) }

// HolidaysInMonth returns all holidays in the given year and month, sorted by date.
func HolidaysInMonth(year int, month time.Month) []Entry {
	return defaultCal.HolidaysInMonth(year, month)
}

// HolidaysBetween returns all holidays in the range [from, to] inclusive.
func HolidaysBetween(from, to time.Time) []Entry {
	return defaultCal.HolidaysBetween(from, to)
}

// AddCustomHoliday registers a custom holiday on the default calendar.
func AddCustomHoliday(t time.Time, name string) { defaultCal.AddCustomHoliday(t, name) }

// RemoveCustomHoliday removes a custom holiday from the default calendar.
func RemoveCustomHoliday(t time.Time) { defaultCal.RemoveCustomHoliday(t) }

// RemoveHoliday suppresses a national holiday on the default calendar.
func RemoveHoliday(t time.Time) { defaultCal.RemoveHoliday(t) }

// RestoreHoliday restores a suppressed national holiday on the default calendar.
func RestoreHoliday(t time.Time) { defaultCal.RestoreHoliday(t) }
