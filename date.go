package koyomi

import (
	"fmt"
	"time"
)

// jstZone is the Asia/Tokyo timezone (UTC+9) used to normalize all input
// times to the Japanese calendar date before holiday lookups.
var jstZone = time.FixedZone("Asia/Tokyo", 9*60*60)

// Date is a Gregorian calendar date. It carries no time of day and no
// location, and is comparable so it can be used as a map key.
//
// The zero value is not a valid date; use [NewDate] or [DateOf].
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for the given year, month and day. Out of range
// values are normalized the way [time.Date] does, so February 30 becomes
// March 1 or 2.
func NewDate(year int, month time.Month, day int) Date {
	return dateFromUTC(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf converts a time.Time to a Date by first normalizing to JST.
// This ensures that a moment in time always maps to the correct Japanese
// calendar date regardless of the input timezone.
func DateOf(t time.Time) Date {
	return dateFromUTC(t.In(jstZone))
}

func dateFromUTC(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns the date n days after d (before d when n is negative).
func (d Date) AddDays(n int) Date {
	return dateFromUTC(d.Time().AddDate(0, 0, n))
}

// Prev returns the calendar day before d.
func (d Date) Prev() Date { return d.AddDays(-1) }

// Next returns the calendar day after d.
func (d Date) Next() Date { return d.AddDays(1) }

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is later than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Equal reports whether d and other are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d == other
}

// InRange reports whether d lies in [from, to] inclusive.
func (d Date) InRange(from, to Date) bool {
	return !d.Before(from) && !to.Before(d)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// lastDayOfMonth returns the number of days in the given month.
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
