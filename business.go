package koyomi

import "time"

// IsBusinessDay reports whether the given date is a business day
// (neither a weekend nor a holiday). The date is interpreted in JST.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	return c.isBusinessDay(DateOf(t))
}

func (c *Calendar) isBusinessDay(d Date) bool {
	wd := d.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	_, ok := c.lookup(d)
	return !ok
}

// NextHoliday returns the next holiday strictly after the given date.
// Returns false if no holiday exists within a year of it.
func (c *Calendar) NextHoliday(t time.Time) (Entry, bool) {
	return c.seek(DateOf(t), 1)
}

// PreviousHoliday returns the most recent holiday strictly before the given date.
// Returns false if no holiday exists within a year of it.
func (c *Calendar) PreviousHoliday(t time.Time) (Entry, bool) {
	return c.seek(DateOf(t), -1)
}

// seek finds the nearest holiday in direction step (+1 or -1). Custom
// holidays are considered at any distance; national holidays within
// searchLimit days.
func (c *Calendar) seek(from Date, step int) (Entry, bool) {
	closer := func(a, b Date) bool {
		if step > 0 {
			return a.Before(b)
		}
		return a.After(b)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var best Entry
	found := false
	for cd, name := range c.custom {
		if closer(from, cd) && (!found || closer(cd, best.Date)) {
			best = Entry{Date: cd, Name: name}
			found = true
		}
	}

	d := from
	for i := 0; i < searchLimit; i++ {
		d = d.AddDays(step)
		if found && !closer(d, best.Date) {
			break
		}
		if c.removed[d] {
			continue
		}
		if h, ok := HolidayOn(d); ok {
			return Entry{Date: d, Name: h.Name(), Holiday: h}, true
		}
	}
	return best, found
}

// NextBusinessDay returns the next business day on or after the given date.
// If t itself is a business day, it returns t (normalized to midnight UTC).
// Returns the zero time if no business day is found within 366 days.
func (c *Calendar) NextBusinessDay(t time.Time) time.Time {
	return c.walkToBusinessDay(DateOf(t), 1)
}

// PreviousBusinessDay returns the most recent business day on or before the given date.
// If t itself is a business day, it returns t (normalized to midnight UTC).
// Returns the zero time if no business day is found within 366 days.
func (c *Calendar) PreviousBusinessDay(t time.Time) time.Time {
	return c.walkToBusinessDay(DateOf(t), -1)
}

func (c *Calendar) walkToBusinessDay(d Date, step int) time.Time {
	for i := 0; i < searchLimit; i++ {
		if c.isBusinessDay(d) {
			return d.Time()
		}
		d = d.AddDays(step)
	}
	return time.Time{}
}

// BusinessDaysBetween returns the count of business days in the range [from, to] inclusive.
// If from is after to, returns 0.
func (c *Calendar) BusinessDaysBetween(from, to time.Time) int {
	fromD := DateOf(from)
	toD := DateOf(to)

	count := 0
	for d := fromD; !d.After(toD); d = d.Next() {
		if c.isBusinessDay(d) {
			count++
		}
	}
	return count
}

// --- Package-level convenience functions ---

// IsBusinessDay reports whether the given date is a business day.
func IsBusinessDay(t time.Time) bool { return defaultCal.IsBusinessDay(t) }

// NextHoliday returns the next holiday strictly after the given date.
func NextHoliday(t time.Time) (Entry, bool) { return defaultCal.NextHoliday(t) }

// PreviousHoliday returns the most recent holiday strictly before the given date.
func PreviousHoliday(t time.Time) (Entry, bool) { return defaultCal.PreviousHoliday(t) }

// NextBusinessDay returns the next business day on or after the given date.
func NextBusinessDay(t time.Time) time.Time { return defaultCal.NextBusinessDay(t) }

// PreviousBusinessDay returns the most recent business day on or before the given date.
func PreviousBusinessDay(t time.Time) time.Time { return defaultCal.PreviousBusinessDay(t) }

// BusinessDaysBetween returns the count of business days in the range [from, to].
func BusinessDaysBetween(from, to time.Time) int { return defaultCal.BusinessDaysBetween(from, to) }
