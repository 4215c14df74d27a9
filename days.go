package koyomi

import (
	"iter"
	"time"
)

// JapaneseDate is a calendar date annotated with its Japanese calendar
// facts.
type JapaneseDate struct {
	Date       Date
	Era        EraYear // zero before Meiji
	Sexagenary Sexagenary
	Holiday    Holiday // zero when the date is not a national holiday
}

// JapaneseDateOf annotates d.
func JapaneseDateOf(d Date) JapaneseDate {
	jd := JapaneseDate{Date: d, Sexagenary: SexagenaryOf(d.Year)}
	jd.Era, _ = EraOf(d)
	jd.Holiday, _ = HolidayOn(d)
	return jd
}

// Weekday returns the day of the week.
func (jd JapaneseDate) Weekday() time.Weekday { return jd.Date.Weekday() }

// WeekdayName returns the weekday kanji, e.g. "月".
func (jd JapaneseDate) WeekdayName() string { return WeekdayName(jd.Weekday()) }

// MonthName returns the traditional month name, e.g. "睦月".
func (jd JapaneseDate) MonthName() string { return MonthName(jd.Date.Month) }

// HolidayName returns the holiday name, or "" on ordinary days.
func (jd JapaneseDate) HolidayName() string { return jd.Holiday.Name() }

// IsHoliday reports whether the date is a national holiday.
func (jd JapaneseDate) IsHoliday() bool { return jd.Holiday != 0 }

// Days yields every date in [from, to] inclusive with its calendar facts.
// Nothing is yielded when from is after to.
func Days(from, to Date) iter.Seq[JapaneseDate] {
	return func(yield func(JapaneseDate) bool) {
		for d := from; !d.After(to); d = d.Next() {
			if !yield(JapaneseDateOf(d)) {
				return
			}
		}
	}
}

// MonthOf yields each day of the given month.
func MonthOf(year int, month time.Month) iter.Seq[JapaneseDate] {
	return Days(Date{year, month, 1}, Date{year, month, lastDayOfMonth(year, month)})
}

// YearOf yields each day of the given year.
func YearOf(year int) iter.Seq[JapaneseDate] {
	return Days(Date{year, time.January, 1}, Date{year, time.December, 31})
}
