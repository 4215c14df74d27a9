package koyomi

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/width"
)

// ErrUnknownName is returned when a traditional name cannot be parsed.
var ErrUnknownName = errors.New("koyomi: unknown name")

// 和風月名, indexed by time.Month-1.
var monthNames = [12]string{
	"睦月", "如月", "弥生", "卯月", "皐月", "水無月",
	"文月", "葉月", "長月", "神無月", "霜月", "師走",
}

// 曜日, indexed by time.Weekday (Sunday first).
var weekdayNames = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// MonthName returns the traditional Japanese name of the month (睦月 for
// January through 師走 for December), or "" if m is out of range.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// ParseMonthName returns the month for a traditional name such as "弥生".
func ParseMonthName(name string) (time.Month, error) {
	n := normalizeName(name)
	for i, mn := range monthNames {
		if mn == n {
			return time.Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: month %q", ErrUnknownName, name)
}

// WeekdayName returns the single kanji for the weekday (月 for Monday).
func WeekdayName(w time.Weekday) string {
	if w < time.Sunday || w > time.Saturday {
		return ""
	}
	return weekdayNames[w]
}

// ParseWeekdayName accepts either the single kanji ("金") or the long form
// ("金曜日", "金曜").
func ParseWeekdayName(name string) (time.Weekday, error) {
	n := normalizeName(name)
	n = strings.TrimSuffix(n, "曜日")
	n = strings.TrimSuffix(n, "曜")
	for i, wn := range weekdayNames {
		if wn == n {
			return time.Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: weekday %q", ErrUnknownName, name)
}

// normalizeName folds full-width ASCII and half-width katakana to their
// canonical widths and trims surrounding space.
func normalizeName(name string) string {
	return strings.TrimSpace(width.Fold.String(name))
}
