package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	koyomi "github.com/rabitt1ove/jp-koyomi"
)

type findingKind int

const (
	// missing: the official list has a holiday the engine does not.
	missing findingKind = iota + 1
	// extra: the engine has a holiday the official list does not.
	extra
	// renamed: both agree on the date but not on the holiday.
	renamed
	// knownGap: an official 国民の休日 the engine does not derive.
	knownGap
)

func (k findingKind) String() string {
	switch k {
	case missing:
		return "missing"
	case extra:
		return "extra"
	case renamed:
		return "renamed"
	case knownGap:
		return "known gap"
	}
	return "unknown"
}

type finding struct {
	kind     findingKind
	date     koyomi.Date
	official string
	engine   string
}

// citizensHolidayEnacted is the day the 1985 amendment introducing
// 国民の休日 took effect.
var citizensHolidayEnacted = koyomi.NewDate(1985, time.December, 27)

// compare classifies every official row against the engine, then looks for
// engine holidays absent from the official list within the years it covers.
func compare(official []holiday) []finding {
	if len(official) == 0 {
		return nil
	}

	var findings []finding
	seen := make(map[koyomi.Date]bool, len(official))
	first, last := official[0].date.Year, official[0].date.Year
	for _, o := range official {
		seen[o.date] = true
		first = min(first, o.date.Year)
		last = max(last, o.date.Year)

		h, ok := koyomi.HolidayOn(o.date)
		switch {
		case !ok && sandwiched(o.date):
			findings = append(findings, finding{kind: knownGap, date: o.date, official: o.name})
		case !ok:
			findings = append(findings, finding{kind: missing, date: o.date, official: o.name})
		case !sameHoliday(o.name, h):
			findings = append(findings, finding{kind: renamed, date: o.date, official: o.name, engine: h.Name()})
		}
	}

	for jd := range koyomi.Days(koyomi.NewDate(first, time.January, 1), koyomi.NewDate(last, time.December, 31)) {
		if jd.IsHoliday() && !seen[jd.Date] {
			findings = append(findings, finding{kind: extra, date: jd.Date, engine: jd.HolidayName()})
		}
	}
	return findings
}

// sandwiched reports whether d is a 国民の休日: not a Sunday, with named
// holidays on both sides.
func sandwiched(d koyomi.Date) bool {
	if d.Before(citizensHolidayEnacted) || d.Weekday() == time.Sunday {
		return false
	}
	_, before := koyomi.HolidayWithoutSubstitute(d.Prev())
	_, after := koyomi.HolidayWithoutSubstitute(d.Next())
	return before && after
}

// sameHoliday reports whether an official name denotes h. The official list
// labels substitute and some ceremony days simply 休日, and spells several
// ceremonies more verbosely.
func sameHoliday(official string, h koyomi.Holiday) bool {
	name := h.Name()
	switch {
	case official == name:
		return true
	case strings.HasPrefix(official, "休日"):
		return h == koyomi.SubstituteHoliday || h.IsImperialCeremony()
	case h.IsImperialCeremony():
		o, n := strings.ReplaceAll(official, "の", ""), strings.ReplaceAll(name, "の", "")
		return strings.Contains(o, n) || strings.Contains(n, o)
	}
	return false
}

// report prints findings and returns how many count as failures.
func report(w io.Writer, findings []finding) int {
	failures := 0
	for _, f := range findings {
		if f.kind != knownGap {
			failures++
		}
		switch f.kind {
		case renamed:
			fmt.Fprintf(w, "%-9s %s official=%s engine=%s\n", f.kind, f.date, f.official, f.engine)
		case extra:
			fmt.Fprintf(w, "%-9s %s engine=%s\n", f.kind, f.date, f.engine)
		default:
			fmt.Fprintf(w, "%-9s %s official=%s\n", f.kind, f.date, f.official)
		}
	}
	fmt.Fprintf(w, "%d findings, %d mismatches\n", len(findings), failures)
	return failures
}
