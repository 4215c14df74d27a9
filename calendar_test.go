package koyomi

import (
	"sync"
	"testing"
	"time"
)

// d is a test helper to construct instants at midnight UTC.
func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestIsHoliday(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"New Years Day", d(2026, time.January, 1), true},
		{"Coming of Age Day", d(2026, time.January, 12), true},
		{"National Foundation Day", d(2026, time.February, 11), true},
		{"Emperors Birthday", d(2026, time.February, 23), true},
		{"Vernal Equinox", d(2026, time.March, 20), true},
		{"Showa Day", d(2026, time.April, 29), true},
		{"Constitution Memorial Day", d(2026, time.May, 3), true},
		{"Greenery Day", d(2026, time.May, 4), true},
		{"Childrens Day", d(2026, time.May, 5), true},
		{"Substitute holiday 05-06", d(2026, time.May, 6), true},
		{"Marine Day", d(2026, time.July, 20), true},
		{"Mountain Day", d(2026, time.August, 11), true},
		{"Respect for Aged Day", d(2026, time.September, 21), true},
		{"Autumnal Equinox", d(2026, time.September, 23), true},
		{"Sports Day", d(2026, time.October, 12), true},
		{"Culture Day", d(2026, time.November, 3), true},
		{"Labor Thanksgiving Day", d(2026, time.November, 23), true},

		{"Regular weekday", d(2026, time.June, 10), false},
		{"Saturday non-holiday", d(2026, time.June, 6), false},
		{"Sunday non-holiday", d(2026, time.June, 7), false},
		{"Day before New Years", d(2026, time.December, 31), false},
		// Sandwiched between 敬老の日 and 秋分の日; 国民の休日 is not derived.
		{"Bridge day 09-22", d(2026, time.September, 22), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHoliday(tt.date); got != tt.want {
				t.Errorf("IsHoliday(%v) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestIsHoliday_TimeOfDayIgnored(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	late := time.Date(2026, time.January, 1, 23, 59, 59, 0, jst)
	if !IsHoliday(late) {
		t.Error("IsHoliday should ignore time-of-day")
	}
}

func TestIsHoliday_JSTNormalization(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name string
		time time.Time
		want bool
	}{
		{
			"JST noon on holiday",
			time.Date(2026, time.January, 1, 12, 0, 0, 0, jst),
			true,
		},
		{
			// 2025-12-31 20:00 UTC = 2026-01-01 05:00 JST
			"UTC Dec 31 evening, already Jan 1 in JST",
			time.Date(2025, time.December, 31, 20, 0, 0, 0, time.UTC),
			true,
		},
		{
			// 2026-01-01 14:59 UTC = 2026-01-01 23:59 JST
			"UTC Jan 1 14:59, still Jan 1 in JST",
			time.Date(2026, time.January, 1, 14, 59, 0, 0, time.UTC),
			true,
		},
		{
			// 2026-01-01 15:00 UTC = 2026-01-02 00:00 JST
			"UTC Jan 1 15:00, already Jan 2 in JST",
			time.Date(2026, time.January, 1, 15, 0, 0, 0, time.UTC),
			false,
		},
		{
			// 2025-12-31 14:59 UTC = 2025-12-31 23:59 JST
			"UTC Dec 31 14:59, still Dec 31 in JST",
			time.Date(2025, time.December, 31, 14, 59, 0, 0, time.UTC),
			false,
		},
		{
			// 2026-01-01 03:29 IST = 2026-01-01 06:59 JST
			"India Jan 1 early morning",
			time.Date(2026, time.January, 1, 3, 29, 0, 0, time.FixedZone("IST", 5*60*60+30*60)),
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHoliday(tt.time); got != tt.want {
				t.Errorf("IsHoliday(%v) = %v, want %v (JST: %v)",
					tt.time.Format(time.RFC3339),
					got, tt.want,
					tt.time.In(jst).Format("2006-01-02 15:04"))
			}
		})
	}
}

func TestIsHoliday_BeforeHolidayLaw(t *testing.T) {
	if IsHoliday(d(1947, time.May, 3)) {
		t.Error("dates before 1948 should not be holidays")
	}
	if IsHoliday(d(1948, time.January, 1)) {
		t.Error("New Year's Day starts in 1949")
	}
}

func TestIsHoliday_FarFuture(t *testing.T) {
	if !IsHoliday(d(2100, time.January, 1)) {
		t.Error("rules have no upper bound; 2100-01-01 should be 元日")
	}
}

func TestHolidayName(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{d(2026, time.January, 1), "元日"},
		{d(2026, time.January, 12), "成人の日"},
		{d(2026, time.May, 3), "憲法記念日"},
		{d(2026, time.May, 4), "みどりの日"},
		{d(2026, time.May, 5), "こどもの日"},
		{d(2026, time.May, 6), "振替休日"},
		{d(2026, time.November, 3), "文化の日"},
		{d(2026, time.November, 23), "勤労感謝の日"},
		{d(2026, time.June, 10), ""},
	}
	for _, tt := range tests {
		name := tt.date.Format("2006-01-02")
		t.Run(name, func(t *testing.T) {
			if got := HolidayName(tt.date); got != tt.want {
				t.Errorf("HolidayName(%s) = %q, want %q", name, got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup(d(2024, time.February, 12))
	if !ok {
		t.Fatal("2024-02-12 should be a holiday")
	}
	if e.Holiday != SubstituteHoliday || e.Date != ymd(2024, time.February, 12) {
		t.Errorf("Lookup = %+v, want 振替休日 on 2024-02-12", e)
	}
	if _, ok := Lookup(d(2024, time.February, 13)); ok {
		t.Error("2024-02-13 should not be a holiday")
	}
}

func TestHolidaysInYear(t *testing.T) {
	holidays := HolidaysInYear(2026)
	if len(holidays) != 17 {
		t.Fatalf("expected 17 holidays in 2026, got %d", len(holidays))
	}

	if holidays[0].Name != "元日" {
		t.Errorf("first holiday = %q, want 元日", holidays[0].Name)
	}

	for i := 1; i < len(holidays); i++ {
		if !holidays[i].Date.After(holidays[i-1].Date) {
			t.Errorf("holidays not sorted: [%d]%v >= [%d]%v",
				i-1, holidays[i-1].Date, i, holidays[i].Date)
		}
	}
}

func TestHolidaysInYear_Empty(t *testing.T) {
	holidays := HolidaysInYear(1900)
	if len(holidays) != 0 {
		t.Errorf("expected 0 holidays for 1900, got %d", len(holidays))
	}
}

func TestHolidaysInMonth(t *testing.T) {
	holidays := HolidaysInMonth(2026, time.May)
	// May 2026: 5/3 憲法記念日, 5/4 みどりの日, 5/5 こどもの日, 5/6 振替休日
	if len(holidays) != 4 {
		t.Errorf("expected 4 holidays in May 2026, got %d", len(holidays))
	}

	for _, h := range holidays {
		if h.Date.Month != time.May {
			t.Errorf("unexpected month: %v", h.Date)
		}
	}
}

func TestHolidaysInMonth_Empty(t *testing.T) {
	holidays := HolidaysInMonth(2026, time.June)
	if len(holidays) != 0 {
		t.Errorf("expected 0 holidays in June 2026, got %d", len(holidays))
	}
}

func TestHolidaysBetween(t *testing.T) {
	// Golden Week 2026: 4/29 昭和の日, 5/3 憲法記念日, 5/4 みどりの日, 5/5 こどもの日, 5/6 振替休日
	holidays := HolidaysBetween(d(2026, time.April, 28), d(2026, time.May, 7))
	if len(holidays) != 5 {
		t.Errorf("expected 5 holidays in Golden Week 2026, got %d", len(holidays))
	}

	for i := 1; i < len(holidays); i++ {
		if !holidays[i].Date.After(holidays[i-1].Date) {
			t.Errorf("not sorted at index %d", i)
		}
	}
}

func TestHolidaysBetween_Reversed(t *testing.T) {
	holidays := HolidaysBetween(d(2026, time.December, 31), d(2026, time.January, 1))
	if holidays != nil {
		t.Errorf("expected nil for reversed range, got %d entries", len(holidays))
	}
}

func TestHolidaysBetween_SameDay(t *testing.T) {
	if got := HolidaysBetween(d(2026, time.January, 1), d(2026, time.January, 1)); len(got) != 1 {
		t.Errorf("holiday: expected 1 entry, got %d", len(got))
	}
	if got := HolidaysBetween(d(2026, time.June, 10), d(2026, time.June, 10)); len(got) != 0 {
		t.Errorf("non-holiday: expected 0 entries, got %d", len(got))
	}
}

// --- Custom holiday tests ---

func TestCustomHoliday_AddAndRemove(t *testing.T) {
	cal := New()
	day := d(2026, time.June, 15)

	if cal.IsHoliday(day) {
		t.Fatal("June 15 should not be a holiday by default")
	}

	cal.AddCustomHoliday(day, "会社記念日")
	if !cal.IsHoliday(day) {
		t.Fatal("June 15 should be a holiday after adding")
	}
	if got := cal.HolidayName(day); got != "会社記念日" {
		t.Errorf("HolidayName = %q, want 会社記念日", got)
	}
	if e, _ := cal.Lookup(day); e.Holiday != 0 {
		t.Errorf("custom entry Holiday = %v, want zero", e.Holiday)
	}

	cal.RemoveCustomHoliday(day)
	if cal.IsHoliday(day) {
		t.Fatal("June 15 should not be a holiday after removal")
	}
}

func TestCustomHoliday_Overwrite(t *testing.T) {
	cal := New()
	day := d(2026, time.June, 15)

	cal.AddCustomHoliday(day, "記念日A")
	cal.AddCustomHoliday(day, "記念日B")
	if got := cal.HolidayName(day); got != "記念日B" {
		t.Errorf("HolidayName = %q, want 記念日B", got)
	}
}

func TestCustomHoliday_AppearsInRange(t *testing.T) {
	cal := New()
	cal.AddCustomHoliday(d(2026, time.June, 15), "会社記念日")

	holidays := cal.HolidaysInMonth(2026, time.June)
	if len(holidays) != 1 {
		t.Fatalf("expected 1 holiday in June, got %d", len(holidays))
	}
	if holidays[0].Name != "会社記念日" {
		t.Errorf("expected 会社記念日, got %q", holidays[0].Name)
	}
}

func TestCustomHoliday_TakesPrecedence(t *testing.T) {
	cal := New()
	newYears := d(2026, time.January, 1)
	cal.AddCustomHoliday(newYears, "カスタム元日")

	if got := cal.HolidayName(newYears); got != "カスタム元日" {
		t.Errorf("custom should take precedence, got %q", got)
	}

	holidays := cal.HolidaysBetween(newYears, newYears)
	if len(holidays) != 1 {
		t.Fatalf("expected 1 holiday (no duplicate), got %d", len(holidays))
	}
	if holidays[0].Name != "カスタム元日" {
		t.Errorf("expected custom name, got %q", holidays[0].Name)
	}
}

func TestRemoveHoliday(t *testing.T) {
	cal := New()
	newYears := d(2026, time.January, 1)

	cal.RemoveHoliday(newYears)
	if cal.IsHoliday(newYears) {
		t.Fatal("New Years should not be a holiday after removal")
	}
	if got := cal.HolidayName(newYears); got != "" {
		t.Errorf("HolidayName should be empty, got %q", got)
	}
	for _, h := range cal.HolidaysInMonth(2026, time.January) {
		if h.Name == "元日" {
			t.Error("removed holiday should not appear in range queries")
		}
	}

	cal.RestoreHoliday(newYears)
	if !cal.IsHoliday(newYears) {
		t.Fatal("New Years should be restored")
	}
}

func TestRemoveHoliday_DoesNotAffectEngine(t *testing.T) {
	cal := New()
	cal.RemoveHoliday(d(2026, time.January, 1))

	if _, ok := HolidayOn(ymd(2026, time.January, 1)); !ok {
		t.Error("removing from a Calendar must not change the rule engine")
	}
}

func TestCustomHoliday_DoesNotAffectDefault(t *testing.T) {
	cal := New()
	day := d(2026, time.August, 15)
	cal.AddCustomHoliday(day, "お盆")

	if IsHoliday(day) {
		t.Fatal("package-level should not see cal's custom holiday")
	}
}

func TestRemoveCustomHoliday_NoEffect(t *testing.T) {
	cal := New()
	cal.RemoveCustomHoliday(d(2026, time.June, 15))
}

// --- Concurrency tests ---

func TestConcurrentAccess(t *testing.T) {
	cal := New()
	var wg sync.WaitGroup

	for range 100 {
		wg.Go(func() {
			cal.IsHoliday(d(2026, time.January, 1))
			cal.HolidayName(d(2026, time.May, 3))
			cal.HolidaysInYear(2026)
			cal.NextHoliday(d(2026, time.June, 1))
		})
	}

	for i := range 50 {
		wg.Go(func() {
			day := d(2026, time.June, i%28+1)
			cal.AddCustomHoliday(day, "テスト")
			cal.RemoveCustomHoliday(day)
		})
	}

	wg.Wait()
}
