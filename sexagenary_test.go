package koyomi

import (
	"errors"
	"testing"
)

func TestSexagenaryOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year   int
		want   string
		branch string
	}{
		{1984, "甲子", "子"},
		{2024, "甲辰", "辰"},
		{2025, "乙巳", "巳"},
		{2026, "丙午", "午"},
		{1868, "戊辰", "辰"},
		{1, "辛酉", "酉"},
		{-56, "甲子", "子"},
	}
	for _, tt := range tests {
		s := SexagenaryOf(tt.year)
		if got := s.Name(); got != tt.want {
			t.Errorf("SexagenaryOf(%d) = %q, want %q", tt.year, got, tt.want)
		}
		if got := s.Branch().Name(); got != tt.branch {
			t.Errorf("SexagenaryOf(%d).Branch() = %q, want %q", tt.year, got, tt.branch)
		}
	}
}

func TestSexagenary_CycleIsDistinct(t *testing.T) {
	t.Parallel()

	seen := make(map[string]int)
	for year := 1984; year < 1984+60; year++ {
		name := SexagenaryOf(year).String()
		if prev, ok := seen[name]; ok {
			t.Errorf("%d and %d share %s", prev, year, name)
		}
		seen[name] = year
	}
	if SexagenaryOf(1984) != SexagenaryOf(2044) {
		t.Error("cycle should repeat every 60 years")
	}
}

func TestParseSexagenary(t *testing.T) {
	t.Parallel()

	s, err := ParseSexagenary("甲辰")
	if err != nil {
		t.Fatalf("ParseSexagenary(甲辰) error: %v", err)
	}
	if s != SexagenaryOf(2024) {
		t.Errorf("ParseSexagenary(甲辰) = %d, want %d", s, SexagenaryOf(2024))
	}

	// 甲 pairs only with even branches.
	if _, err := ParseSexagenary("甲丑"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("ParseSexagenary(甲丑) error = %v, want ErrUnknownName", err)
	}
}

func TestParseStemAndBranch(t *testing.T) {
	t.Parallel()

	if b, err := ParseEarthlyBranch("辰"); err != nil || b != 4 {
		t.Errorf("ParseEarthlyBranch(辰) = %d, %v; want 4", b, err)
	}
	if s, err := ParseHeavenlyStem("癸"); err != nil || s != 9 {
		t.Errorf("ParseHeavenlyStem(癸) = %d, %v; want 9", s, err)
	}
	if _, err := ParseEarthlyBranch("猫"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("ParseEarthlyBranch(猫) error = %v, want ErrUnknownName", err)
	}
	if _, err := ParseHeavenlyStem("子"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("ParseHeavenlyStem(子) error = %v, want ErrUnknownName", err)
	}
}
