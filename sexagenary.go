package koyomi

import "fmt"

var (
	stemNames   = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
	branchNames = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
)

// HeavenlyStem is one of the ten 十干, 0 (甲) through 9 (癸).
type HeavenlyStem uint8

// Name returns the kanji of the stem.
func (s HeavenlyStem) Name() string { return stemNames[s%10] }

func (s HeavenlyStem) String() string { return s.Name() }

// EarthlyBranch is one of the twelve 十二支, 0 (子) through 11 (亥).
type EarthlyBranch uint8

// Name returns the kanji of the branch.
func (b EarthlyBranch) Name() string { return branchNames[b%12] }

func (b EarthlyBranch) String() string { return b.Name() }

// Sexagenary is a position in the sixty-year 干支 cycle, 0 (甲子) through
// 59 (癸亥).
type Sexagenary uint8

// SexagenaryOf returns the cycle position of a Gregorian year. 4 CE was a
// 甲子 year.
func SexagenaryOf(year int) Sexagenary {
	return Sexagenary(mod(year-4, 60))
}

// Stem returns the heavenly stem of the cycle position.
func (s Sexagenary) Stem() HeavenlyStem { return HeavenlyStem(s % 10) }

// Branch returns the earthly branch of the cycle position, the 干支 zodiac
// animal of the year.
func (s Sexagenary) Branch() EarthlyBranch { return EarthlyBranch(s % 12) }

// Name returns the two-kanji name, e.g. "甲辰".
func (s Sexagenary) Name() string {
	return s.Stem().Name() + s.Branch().Name()
}

func (s Sexagenary) String() string { return s.Name() }

// ParseSexagenary returns the cycle position for a two-kanji name.
func ParseSexagenary(name string) (Sexagenary, error) {
	n := normalizeName(name)
	for i := range 60 {
		if s := Sexagenary(i); s.Name() == n {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: sexagenary %q", ErrUnknownName, name)
}

// ParseEarthlyBranch returns the branch for its kanji, e.g. "辰".
func ParseEarthlyBranch(name string) (EarthlyBranch, error) {
	n := normalizeName(name)
	for i, bn := range branchNames {
		if bn == n {
			return EarthlyBranch(i), nil
		}
	}
	return 0, fmt.Errorf("%w: branch %q", ErrUnknownName, name)
}

// ParseHeavenlyStem returns the stem for its kanji, e.g. "甲".
func ParseHeavenlyStem(name string) (HeavenlyStem, error) {
	n := normalizeName(name)
	for i, sn := range stemNames {
		if sn == n {
			return HeavenlyStem(i), nil
		}
	}
	return 0, fmt.Errorf("%w: stem %q", ErrUnknownName, name)
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
