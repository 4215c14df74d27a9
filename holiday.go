package koyomi

// Holiday identifies a legally distinct Japanese national holiday.
// The zero value means "not a holiday".
type Holiday uint8

// National holidays defined by the 国民の祝日に関する法律 and its amendments.
const (
	_ Holiday = iota
	NewYearsDay
	ComingOfAgeDay
	NationalFoundationDay
	VernalEquinoxDay
	ShowaDay
	ConstitutionDay
	GreeneryDay
	ChildrensDay
	MarineDay
	MountainDay
	RespectForTheAgedDay
	AutumnalEquinoxDay
	HealthSportsDay
	SportsDay
	CultureDay
	LaborThanksgivingDay
	EmperorsBirthday
	SubstituteHoliday

	// One-off holidays for imperial ceremonies, each enacted by its own law.
	WeddingOfPrinceAkihito
	FuneralOfEmperorShowa
	EnthronementCeremonyHeisei
	WeddingOfPrinceNaruhito
	EnthronementReiwa
	EnthronementCeremonyReiwa

	numHolidays
)

// AllHolidays returns every holiday variant in declaration order.
func AllHolidays() []Holiday {
	hs := make([]Holiday, 0, numHolidays-1)
	for h := NewYearsDay; h < numHolidays; h++ {
		hs = append(hs, h)
	}
	return hs
}

// Name returns the Japanese display name of the holiday (e.g. "元日"),
// or "" for the zero value.
func (h Holiday) Name() string {
	switch h {
	case NewYearsDay:
		return "元日"
	case ComingOfAgeDay:
		return "成人の日"
	case NationalFoundationDay:
		return "建国記念の日"
	case VernalEquinoxDay:
		return "春分の日"
	case ShowaDay:
		return "昭和の日"
	case ConstitutionDay:
		return "憲法記念日"
	case GreeneryDay:
		return "みどりの日"
	case ChildrensDay:
		return "こどもの日"
	case MarineDay:
		return "海の日"
	case MountainDay:
		return "山の日"
	case RespectForTheAgedDay:
		return "敬老の日"
	case AutumnalEquinoxDay:
		return "秋分の日"
	case HealthSportsDay:
		return "体育の日"
	case SportsDay:
		return "スポーツの日"
	case CultureDay:
		return "文化の日"
	case LaborThanksgivingDay:
		return "勤労感謝の日"
	case EmperorsBirthday:
		return "天皇誕生日"
	case SubstituteHoliday:
		return "振替休日"
	case WeddingOfPrinceAkihito:
		return "明仁親王の結婚の儀"
	case FuneralOfEmperorShowa:
		return "昭和天皇大喪の礼"
	case EnthronementCeremonyHeisei:
		return "即位礼正殿の儀"
	case WeddingOfPrinceNaruhito:
		return "徳仁親王の結婚の儀"
	case EnthronementReiwa:
		return "天皇即位"
	case EnthronementCeremonyReiwa:
		return "即位礼正殿の儀"
	}
	return ""
}

// String implements fmt.Stringer and returns the Japanese name.
func (h Holiday) String() string {
	return h.Name()
}

// English returns an English label for the holiday.
func (h Holiday) English() string {
	switch h {
	case NewYearsDay:
		return "New Year's Day"
	case ComingOfAgeDay:
		return "Coming of Age Day"
	case NationalFoundationDay:
		return "National Foundation Day"
	case VernalEquinoxDay:
		return "Vernal Equinox Day"
	case ShowaDay:
		return "Showa Day"
	case ConstitutionDay:
		return "Constitution Memorial Day"
	case GreeneryDay:
		return "Greenery Day"
	case ChildrensDay:
		return "Children's Day"
	case MarineDay:
		return "Marine Day"
	case MountainDay:
		return "Mountain Day"
	case RespectForTheAgedDay:
		return "Respect for the Aged Day"
	case AutumnalEquinoxDay:
		return "Autumnal Equinox Day"
	case HealthSportsDay:
		return "Health and Sports Day"
	case SportsDay:
		return "Sports Day"
	case CultureDay:
		return "Culture Day"
	case LaborThanksgivingDay:
		return "Labor Thanksgiving Day"
	case EmperorsBirthday:
		return "Emperor's Birthday"
	case SubstituteHoliday:
		return "Substitute Holiday"
	case WeddingOfPrinceAkihito:
		return "Wedding Ceremony of Crown Prince Akihito"
	case FuneralOfEmperorShowa:
		return "Funeral Ceremony of Emperor Showa"
	case EnthronementCeremonyHeisei:
		return "Enthronement Ceremony (Heisei)"
	case WeddingOfPrinceNaruhito:
		return "Wedding Ceremony of Crown Prince Naruhito"
	case EnthronementReiwa:
		return "Enthronement Day (Reiwa)"
	case EnthronementCeremonyReiwa:
		return "Enthronement Ceremony (Reiwa)"
	}
	return ""
}

// IsImperialCeremony reports whether h is a one-off imperial ceremony day.
func (h Holiday) IsImperialCeremony() bool {
	return h >= WeddingOfPrinceAkihito && h < numHolidays
}
