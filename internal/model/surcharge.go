package model

type SurchargeKind string

const (
	KindDayOvertime               SurchargeKind = "day_overtime"
	KindNightOvertime             SurchargeKind = "night_overtime"
	KindNightDifferential         SurchargeKind = "night_differential"
	KindSundayHolidayDifferential SurchargeKind = "sunday_holiday_differential"
	KindNightSundayDifferential   SurchargeKind = "night_sunday_differential"

	// Legacy kinds kept for requests that declare Sunday overtime explicitly.
	KindSundayDayOvertime   SurchargeKind = "sunday_day_overtime"
	KindSundayNightOvertime SurchargeKind = "sunday_night_overtime"
)

var surchargeLabels = map[SurchargeKind]string{
	KindDayOvertime:               "Hora extra diurna",
	KindNightOvertime:             "Hora extra nocturna",
	KindNightDifferential:         "Recargo nocturno",
	KindSundayHolidayDifferential: "Recargo dominical/festivo",
	KindNightSundayDifferential:   "Recargo nocturno + dominical",
	KindSundayDayOvertime:         "Hora extra diurna dominical",
	KindSundayNightOvertime:       "Hora extra nocturna dominical",
}

func (k SurchargeKind) Valid() bool {
	_, ok := surchargeLabels[k]
	return ok
}

func (k SurchargeKind) Label() string {
	if label, ok := surchargeLabels[k]; ok {
		return label
	}
	return string(k)
}

// DayTag tells which condition triggered the automatic Sunday/holiday surcharge.
type DayTag string

const (
	DayTagSunday        DayTag = "sunday"
	DayTagHoliday       DayTag = "holiday"
	DayTagSundayHoliday DayTag = "sunday_holiday"
)

type DayClass struct {
	IsSunday  bool `json:"is_sunday"`
	IsHoliday bool `json:"is_holiday"`
}

func (d DayClass) SundayOrHoliday() bool {
	return d.IsSunday || d.IsHoliday
}

// Tag returns the display tag for the day, or "" on an ordinary weekday.
func (d DayClass) Tag() DayTag {
	switch {
	case d.IsSunday && d.IsHoliday:
		return DayTagSundayHoliday
	case d.IsSunday:
		return DayTagSunday
	case d.IsHoliday:
		return DayTagHoliday
	default:
		return ""
	}
}

// TimeBlock is a priced interval. End before Start means the block crosses midnight.
type TimeBlock struct {
	Start ClockTime
	End   ClockTime
	Kind  SurchargeKind
}
