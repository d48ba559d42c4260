package timeblock

import (
	"math"

	"github.com/nurpe/nomina-settlement/internal/model"
)

const (
	OrdinaryDailyHours = 8.0

	dayWindowStart = model.ClockTime(6 * 60)
	dayWindowEnd   = model.ClockTime(22 * 60)
)

// Detection is an automatically derived surcharge block with its hour count.
type Detection struct {
	Block model.TimeBlock
	Hours float64
	Tag   model.DayTag
}

// Hours is the elapsed time between start and end rounded to two decimals. An
// end before the start wraps past midnight once.
func Hours(start, end model.ClockTime) float64 {
	diff := float64(end.Minutes()-start.Minutes()) / 60
	if diff < 0 {
		diff += 24
	}
	return math.Round(diff*100) / 100
}

// NetHours subtracts the unpaid break from the rounded elapsed hours, never
// going below zero. The result itself is left unrounded so that pricing keeps
// the exact fraction of a break; callers round for display.
func NetHours(start, end model.ClockTime, breakMinutes int) float64 {
	return math.Max(0, Hours(start, end)-float64(breakMinutes)/60)
}

// IsDayShift reports whether start is at or after 06:00 and end at or before
// 22:00. Both bounds compare plain clock values, wraparound is not considered.
func IsDayShift(start, end model.ClockTime) bool {
	return start >= dayWindowStart && end <= dayWindowEnd
}

func DetectOvertime(shift model.WorkedShift) *Detection {
	net := NetHours(shift.Start, shift.End, shift.BreakMinutes)
	if net <= OrdinaryDailyHours {
		return nil
	}
	kind := model.KindNightOvertime
	if IsDayShift(shift.Start, shift.End) {
		kind = model.KindDayOvertime
	}
	return &Detection{
		Block: model.TimeBlock{Start: shift.Start, End: shift.End, Kind: kind},
		Hours: net - OrdinaryDailyHours,
	}
}

// DetectSundayHoliday returns the ordinary hours (capped at eight) worked on a
// Sunday or holiday, or nil on any other day.
func DetectSundayHoliday(shift model.WorkedShift, day model.DayClass) *Detection {
	if !day.SundayOrHoliday() {
		return nil
	}
	ordinary := math.Min(OrdinaryDailyHours, NetHours(shift.Start, shift.End, shift.BreakMinutes))
	if ordinary <= 0 {
		return nil
	}
	return &Detection{
		Block: model.TimeBlock{Start: shift.Start, End: shift.End, Kind: model.KindSundayHolidayDifferential},
		Hours: ordinary,
		Tag:   day.Tag(),
	}
}
