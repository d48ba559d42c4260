package calendar

import (
	"fmt"
	"time"

	"github.com/nurpe/nomina-settlement/internal/model"
)

const isoDate = "2006-01-02"

// Holidays2025 is the Colombian public holiday list for 2025.
var Holidays2025 = []string{
	"2025-01-01", "2025-01-06", "2025-03-24", "2025-03-25", "2025-05-01", "2025-05-14",
	"2025-06-16", "2025-07-20", "2025-08-07", "2025-08-18", "2025-10-13", "2025-11-03",
	"2025-11-17", "2025-12-08", "2025-12-25",
}

// Calendar classifies dates as Sunday and/or holiday. It is immutable once
// built and safe for concurrent use.
type Calendar struct {
	holidays map[string]struct{}
}

func New(holidays []string) (*Calendar, error) {
	set := make(map[string]struct{}, len(holidays))
	for _, raw := range holidays {
		d, err := time.Parse(isoDate, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid holiday date %q: %w", raw, err)
		}
		set[d.Format(isoDate)] = struct{}{}
	}
	return &Calendar{holidays: set}, nil
}

// With returns a new calendar holding the receiver's holidays plus dates.
func (c *Calendar) With(dates []time.Time) *Calendar {
	set := make(map[string]struct{}, len(c.holidays)+len(dates))
	for day := range c.holidays {
		set[day] = struct{}{}
	}
	for _, d := range dates {
		set[ISO(d)] = struct{}{}
	}
	return &Calendar{holidays: set}
}

// Classify uses the date's own calendar fields, so a date carrying a
// non-UTC location is never shifted to a neighbouring day.
func (c *Calendar) Classify(date time.Time) model.DayClass {
	if date.IsZero() {
		return model.DayClass{}
	}
	_, isHoliday := c.holidays[ISO(date)]
	return model.DayClass{
		IsSunday:  date.Weekday() == time.Sunday,
		IsHoliday: isHoliday,
	}
}

func (c *Calendar) IsHolidayOrSunday(date time.Time) bool {
	return c.Classify(date).SundayOrHoliday()
}

func (c *Calendar) Len() int {
	return len(c.holidays)
}

func ISO(date time.Time) string {
	y, m, d := date.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// DateOnly drops the clock part while keeping the calendar day.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
