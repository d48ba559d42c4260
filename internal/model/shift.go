package model

import "time"

// WorkedShift is a validated single-day schedule.
type WorkedShift struct {
	Date         time.Time
	Start        ClockTime
	End          ClockTime
	BreakMinutes int
}
