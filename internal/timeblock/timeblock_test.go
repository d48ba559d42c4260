package timeblock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/nomina-settlement/internal/model"
)

func clock(raw string) model.ClockTime {
	return model.MustParseClock(raw)
}

func TestHours(t *testing.T) {
	tests := []struct {
		start, end string
		want       float64
	}{
		{"08:00", "18:00", 10},
		{"22:00", "23:00", 1},
		{"22:00", "06:00", 8},
		{"23:30", "00:15", 0.75},
		{"08:00", "08:00", 0},
		{"08:00", "08:20", 0.33},
		{"09:10", "17:50", 8.67},
	}

	for _, tc := range tests {
		t.Run(tc.start+"-"+tc.end, func(t *testing.T) {
			assert.Equal(t, tc.want, Hours(clock(tc.start), clock(tc.end)))
		})
	}
}

func TestHoursWrapsExactlyWhenEndBeforeStart(t *testing.T) {
	for s := 0; s < 24*60; s += 37 {
		for e := 0; e < 24*60; e += 41 {
			start, end := model.ClockTime(s), model.ClockTime(e)
			raw := float64(e-s) / 60
			got := Hours(start, end)
			if e < s {
				assert.InDelta(t, raw+24, got, 0.005)
			} else {
				assert.InDelta(t, raw, got, 0.005)
			}
		}
	}
}

func TestNetHoursNeverNegativeAndDecreasesWithBreak(t *testing.T) {
	start, end := clock("08:00"), clock("12:00")

	prev := NetHours(start, end, 0)
	assert.Equal(t, 4.0, prev)
	for brk := 15; brk <= 600; brk += 15 {
		got := NetHours(start, end, brk)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, prev)
		prev = got
	}
	assert.Equal(t, 0.0, NetHours(start, end, 600))
}

func TestIsDayShift(t *testing.T) {
	assert.True(t, IsDayShift(clock("06:00"), clock("22:00")))
	assert.True(t, IsDayShift(clock("08:00"), clock("18:00")))
	assert.False(t, IsDayShift(clock("05:59"), clock("14:00")))
	assert.False(t, IsDayShift(clock("14:00"), clock("22:01")))
	assert.False(t, IsDayShift(clock("22:00"), clock("23:00")))
}

func TestDetectOvertime(t *testing.T) {
	weekday := time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)

	t.Run("day shift over eight hours", func(t *testing.T) {
		got := DetectOvertime(model.WorkedShift{Date: weekday, Start: clock("08:00"), End: clock("18:00"), BreakMinutes: 60})
		require.NotNil(t, got)
		assert.Equal(t, model.KindDayOvertime, got.Block.Kind)
		assert.Equal(t, 1.0, got.Hours)
	})

	t.Run("night shift over eight hours", func(t *testing.T) {
		got := DetectOvertime(model.WorkedShift{Date: weekday, Start: clock("14:00"), End: clock("23:30")})
		require.NotNil(t, got)
		assert.Equal(t, model.KindNightOvertime, got.Block.Kind)
		assert.Equal(t, 1.5, got.Hours)
	})

	t.Run("exactly eight hours", func(t *testing.T) {
		got := DetectOvertime(model.WorkedShift{Date: weekday, Start: clock("08:00"), End: clock("17:00"), BreakMinutes: 60})
		assert.Nil(t, got)
	})
}

func TestDetectSundayHoliday(t *testing.T) {
	shift := model.WorkedShift{Start: clock("08:00"), End: clock("18:00"), BreakMinutes: 60}

	t.Run("weekday", func(t *testing.T) {
		assert.Nil(t, DetectSundayHoliday(shift, model.DayClass{}))
	})

	t.Run("sunday caps ordinary hours at eight", func(t *testing.T) {
		got := DetectSundayHoliday(shift, model.DayClass{IsSunday: true})
		require.NotNil(t, got)
		assert.Equal(t, 8.0, got.Hours)
		assert.Equal(t, model.KindSundayHolidayDifferential, got.Block.Kind)
		assert.Equal(t, model.DayTagSunday, got.Tag)
	})

	t.Run("holiday short shift", func(t *testing.T) {
		short := model.WorkedShift{Start: clock("08:00"), End: clock("12:00")}
		got := DetectSundayHoliday(short, model.DayClass{IsHoliday: true})
		require.NotNil(t, got)
		assert.Equal(t, 4.0, got.Hours)
		assert.Equal(t, model.DayTagHoliday, got.Tag)
	})

	t.Run("sunday and holiday", func(t *testing.T) {
		got := DetectSundayHoliday(shift, model.DayClass{IsSunday: true, IsHoliday: true})
		require.NotNil(t, got)
		assert.Equal(t, model.DayTagSundayHoliday, got.Tag)
	})

	t.Run("break swallows the whole shift", func(t *testing.T) {
		short := model.WorkedShift{Start: clock("08:00"), End: clock("09:00"), BreakMinutes: 90}
		assert.Nil(t, DetectSundayHoliday(short, model.DayClass{IsSunday: true}))
	})
}
