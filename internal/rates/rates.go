package rates

import (
	"fmt"
	"time"

	"github.com/nurpe/nomina-settlement/internal/model"
)

// OvertimePolicy decides how day and night overtime are priced on Sundays
// and holidays.
type OvertimePolicy string

const (
	// PolicyHoliday raises day/night overtime to 100%/150% when the reference
	// date is a Sunday or a holiday.
	PolicyHoliday OvertimePolicy = "holiday"
	// PolicyFlat always applies the ordinary 25%/75%; Sunday overtime must be
	// declared with the explicit sunday_* kinds.
	PolicyFlat OvertimePolicy = "flat"
)

func ParsePolicy(raw string) (OvertimePolicy, error) {
	switch OvertimePolicy(raw) {
	case "", PolicyHoliday:
		return PolicyHoliday, nil
	case PolicyFlat:
		return PolicyFlat, nil
	default:
		return "", fmt.Errorf("unknown overtime policy %q", raw)
	}
}

// SundayTiers are the effective dates of the three step-ups of the ordinary
// Sunday/holiday surcharge.
type SundayTiers struct {
	First  time.Time
	Second time.Time
	Third  time.Time
}

func DefaultSundayTiers() SundayTiers {
	return SundayTiers{
		First:  time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		Second: time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
		Third:  time.Date(2027, time.July, 1, 0, 0, 0, 0, time.UTC),
	}
}

const (
	sundayBaseline = 0.75
	sundayFirst    = 0.80
	sundaySecond   = 0.90
	sundayThird    = 1.00
)

type Table struct {
	policy OvertimePolicy
	tiers  SundayTiers
}

func NewTable(policy OvertimePolicy, tiers SundayTiers) *Table {
	if policy == "" {
		policy = PolicyHoliday
	}
	return &Table{policy: policy, tiers: tiers}
}

func (t *Table) Policy() OvertimePolicy {
	return t.policy
}

// Rate returns the surcharge fraction for kind. Callers decide whether it is
// paid on top of the ordinary hour (1 + rate) or alone.
func (t *Table) Rate(kind model.SurchargeKind, date time.Time, sundayOrHoliday bool) float64 {
	switch kind {
	case model.KindDayOvertime:
		if sundayOrHoliday && t.policy == PolicyHoliday {
			return 1.00
		}
		return 0.25
	case model.KindNightOvertime:
		if sundayOrHoliday && t.policy == PolicyHoliday {
			return 1.50
		}
		return 0.75
	case model.KindNightDifferential:
		return 0.35
	case model.KindSundayHolidayDifferential:
		return t.SundayRate(date)
	case model.KindNightSundayDifferential:
		if sundayOrHoliday {
			return 1.50
		}
		return 1.10
	case model.KindSundayDayOvertime:
		return 1.00
	case model.KindSundayNightOvertime:
		return 1.50
	default:
		return 0
	}
}

// SundayRate selects the tier by date only; a date equal to a threshold
// already gets the higher tier.
func (t *Table) SundayRate(date time.Time) float64 {
	day := dateOnly(date)
	switch {
	case !day.Before(t.tiers.Third):
		return sundayThird
	case !day.Before(t.tiers.Second):
		return sundaySecond
	case !day.Before(t.tiers.First):
		return sundayFirst
	default:
		return sundayBaseline
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
