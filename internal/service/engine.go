package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nurpe/nomina-settlement/internal/calendar"
	"github.com/nurpe/nomina-settlement/internal/config"
	"github.com/nurpe/nomina-settlement/internal/model"
	"github.com/nurpe/nomina-settlement/internal/rates"
	"github.com/nurpe/nomina-settlement/internal/settlement"
)

// HolidaySource is the optional holiday table; the gorm repository
// implements it.
type HolidaySource interface {
	ListHolidays(ctx context.Context) ([]model.Holiday, error)
}

// BuildEngine assembles the calendar and rate table from configuration.
// source may be nil when no database is configured.
func BuildEngine(ctx context.Context, cfg config.PayrollConfig, source HolidaySource) (*settlement.Engine, error) {
	holidays := make([]string, 0, len(calendar.Holidays2025)+len(cfg.ExtraHolidays))
	holidays = append(holidays, calendar.Holidays2025...)
	holidays = append(holidays, cfg.ExtraHolidays...)

	cal, err := calendar.New(holidays)
	if err != nil {
		return nil, err
	}

	if source != nil {
		stored, err := source.ListHolidays(ctx)
		if err != nil {
			return nil, fmt.Errorf("load holidays: %w", err)
		}
		dates := make([]time.Time, 0, len(stored))
		for _, h := range stored {
			dates = append(dates, h.Date)
		}
		cal = cal.With(dates)
	}

	policy, err := rates.ParsePolicy(cfg.OvertimePolicy)
	if err != nil {
		return nil, err
	}
	tiers := rates.DefaultSundayTiers()
	if len(cfg.SundayTiers) == 3 {
		tiers = rates.SundayTiers{First: cfg.SundayTiers[0], Second: cfg.SundayTiers[1], Third: cfg.SundayTiers[2]}
	}

	params := settlement.DefaultParams()
	if cfg.MinimumWage > 0 {
		params.MinimumWage = cfg.MinimumWage
	}
	if cfg.TransportAllowance > 0 {
		params.TransportAllowance = cfg.TransportAllowance
	}
	if cfg.MonthlyHours > 0 {
		params.MonthlyHours = cfg.MonthlyHours
	}

	return settlement.NewEngine(params, cal, rates.NewTable(policy, tiers)), nil
}
