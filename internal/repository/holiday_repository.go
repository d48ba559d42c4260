package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nurpe/nomina-settlement/internal/model"
)

type HolidayRepository struct {
	db *gorm.DB
}

func NewHolidayRepository(db *gorm.DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

func (r *HolidayRepository) ListHolidays(ctx context.Context) ([]model.Holiday, error) {
	var rows []struct {
		HolidayDate time.Time
		Name        string
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT holiday_date, name
		FROM payroll_holidays
		ORDER BY holiday_date
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]model.Holiday, 0, len(rows))
	for _, row := range rows {
		result = append(result, model.Holiday{Date: row.HolidayDate, Name: row.Name})
	}
	return result, nil
}

// UpsertHoliday inserts the date or renames it when it already exists.
func (r *HolidayRepository) UpsertHoliday(ctx context.Context, holiday model.Holiday) error {
	y, m, d := holiday.Date.Date()
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO payroll_holidays (holiday_date, name)
		VALUES (?, ?)
		ON CONFLICT (holiday_date) DO UPDATE SET name = EXCLUDED.name
	`, time.Date(y, m, d, 0, 0, 0, 0, time.UTC), holiday.Name).Error
}

func (r *HolidayRepository) DeleteHoliday(ctx context.Context, date time.Time) (bool, error) {
	y, m, d := date.Date()
	res := r.db.WithContext(ctx).Exec(
		`DELETE FROM payroll_holidays WHERE holiday_date = ?`,
		time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
