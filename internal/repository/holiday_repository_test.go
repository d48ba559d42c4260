package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nurpe/nomina-settlement/internal/model"
)

func newRepo(t *testing.T) (*HolidayRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	database, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return NewHolidayRepository(database), mock
}

func TestListHolidays(t *testing.T) {
	repo, mock := newRepo(t)

	rows := sqlmock.NewRows([]string{"holiday_date", "name"}).
		AddRow(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "Año Nuevo").
		AddRow(time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC), "Reyes Magos")
	mock.ExpectQuery("SELECT holiday_date, name\\s+FROM payroll_holidays").WillReturnRows(rows)

	holidays, err := repo.ListHolidays(context.Background())
	require.NoError(t, err)
	require.Len(t, holidays, 2)
	assert.Equal(t, "Año Nuevo", holidays[0].Name)
	assert.Equal(t, 12, holidays[1].Date.Day())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListHolidaysPropagatesErrors(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery("FROM payroll_holidays").WillReturnError(errors.New("relation does not exist"))

	_, err := repo.ListHolidays(context.Background())
	assert.Error(t, err)
}

func TestUpsertHoliday(t *testing.T) {
	repo, mock := newRepo(t)
	date := time.Date(2026, time.March, 23, 15, 30, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO payroll_holidays").
		WithArgs(time.Date(2026, time.March, 23, 0, 0, 0, 0, time.UTC), "San José").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertHoliday(context.Background(), model.Holiday{Date: date, Name: "San José"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteHoliday(t *testing.T) {
	repo, mock := newRepo(t)
	date := time.Date(2026, time.March, 23, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("DELETE FROM payroll_holidays").WithArgs(date).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM payroll_holidays").WithArgs(date).WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.DeleteHoliday(context.Background(), date)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.DeleteHoliday(context.Background(), date)
	require.NoError(t, err)
	assert.False(t, removed)
}
