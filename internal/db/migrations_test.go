package db

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	database, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return database, mock
}

func TestRunMigrations(t *testing.T) {
	database, mock := newMockDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS payroll_holidays").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_payroll_holidays_year").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, runMigrations(database))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsReportsFailingStatement(t *testing.T) {
	database, mock := newMockDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS payroll_holidays").WillReturnError(errors.New("permission denied"))

	err := runMigrations(database)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration 1 failed")
}
