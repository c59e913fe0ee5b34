package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create sqlmock")

	database := sqlx.NewDb(sqlDB, "sqlmock")
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet(), "unmet sql expectations")
		_ = database.Close()
	})

	return database, mock
}
