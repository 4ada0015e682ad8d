package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/household-expenses/backend/config"
	"github.com/household-expenses/backend/internal/integration/persistence/model"
)

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "household.db?_pragma=foreign_keys(1)", sqliteDSN("household.db"))
	assert.Equal(t, "file::memory:?cache=shared&_pragma=foreign_keys(1)", sqliteDSN("file::memory:?cache=shared"))
	assert.Equal(t, "x.db?_pragma=busy_timeout(5000)", sqliteDSN("x.db?_pragma=busy_timeout(5000)"))
}

func TestNewConnection_UnknownDriver(t *testing.T) {
	_, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestNewConnection_SQLite(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		URL:             "file::memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(model.AllModels()...))
	assert.True(t, database.DB().Migrator().HasTable("people"))
	assert.True(t, database.DB().Migrator().HasTable("categories"))
	assert.True(t, database.DB().Migrator().HasTable("transactions"))
	assert.True(t, database.HealthCheck(context.Background()))

	require.NoError(t, database.Close())
	assert.False(t, database.HealthCheck(context.Background()))
}
