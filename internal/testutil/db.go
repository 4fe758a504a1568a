// Package testutil provides helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/axellelanca/portfolio/internal/config"
	"github.com/axellelanca/portfolio/internal/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a migrated SQLite database stored in a per-test temporary
// directory. It is closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := config.Config{}
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Name = filepath.Join(t.TempDir(), "portfolio_test.db")
	cfg.Database.LogLevel = "silent"

	db, err := database.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
