// Package dbtest opens throwaway SQLite databases for repository and service tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrlokans/lending-library/internal/config"
	"github.com/mrlokans/lending-library/internal/database"
)

// New returns a migrated database in t's temp dir, closed when the test ends.
func New(t *testing.T) *database.Database {
	t.Helper()
	return open(t, false)
}

// NewSeeded is New plus the default plans.
func NewSeeded(t *testing.T) *database.Database {
	t.Helper()
	return open(t, true)
}

func open(t *testing.T, seed bool) *database.Database {
	t.Helper()

	cfg := config.Database{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "library_test.db"),
	}
	db, err := database.NewDatabase(context.Background(), cfg, database.Options{SeedPlans: seed})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
