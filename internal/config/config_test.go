package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, PasswordPolicyPlaintext, cfg.Auth.PasswordPolicy)
	assert.Equal(t, "Rs.", cfg.Library.CurrencyLabel)
	assert.True(t, cfg.Library.SeedPlans)
	assert.True(t, cfg.Audit.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/other.db")
	t.Setenv("AUTH_PASSWORD_POLICY", "bcrypt")
	t.Setenv("LIBRARY_CURRENCY_LABEL", "$")
	t.Setenv("LIBRARY_SEED_PLANS", "false")

	cfg := NewConfig()

	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Equal(t, PasswordPolicyBcrypt, cfg.Auth.PasswordPolicy)
	assert.Equal(t, "$", cfg.Library.CurrencyLabel)
	assert.False(t, cfg.Library.SeedPlans)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	content := "database_driver: mysql\ndatabase_dsn: user:pass@tcp(localhost:3306)/library?parseTime=true\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Contains(t, cfg.Database.DSN, "tcp(localhost:3306)")
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Driver = "oracle"
	assert.Error(t, cfg.Validate())

	cfg = NewConfig()
	cfg.Database.Driver = DriverPostgres
	assert.Error(t, cfg.Validate(), "postgres requires a DSN")

	cfg.Database.DSN = "postgres://localhost/library"
	assert.NoError(t, cfg.Validate())

	cfg.Auth.PasswordPolicy = "rot13"
	assert.Error(t, cfg.Validate())
}
