package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type PasswordPolicy string

const (
	PasswordPolicyPlaintext PasswordPolicy = "plaintext" // Stored and compared as typed (default)
	PasswordPolicyBcrypt    PasswordPolicy = "bcrypt"    // Stored as a bcrypt hash
)

type (
	Config struct {
		Database
		Log
		Auth
		Library
		Audit
	}

	Database struct {
		Driver string // sqlite, mysql or postgres
		Path   string // SQLite file, used when Driver is sqlite
		DSN    string // Connection string for mysql/postgres
	}
	Log struct {
		Level  string // debug, info, warn, error
		Format string // text or json
		Output string // stderr, stdout or a file path
	}
	Auth struct {
		PasswordPolicy PasswordPolicy
		BcryptCost     int
	}
	Library struct {
		CurrencyLabel string // Printed before every amount, e.g. "Rs."
		SeedPlans     bool   // Insert the default plans into an empty plans table
	}
	Audit struct {
		Enabled bool
		Limit   int // Default number of events shown by the audit command
	}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("database_driver", DriverSQLite)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", "")

	v.SetDefault("log_level", "warn") // Keep menus free of info chatter
	v.SetDefault("log_format", "text")
	v.SetDefault("log_output", "stderr")

	v.SetDefault("auth_password_policy", string(PasswordPolicyPlaintext))
	v.SetDefault("auth_bcrypt_cost", 12)

	v.SetDefault("library_currency_label", DefaultCurrencyLabel)
	v.SetDefault("library_seed_plans", true)

	v.SetDefault("audit_enabled", true)
	v.SetDefault("audit_limit", 50)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Database: Database{
			Driver: v.GetString("DATABASE_DRIVER"),
			Path:   v.GetString("DATABASE_PATH"),
			DSN:    v.GetString("DATABASE_DSN"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
		Auth: Auth{
			PasswordPolicy: PasswordPolicy(v.GetString("AUTH_PASSWORD_POLICY")),
			BcryptCost:     v.GetInt("AUTH_BCRYPT_COST"),
		},
		Library: Library{
			CurrencyLabel: v.GetString("LIBRARY_CURRENCY_LABEL"),
			SeedPlans:     v.GetBool("LIBRARY_SEED_PLANS"),
		},
		Audit: Audit{
			Enabled: v.GetBool("AUDIT_ENABLED"),
			Limit:   v.GetInt("AUDIT_LIMIT"),
		},
	}
}

// NewConfig reads configuration from the environment only.
func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return fromViper(v)
}

// LoadConfig reads an optional config file (yaml, toml or json) and lets
// environment variables override it. An empty path is the same as NewConfig.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return NewConfig(), nil
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the application cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("DATABASE_PATH is required for the %s driver", DriverSQLite)
		}
	case DriverMySQL, DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("DATABASE_DSN is required for the %s driver", c.Database.Driver)
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}

	switch c.Auth.PasswordPolicy {
	case PasswordPolicyPlaintext, PasswordPolicyBcrypt:
	default:
		return fmt.Errorf("unsupported AUTH_PASSWORD_POLICY %q", c.Auth.PasswordPolicy)
	}
	return nil
}
