package config

// Supported values for DATABASE_DRIVER
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

const (
	// DefaultDatabasePath is the default SQLite file for the library
	DefaultDatabasePath = "./library.db"

	// DefaultCurrencyLabel is printed in front of amounts
	DefaultCurrencyLabel = "Rs."
)
