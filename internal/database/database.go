package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mrlokans/lending-library/internal/config"
	"github.com/mrlokans/lending-library/internal/entities"
	"github.com/mrlokans/lending-library/internal/logger"
	"github.com/mrlokans/lending-library/internal/money"
)

var defaultPlans = []entities.Plan{
	{Duration: "1 Month", Cost: money.MustParse("199.00"), Details: "Rent up to 4 books per month"},
	{Duration: "3 Months", Cost: money.MustParse("499.00"), Details: "Rent up to 15 books and one premium title"},
	{Duration: "12 Months", Cost: money.MustParse("1799.00"), Details: "Unlimited rentals for a year"},
}

// Options control what happens after the connection is established.
type Options struct {
	Logger         *slog.Logger
	SeedPlans      bool
	SkipMigrations bool
	SQLLogging     bool // Echo every statement through GORM's logger
}

type Database struct {
	DB      *gorm.DB
	dialect string
	log     *slog.Logger
}

// NewDatabase connects to the configured store, brings the schema up to date
// and seeds reference data. The pool is limited to one connection once setup
// is done, so the whole session shares a single handle.
func NewDatabase(ctx context.Context, cfg config.Database, opts Options) (*Database, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	log = logger.WithComponent(log, "database")

	dialector, dialect, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gormLog := gormlogger.Default.LogMode(gormlogger.Silent)
	if opts.SQLLogging {
		gormLog = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLog,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db, dialect: dialect, log: log}

	if !opts.SkipMigrations {
		if err := database.Migrate(ctx); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	if opts.SeedPlans {
		if err := database.seedPlans(ctx); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to seed plans: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		database.Close()
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	log.Info("database initialized", slog.String("driver", cfg.Driver))

	return database, nil
}

func dialectorFor(cfg config.Database) (gorm.Dialector, string, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		return sqlite.Open(sqliteDSN(cfg.Path)), "sqlite3", nil
	case config.DriverMySQL:
		return mysql.Open(cfg.DSN), "mysql", nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN), "postgres", nil
	default:
		return nil, "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off per connection.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys=") || strings.Contains(path, "_fk=") {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

func (d *Database) Dialect() string {
	return d.dialect
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// seedPlans fills an empty plans table. Plans edited or removed by hand are left alone.
func (d *Database) seedPlans(ctx context.Context) error {
	var count int64
	if err := d.DB.WithContext(ctx).Model(&entities.Plan{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, plan := range defaultPlans {
		if err := d.DB.WithContext(ctx).Create(&plan).Error; err != nil {
			return fmt.Errorf("failed to create plan %s: %w", plan.Duration, err)
		}
		d.log.Info("created plan", slog.String("duration", plan.Duration))
	}
	return nil
}
