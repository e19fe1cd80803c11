// Package entrypoint wires configuration, logging, the database and the
// services into a runnable application.
package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mrlokans/lending-library/internal/audit"
	"github.com/mrlokans/lending-library/internal/auth"
	"github.com/mrlokans/lending-library/internal/config"
	"github.com/mrlokans/lending-library/internal/console"
	"github.com/mrlokans/lending-library/internal/database"
	"github.com/mrlokans/lending-library/internal/database/accounts"
	auditRepo "github.com/mrlokans/lending-library/internal/database/audit"
	"github.com/mrlokans/lending-library/internal/database/catalog"
	"github.com/mrlokans/lending-library/internal/database/ledger"
	"github.com/mrlokans/lending-library/internal/database/plans"
	"github.com/mrlokans/lending-library/internal/display"
	"github.com/mrlokans/lending-library/internal/logger"
	"github.com/mrlokans/lending-library/internal/prompt"
	"github.com/mrlokans/lending-library/internal/services"
)

// App holds everything a command needs. Close releases it.
type App struct {
	Config   *config.Config
	Log      *slog.Logger
	DB       *database.Database
	Audit    *audit.Service
	Services console.Services

	closeLog func() error
}

type Options struct {
	// SkipMigrations opens the database without touching the schema.
	SkipMigrations bool
	// Logger replaces the logger built from cfg.Log.
	Logger *slog.Logger
}

// Bootstrap opens the database, brings the schema up to date and builds the
// services.
func Bootstrap(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, closeLog := opts.Logger, func() error { return nil }
	if log == nil {
		var err error
		log, closeLog, err = logger.New(cfg.Log)
		if err != nil {
			return nil, fmt.Errorf("failed to set up logging: %w", err)
		}
	}

	policy, err := auth.NewPolicy(cfg.Auth)
	if err != nil {
		closeLog()
		return nil, err
	}

	db, err := database.NewDatabase(ctx, cfg.Database, database.Options{
		Logger:         log,
		SeedPlans:      cfg.Library.SeedPlans && !opts.SkipMigrations,
		SkipMigrations: opts.SkipMigrations,
		SQLLogging:     logger.ParseLevel(cfg.Log.Level) == slog.LevelDebug,
	})
	if err != nil {
		closeLog()
		return nil, err
	}

	accountRepo := accounts.NewRepository(db.DB)
	catalogRepo := catalog.NewRepository(db.DB)
	planRepo := plans.NewRepository(db.DB)
	ledgerRepo := ledger.NewRepository(db.DB)
	auditor := audit.NewService(auditRepo.NewRepository(db.DB), log, cfg.Audit.Enabled)

	app := &App{
		Config: cfg,
		Log:    log,
		DB:     db,
		Audit:  auditor,
		Services: console.Services{
			Accounts: services.NewAccountService(accountRepo, policy, auditor, log),
			Catalog:  services.NewCatalogService(catalogRepo, auditor, log),
			Checkout: services.NewCheckoutService(catalogRepo, planRepo, ledgerRepo, database.NewTransactionManager(db.DB), auditor, log),
			Reports:  services.NewReportService(catalogRepo, planRepo, ledgerRepo, accountRepo, auditor),
		},
		closeLog: closeLog,
	}

	log.Debug("application ready",
		slog.String("driver", cfg.Database.Driver),
		slog.String("password_policy", string(cfg.Auth.PasswordPolicy)),
		slog.String("session_id", auditor.SessionID()))
	return app, nil
}

func (a *App) Close() error {
	return errors.Join(a.DB.Close(), a.closeLog())
}

// RunConsole runs one interactive session over in and out.
func (a *App) RunConsole(ctx context.Context, in io.Reader, out io.Writer) error {
	c := console.New(
		prompt.NewReader(in, out),
		display.NewRenderer(out),
		a.Services,
		console.Options{CurrencyLabel: a.Config.Library.CurrencyLabel},
		a.Log,
	)

	a.Log.Info("session started", slog.String("session_id", a.Audit.SessionID()))
	err := c.Run(ctx)
	a.Log.Info("session ended", slog.String("session_id", a.Audit.SessionID()))
	return err
}

// SignalContext is cancelled on SIGINT or SIGTERM.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
