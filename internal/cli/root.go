// Package cli defines the command line of the lending library.
//
// Without a subcommand the interactive console starts. The remaining commands
// cover administration that does not need the menus: schema migrations,
// creating the first admin account and working with the audit trail.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mrlokans/lending-library/internal/config"
	"github.com/mrlokans/lending-library/internal/entrypoint"
)

type rootOptions struct {
	configPath string
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "library",
		Short:         "Console lending library",
		Long:          `A lending library run from the terminal: customers rent books and subscribe to plans, admins manage the catalog.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a config file (yaml, toml or json)")

	cmd.AddCommand(
		newRunCommand(opts),
		newMigrateCommand(opts),
		newCreateAdminCommand(opts),
		newAuditCommand(opts),
	)

	return cmd
}

// withApp bootstraps the application, hands it to fn and closes it again.
// Bootstrap validates the config, including one built from the environment
// alone.
func (o *rootOptions) withApp(ctx context.Context, skipMigrations bool, fn func(*entrypoint.App) error) error {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return err
	}

	app, err := entrypoint.Bootstrap(ctx, cfg, entrypoint.Options{SkipMigrations: skipMigrations})
	if err != nil {
		return err
	}
	defer app.Close()

	return fn(app)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
