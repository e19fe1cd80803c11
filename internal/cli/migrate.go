package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/lending-library/internal/entrypoint"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply or roll back schema migrations and show the current schema version.`,
	}

	cmd.AddCommand(
		newMigrateUpCommand(opts),
		newMigrateDownCommand(opts),
		newMigrateStatusCommand(opts),
	)

	return cmd
}

func newMigrateUpCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bootstrap migrates and seeds on its own.
			return opts.withApp(commandContext(cmd), false, func(app *entrypoint.App) error {
				return printVersion(cmd, app)
			})
		},
	}
}

func newMigrateDownCommand(opts *rootOptions) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1, got %d", steps)
			}
			ctx := commandContext(cmd)
			return opts.withApp(ctx, true, func(app *entrypoint.App) error {
				if err := app.DB.MigrateDown(ctx, steps); err != nil {
					return err
				}
				return printVersion(cmd, app)
			})
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to roll back")

	return cmd
}

func newMigrateStatusCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Print the current schema version. Per-script status is written to the log at info level.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			return opts.withApp(ctx, true, func(app *entrypoint.App) error {
				if err := app.DB.Status(ctx); err != nil {
					return err
				}
				return printVersion(cmd, app)
			})
		},
	}
}

func printVersion(cmd *cobra.Command, app *entrypoint.App) error {
	version, err := app.DB.SchemaVersion(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Schema version: %d (%s)\n", version, app.DB.Dialect())
	return nil
}
