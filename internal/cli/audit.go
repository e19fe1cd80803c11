package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrlokans/lending-library/internal/audit"
	"github.com/mrlokans/lending-library/internal/display"
	"github.com/mrlokans/lending-library/internal/entities"
	"github.com/mrlokans/lending-library/internal/entrypoint"
)

func newAuditCommand(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show the most recent audit events",
		Long:  `Print the audit trail newest first. Subcommands prune or export it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			return opts.withApp(ctx, false, func(app *entrypoint.App) error {
				n := limit
				if n <= 0 {
					n = app.Config.Audit.Limit
				}
				table, err := app.Services.Reports.Audit(ctx, n)
				if err != nil {
					return err
				}
				return display.NewRenderer(cmd.OutOrStdout()).Render(table)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Number of events to show (default from audit_limit)")

	cmd.AddCommand(
		newAuditPruneCommand(opts),
		newAuditExportCommand(opts),
	)

	return cmd
}

func newAuditPruneCommand(opts *rootOptions) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete old audit events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 0 {
				return fmt.Errorf("--older-than-days cannot be negative, got %d", days)
			}
			ctx := commandContext(cmd)
			return opts.withApp(ctx, false, func(app *entrypoint.App) error {
				deleted, err := app.Audit.DeleteOldEvents(ctx, time.Duration(days)*24*time.Hour)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d audit events.\n", deleted)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&days, "older-than-days", 90, "Delete events older than this many days")

	return cmd
}

func newAuditExportCommand(opts *rootOptions) *cobra.Command {
	var (
		dir       string
		user      string
		eventType string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write audit events to a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			return opts.withApp(ctx, false, func(app *entrypoint.App) error {
				n := limit
				if n <= 0 {
					n = app.Config.Audit.Limit
				}

				var events []entities.AuditEvent
				var err error
				if eventType != "" {
					if user != "" {
						return errors.New("--type and --user cannot be combined")
					}
					events, err = app.Audit.GetEventsByType(ctx, entities.AuditEventType(eventType), n)
				} else {
					events, _, err = app.Audit.GetEvents(ctx, user, n)
				}
				if err != nil {
					return err
				}

				path, err := audit.NewExporter(dir).Export(events)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d audit events to %s\n", len(events), path)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "audit-exports", "Directory to write the export into")
	cmd.Flags().StringVarP(&user, "user", "u", "", "Only export events for this username")
	cmd.Flags().StringVarP(&eventType, "type", "t", "", "Only export events of this type (auth, registration, catalog, checkout)")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Number of events to export (default from audit_limit)")

	return cmd
}
