package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/lending-library/internal/entrypoint"
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive console",
		Long:  `Open the main menu. This is also what happens when no command is given.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd, opts)
		},
	}
}

func runConsole(cmd *cobra.Command, opts *rootOptions) error {
	ctx, stop := entrypoint.SignalContext(commandContext(cmd))
	defer stop()

	return opts.withApp(ctx, false, func(app *entrypoint.App) error {
		return app.RunConsole(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	})
}
