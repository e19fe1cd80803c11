package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/lending-library/internal/apperrors"
	"github.com/mrlokans/lending-library/internal/entities"
	"github.com/mrlokans/lending-library/internal/entrypoint"
	"github.com/mrlokans/lending-library/internal/prompt"
	"github.com/mrlokans/lending-library/internal/services"
	"github.com/mrlokans/lending-library/internal/validation"
)

// Admins can only be registered by another admin from the console, so the
// first one has to come from here.
func newCreateAdminCommand(opts *rootOptions) *cobra.Command {
	var reg services.Registration

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Register an admin account",
		Long: `Register an admin account without going through the menus.
The password is asked for when --password is not given.`,
		Example: `  library create-admin --username root1 --first-name Ada --last-name Lovelace --email ada@example.com`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg.Role = entities.RoleAdmin
			if reg.Password == "" {
				password, err := prompt.NewReader(cmd.InOrStdin(), cmd.OutOrStdout()).
					AskSecretValid("Enter the password: ", validation.Password)
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				reg.Password = password
			}

			ctx := commandContext(cmd)
			return opts.withApp(ctx, false, func(app *entrypoint.App) error {
				account, err := app.Services.Accounts.Register(ctx, "", reg)
				if err != nil {
					return errors.New(apperrors.Message(err))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Admin %s registered.\n", account.Username)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&reg.Username, "username", "u", "", "Login name (letters and digits)")
	cmd.Flags().StringVarP(&reg.Password, "password", "p", "", "Password; prompted for when omitted")
	cmd.Flags().StringVar(&reg.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&reg.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&reg.Email, "email", "", "Email address")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
