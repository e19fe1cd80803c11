// Package console drives the interactive menus of the library.
//
// The session starts at the main menu (Register, Login, Exit). A successful
// login or customer registration opens the menu for the account's role.
// Every menu option runs one service operation; its errors are printed and
// the menu is shown again. End of input or a cancelled context ends the
// session.
package console

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/mrlokans/lending-library/internal/apperrors"
	"github.com/mrlokans/lending-library/internal/display"
	"github.com/mrlokans/lending-library/internal/logger"
	"github.com/mrlokans/lending-library/internal/prompt"
	"github.com/mrlokans/lending-library/internal/services"
)

// Services are the operations reachable from the menus.
type Services struct {
	Accounts *services.AccountService
	Catalog  *services.CatalogService
	Checkout *services.CheckoutService
	Reports  *services.ReportService
}

type Options struct {
	CurrencyLabel string
}

type Console struct {
	in       *prompt.Reader
	out      *display.Renderer
	svc      Services
	currency string
	log      *slog.Logger
}

func New(in *prompt.Reader, out *display.Renderer, svc Services, opts Options, log *slog.Logger) *Console {
	if log == nil {
		log = logger.Discard()
	}
	return &Console{
		in:       in,
		out:      out,
		svc:      svc,
		currency: opts.CurrencyLabel,
		log:      logger.WithComponent(log, "console"),
	}
}

// Run shows the main menu until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	err := c.menu(ctx, "----Library Management System----", []menuItem{
		{"Register", c.register},
		{"Login", c.login},
	}, "Exit", "Exiting...")

	if sessionEnded(err) {
		c.out.Println()
		c.log.Debug("session ended", logger.Err(err))
		return nil
	}
	return err
}

type menuItem struct {
	label string
	run   func(ctx context.Context) error
}

// menu prints the numbered options with the exit option last and runs the
// chosen one, until exit is chosen.
func (c *Console) menu(ctx context.Context, title string, items []menuItem, exitLabel, exitMessage string) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.out.Printf("\n\t\t-------------------------------------------\n\t\t\t%s\n\t\t-------------------------------------------\n\n", title)
		for i, item := range items {
			c.out.Printf("\t[%d]. %s\n", i+1, item.label)
		}
		c.out.Printf("\t[%d]. %s\n", len(items)+1, exitLabel)

		choice, err := c.in.Ask("\n\t\tEnter your choice: ")
		if err != nil {
			return err
		}

		n, err := prompt.ParseID(choice)
		switch {
		case err == nil && n == uint(len(items))+1:
			c.out.Println(exitMessage)
			return nil
		case err == nil && n <= uint(len(items)):
			if err := c.handle(items[n-1].run(ctx)); err != nil {
				return err
			}
		default:
			c.out.Println("Invalid choice. Please select a valid option.")
		}
	}
}

// handle reports an operation error to the user. Only errors that end the
// session are returned.
func (c *Console) handle(err error) error {
	if err == nil {
		return nil
	}
	if sessionEnded(err) {
		return err
	}

	switch {
	case apperrors.IsStoreError(err), !apperrors.IsAppError(err):
		c.log.Warn("operation failed", logger.Err(err))
		c.out.Println("Error:", apperrors.Message(err))
	default:
		c.out.Println(apperrors.Message(err))
	}
	return nil
}

// askID reads an identifier; anything but a positive integer is a
// validation error.
func (c *Console) askID(question string) (uint, error) {
	id, err := c.in.AskID(question)
	if errors.Is(err, prompt.ErrNotANumber) {
		return 0, apperrors.NewValidationError(err.Error())
	}
	return id, err
}

func sessionEnded(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
}

func (c *Console) show(table display.Table, err error) error {
	if err != nil {
		return err
	}
	return c.out.Render(table)
}

func (c *Console) login(ctx context.Context) error {
	username, err := c.in.Ask("\n\t[] Enter username : ")
	if err != nil {
		return err
	}
	password, err := c.in.AskSecret("\t[] Enter password : ")
	if err != nil {
		return err
	}

	account, err := c.svc.Accounts.Authenticate(ctx, username, password)
	if err != nil {
		return err
	}
	defer c.svc.Accounts.Logout(ctx, account.Username)

	if account.IsAdmin() {
		return c.adminMenu(ctx, account.Username)
	}
	return c.customerMenu(ctx, account.Username)
}

func nonEmpty(message string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(message)
		}
		return nil
	}
}

// yes reports whether answer is "yes" in any letter case.
func yes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

func (c *Console) line(label, value string) {
	c.out.Printf("%-46s%s\n", label, value)
}
