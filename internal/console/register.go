package console

import (
	"context"

	"github.com/mrlokans/lending-library/internal/apperrors"
	"github.com/mrlokans/lending-library/internal/entities"
	"github.com/mrlokans/lending-library/internal/services"
	"github.com/mrlokans/lending-library/internal/validation"
)

// readRegistration asks for every field in turn, repeating a field until it
// passes its rule. bullet prefixes each prompt.
func (c *Console) readRegistration(bullet string, role entities.Role) (services.Registration, error) {
	reg := services.Registration{Role: role}
	var err error

	if reg.FirstName, err = c.in.AskValid(bullet+"Enter the first name: ", validation.Name); err != nil {
		return reg, err
	}
	if reg.LastName, err = c.in.AskValid(bullet+"Enter the last name: ", validation.Name); err != nil {
		return reg, err
	}
	if reg.Username, err = c.in.AskValid(bullet+"Create a username (alphanumeric): ", validation.Username); err != nil {
		return reg, err
	}
	if reg.Email, err = c.in.AskValid(bullet+"Enter the email: ", validation.Email); err != nil {
		return reg, err
	}
	if reg.Password, err = c.in.AskSecretValid(bullet+"Enter the password: ", validation.Password); err != nil {
		return reg, err
	}
	return reg, nil
}

// register signs up a customer. Any failure to store the account starts the
// form over. On success a plan subscription is offered and the customer
// menu opens.
func (c *Console) register(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.out.Println("\n-----CUSTOMER REGISTRATION-----")
		c.out.Println("\tRegister your details here.")

		reg, err := c.readRegistration("-> ", entities.RoleCustomer)
		if err != nil {
			return err
		}

		account, err := c.svc.Accounts.Register(ctx, "", reg)
		if err != nil {
			if err := c.handle(err); err != nil {
				return err
			}
			continue
		}

		c.out.Println("\t\t\t------You have successfully registered as a customer!------")
		if err := c.offerPlan(ctx, account.Username); err != nil {
			return err
		}
		return c.customerMenu(ctx, account.Username)
	}
}

func (c *Console) offerPlan(ctx context.Context, username string) error {
	answer, err := c.in.Ask("\nWould you like to subscribe to a plan? (yes): ")
	if err != nil {
		return err
	}
	if !yes(answer) {
		c.out.Println("No plan subscription selected.")
		return nil
	}

	if err := c.show(c.svc.Reports.Plans(ctx)); err != nil {
		return err
	}

	for {
		planID, err := c.askID("Enter the PlanID you want to subscribe to: ")
		if err == nil {
			err = c.subscribe(ctx, username, planID)
		}
		if apperrors.IsValidationError(err) || apperrors.IsNotFoundError(err) {
			c.out.Println("Invalid PlanID. Please enter a valid PlanID.")
			continue
		}
		return c.handle(err)
	}
}

// registerAdmin lets a logged-in admin create another admin. The form is
// repeated until the account is stored.
func (c *Console) registerAdmin(ctx context.Context, actor string) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.out.Println("\n-----ADMIN REGISTRATION-----")
		c.out.Println("------------------------------\n\t ENTER DETAILS BELOW")

		reg, err := c.readRegistration("[] ", entities.RoleAdmin)
		if err != nil {
			return err
		}

		if _, err := c.svc.Accounts.Register(ctx, actor, reg); err != nil {
			if err := c.handle(err); err != nil {
				return err
			}
			continue
		}

		c.out.Println("-->New admin registered successfully!<--")
		return nil
	}
}
