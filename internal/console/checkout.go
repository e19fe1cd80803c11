package console

import (
	"context"
	"errors"

	"github.com/mrlokans/lending-library/internal/entities"
	"github.com/mrlokans/lending-library/internal/services"
)

// checkoutPrompt answers a checkout from the console.
type checkoutPrompt struct {
	c *Console
}

func (p checkoutPrompt) ShowQuote(q services.Quote) error {
	c := p.c
	c.out.Println()
	if q.Kind == entities.CheckoutRental {
		c.line("Rent price ("+q.Item+"):", q.Base.Format(c.currency))
	} else {
		c.line("Plan cost ("+q.Item+"):", q.Base.Format(c.currency))
	}
	c.line("Service fee:", q.Fee.Format(c.currency))
	c.line("Tax:", q.Tax.Format(c.currency))
	c.out.Println("--------------------------------------------------------------------------")
	c.line("Total Amount (including tax and service fee):", q.Total.Format(c.currency))
	return nil
}

func (p checkoutPrompt) Confirm() (string, error) {
	return p.c.in.Ask("\n\tProceed to payment? (yes/no): ")
}

func (p checkoutPrompt) PaymentMethod() (string, error) {
	return p.c.in.AskValid("Enter payment method (gpay/phonepay/credit/debit): ", nonEmpty("Payment method cannot be empty."))
}

func (p checkoutPrompt) Rating() (string, error) {
	return p.c.in.Ask("Enter your rating (optional): ")
}

func (c *Console) rentBook(ctx context.Context, username string) error {
	if err := c.show(c.svc.Reports.Books(ctx)); err != nil {
		return err
	}

	bookID, err := c.askID("Enter the BookID of the book you want to rent: ")
	if err != nil {
		return err
	}

	_, err = c.svc.Checkout.RentBook(ctx, username, bookID, checkoutPrompt{c})
	if errors.Is(err, services.ErrCancelled) {
		c.out.Println("Payment cancelled. Returning to menu.")
		return nil
	}
	if err != nil {
		return err
	}
	c.out.Println("Payment successful! Enjoy your book.")
	return nil
}

// subscribe runs the plan checkout. An unknown plan is returned so the
// caller can ask again.
func (c *Console) subscribe(ctx context.Context, username string, planID uint) error {
	_, err := c.svc.Checkout.SubscribePlan(ctx, username, planID, checkoutPrompt{c})
	if errors.Is(err, services.ErrCancelled) {
		c.out.Println("---->Payment cancelled. Returning to menu.<----")
		return nil
	}
	if err != nil {
		return err
	}
	c.out.Println("---->Payment successful! You are now subscribed to the plan.<----")
	return nil
}

func (c *Console) subscribePlan(ctx context.Context, username string) error {
	if err := c.show(c.svc.Reports.Plans(ctx)); err != nil {
		return err
	}

	planID, err := c.askID("Enter the PlanID you want to subscribe to: ")
	if err != nil {
		return err
	}
	return c.subscribe(ctx, username, planID)
}
