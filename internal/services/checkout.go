package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mrlokans/lending-library/internal/apperrors"
	"github.com/mrlokans/lending-library/internal/audit"
	"github.com/mrlokans/lending-library/internal/database/storeerr"
	"github.com/mrlokans/lending-library/internal/entities"
	"github.com/mrlokans/lending-library/internal/logger"
	"github.com/mrlokans/lending-library/internal/money"
)

// Charges added on top of every rental and subscription.
var (
	TaxAmount  = money.FromCents(350)
	ServiceFee = money.FromCents(500)
)

// ErrCancelled is returned when the customer does not confirm the payment.
// Nothing has been written when it is returned.
var ErrCancelled = errors.New("payment cancelled")

// Quote is the price breakdown shown before payment.
type Quote struct {
	Kind  entities.CheckoutKind
	Item  string
	Base  money.Money
	Tax   money.Money
	Fee   money.Money
	Total money.Money
}

// NewQuote adds the tax and service fee to base.
func NewQuote(kind entities.CheckoutKind, item string, base money.Money) Quote {
	return Quote{
		Kind:  kind,
		Item:  item,
		Base:  base,
		Tax:   TaxAmount,
		Fee:   ServiceFee,
		Total: base.Add(TaxAmount).Add(ServiceFee),
	}
}

// CheckoutInteraction is the customer's side of a checkout. Confirm returns
// the raw answer; only "yes" in any letter case goes ahead.
type CheckoutInteraction interface {
	ShowQuote(q Quote) error
	Confirm() (string, error)
	PaymentMethod() (string, error)
	Rating() (string, error)
}

// Receipt is what a completed checkout wrote.
type Receipt struct {
	Quote    Quote
	Payment  *entities.Payment
	Checkout *entities.Checkout
}

// CheckoutService runs the rental and subscription workflows.
type CheckoutService struct {
	books  BookReader
	plans  PlanStore
	ledger LedgerStore
	tx     Transactor
	audit  *audit.Service
	log    *slog.Logger
	now    func() time.Time
}

func NewCheckoutService(books BookReader, plans PlanStore, ledger LedgerStore, tx Transactor, auditor *audit.Service, log *slog.Logger) *CheckoutService {
	if log == nil {
		log = logger.Discard()
	}
	return &CheckoutService{
		books:  books,
		plans:  plans,
		ledger: ledger,
		tx:     tx,
		audit:  auditor,
		log:    logger.WithComponent(log, "checkout"),
		now:    time.Now,
	}
}

// RentBook charges username for renting a book and records the rental.
func (s *CheckoutService) RentBook(ctx context.Context, username string, bookID uint, ui CheckoutInteraction) (*Receipt, error) {
	book, err := s.books.GetBookByID(ctx, bookID)
	if err != nil {
		if storeerr.IsNotFound(err) {
			return nil, bookNotFound(bookID)
		}
		return nil, storeerr.Classify(err, "Failed to load book")
	}

	quote := NewQuote(entities.CheckoutRental, book.Title, book.RentPrice)
	receipt, err := s.checkout(ctx, quote, ui, func(method, rating string, on time.Time) (*entities.Payment, *entities.Checkout) {
		return entities.NewPayment(username, quote.Total, method, on), entities.NewRental(username, book.ID, rating, on)
	})
	s.logCheckout(ctx, username, "book_rent", "book", book.ID, receipt, quote, err)
	return receipt, err
}

// SubscribePlan charges username for a plan and records the subscription.
func (s *CheckoutService) SubscribePlan(ctx context.Context, username string, planID uint, ui CheckoutInteraction) (*Receipt, error) {
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		if storeerr.IsNotFound(err) {
			return nil, planNotFound(planID)
		}
		return nil, storeerr.Classify(err, "Failed to load plan")
	}

	quote := NewQuote(entities.CheckoutSubscription, plan.Duration, plan.Cost)
	receipt, err := s.checkout(ctx, quote, ui, func(method, _ string, on time.Time) (*entities.Payment, *entities.Checkout) {
		return entities.NewPayment(username, quote.Total, method, on), entities.NewSubscription(username, plan.ID, on)
	})
	s.logCheckout(ctx, username, "plan_subscribe", "plan", plan.ID, receipt, quote, err)
	return receipt, err
}

type rowBuilder func(method, rating string, on time.Time) (*entities.Payment, *entities.Checkout)

func (s *CheckoutService) checkout(ctx context.Context, quote Quote, ui CheckoutInteraction, build rowBuilder) (*Receipt, error) {
	if err := ui.ShowQuote(quote); err != nil {
		return nil, err
	}

	answer, err := ui.Confirm()
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(strings.TrimSpace(answer), "yes") {
		return nil, ErrCancelled
	}

	method, err := ui.PaymentMethod()
	if err != nil {
		return nil, err
	}
	method, err = requireText(method, "payment_method", "Payment method cannot be empty.")
	if err != nil {
		return nil, err
	}

	var rating string
	if quote.Kind == entities.CheckoutRental {
		if rating, err = ui.Rating(); err != nil {
			return nil, err
		}
		rating = strings.TrimSpace(rating)
	}

	payment, checkout := build(method, rating, s.now())
	err = s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.ledger.CreatePayment(ctx, payment); err != nil {
			return err
		}
		return s.ledger.CreateCheckout(ctx, checkout)
	})
	if err != nil {
		return nil, storeerr.Classify(err, "Failed to record payment")
	}

	return &Receipt{Quote: quote, Payment: payment, Checkout: checkout}, nil
}

func (s *CheckoutService) logCheckout(ctx context.Context, username, action, entityType string, entityID uint, receipt *Receipt, quote Quote, err error) {
	metadata := map[string]any{
		"base":  quote.Base.String(),
		"total": quote.Total.String(),
	}
	status := entities.AuditStatusSuccess
	switch {
	case errors.Is(err, ErrCancelled):
		status = entities.AuditStatusCancelled
		err = nil
	case err == nil && receipt != nil:
		metadata["payment_id"] = receipt.Payment.ID
		metadata["checkout_id"] = receipt.Checkout.ID
		metadata["method"] = receipt.Payment.Method
		s.log.Info("checkout completed",
			slog.String("username", username),
			slog.String("kind", string(quote.Kind)),
			slog.String("total", quote.Total.String()))
	}

	description := fmt.Sprintf("%s %s for %s", action, quote.Item, quote.Total.String())
	s.audit.LogCheckout(ctx, username, action, description, entityType, entityID, metadata, status, err)
}

// History lists the checkouts of username, or of everyone for "".
func (s *CheckoutService) History(ctx context.Context, username string) ([]entities.Checkout, error) {
	checkouts, err := s.ledger.ListCheckouts(ctx, username)
	return checkouts, storeerr.Classify(err, "Failed to list checkouts")
}

// planNotFound is the error for an unknown plan id.
func planNotFound(id uint) error {
	return apperrors.NewNotFoundError(fmt.Sprintf("Plan with ID %d not found.", id), "plan_id")
}
