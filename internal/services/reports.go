package services

import (
	"context"
	"strconv"
	"time"

	"gorm.io/datatypes"

	"github.com/mrlokans/lending-library/internal/database/storeerr"
	"github.com/mrlokans/lending-library/internal/display"
	"github.com/mrlokans/lending-library/internal/entities"
)

// ReportService builds the read-only listings shown in the menus.
type ReportService struct {
	books    BookReader
	plans    PlanStore
	ledger   LedgerStore
	accounts AccountStore
	audit    AuditReader
}

func NewReportService(books BookReader, plans PlanStore, ledger LedgerStore, accounts AccountStore, auditReader AuditReader) *ReportService {
	return &ReportService{
		books:    books,
		plans:    plans,
		ledger:   ledger,
		accounts: accounts,
		audit:    auditReader,
	}
}

func (s *ReportService) Books(ctx context.Context) (display.Table, error) {
	t := display.Table{
		Title:   "Books",
		Headers: []string{"BookID", "Title", "Author Name", "Genre", "Rent Price"},
		Empty:   "No books found.",
	}
	books, err := s.books.ListBooks(ctx)
	if err != nil {
		return t, storeerr.Classify(err, "Failed to list books")
	}
	for _, b := range books {
		t.Rows = append(t.Rows, []string{id(b.ID), b.Title, b.Author.Name, b.Genre.Name, b.RentPrice.String()})
	}
	return t, nil
}

func (s *ReportService) Authors(ctx context.Context) (display.Table, error) {
	t := display.Table{
		Title:   "Authors",
		Headers: []string{"AuthorID", "Name"},
		Empty:   "No authors found.",
	}
	authors, err := s.books.ListAuthors(ctx)
	if err != nil {
		return t, storeerr.Classify(err, "Failed to list authors")
	}
	for _, a := range authors {
		t.Rows = append(t.Rows, []string{id(a.ID), a.Name})
	}
	return t, nil
}

func (s *ReportService) Genres(ctx context.Context) (display.Table, error) {
	t := display.Table{
		Title:   "Genres",
		Headers: []string{"GenreID", "Name"},
		Empty:   "No genres found.",
	}
	genres, err := s.books.ListGenres(ctx)
	if err != nil {
		return t, storeerr.Classify(err, "Failed to list genres")
	}
	for _, g := range genres {
		t.Rows = append(t.Rows, []string{id(g.ID), g.Name})
	}
	return t, nil
}

func (s *ReportService) Plans(ctx context.Context) (display.Table, error) {
	t := display.Table{
		Title:   "Plans",
		Headers: []string{"PlanID", "Duration", "Cost", "Details"},
		Empty:   "No plans found.",
	}
	plans, err := s.plans.List(ctx)
	if err != nil {
		return t, storeerr.Classify(err, "Failed to list plans")
	}
	for _, p := range plans {
		t.Rows = append(t.Rows, []string{id(p.ID), p.Duration, p.Cost.String(), p.Details})
	}
	return t, nil
}

func (s *ReportService) Payments(ctx context.Context) (display.Table, error) {
	t := display.Table{
		Title:   "Payments",
		Headers: []string{"Payment ID", "Customer ID", "Amount", "Date", "Payment Method"},
		Empty:   "No payments available.",
	}
	payments, err := s.ledger.ListPayments(ctx)
	if err != nil {
		return t, storeerr.Classify(err, "Failed to list payments")
	}
	for _, p := range payments {
		t.Rows = append(t.Rows, []string{id(p.ID), p.UserID, p.Amount.String(), date(p.PaymentDate), p.Method})
	}
	return t, nil
}

func (s *ReportService) Customers(ctx context.Context) (display.Table, error) {
	t := display.Table{
		Title:   "Customer Details",
		Headers: []string{"Username", "Email", "First Name", "Last Name"},
		Empty:   "No customer details available.",
	}
	customers, err := s.accounts.ListByRole(ctx, entities.RoleCustomer)
	if err != nil {
		return t, storeerr.Classify(err, "Failed to list customers")
	}
	for _, c := range customers {
		t.Rows = append(t.Rows, []string{c.Username, c.Email, c.FirstName, c.LastName})
	}
	return t, nil
}

// Checkouts lists rentals and subscriptions of username, or of everyone
// when username is empty.
func (s *ReportService) Checkouts(ctx context.Context, username string) (display.Table, error) {
	t := display.Table{
		Title:   "Checkouts",
		Headers: []string{"Checkout ID", "Customer ID", "Kind", "Item", "Rating", "Date"},
		Empty:   "No checkouts found.",
	}
	checkouts, err := s.ledger.ListCheckouts(ctx, username)
	if err != nil {
		return t, storeerr.Classify(err, "Failed to list checkouts")
	}
	for _, c := range checkouts {
		var item, rating string
		switch {
		case c.BookID != nil:
			item = "Book " + id(*c.BookID)
		case c.PlanID != nil:
			item = "Plan " + id(*c.PlanID)
		}
		if c.Rating != nil {
			rating = *c.Rating
		}
		t.Rows = append(t.Rows, []string{id(c.ID), c.UserID, string(c.Kind()), item, rating, date(c.ReviewDate)})
	}
	return t, nil
}

// Audit lists the latest limit audit events, newest first.
func (s *ReportService) Audit(ctx context.Context, limit int) (display.Table, error) {
	t := display.Table{
		Title:   "Audit Trail",
		Headers: []string{"ID", "Time", "User", "Type", "Action", "Status", "Description"},
		Empty:   "No audit events found.",
	}
	events, _, err := s.audit.GetEvents(ctx, "", limit)
	if err != nil {
		return t, storeerr.Classify(err, "Failed to list audit events")
	}
	for _, e := range events {
		description := e.Description
		if e.ErrorMsg != "" {
			description += " (" + e.ErrorMsg + ")"
		}
		t.Rows = append(t.Rows, []string{
			id(e.ID),
			e.CreatedAt.Format(time.DateTime),
			e.Username,
			string(e.EventType),
			e.Action,
			string(e.Status),
			description,
		})
	}
	return t, nil
}

func id(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func date(d datatypes.Date) string {
	return time.Time(d).Format(time.DateOnly)
}
