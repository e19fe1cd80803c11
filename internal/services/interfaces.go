package services

import (
	"context"

	"github.com/mrlokans/lending-library/internal/entities"
	"github.com/mrlokans/lending-library/internal/money"
)

// AccountStore persists login accounts.
type AccountStore interface {
	Create(ctx context.Context, account *entities.Account) error
	GetByUsername(ctx context.Context, username string) (*entities.Account, error)
	ListByRole(ctx context.Context, role entities.Role) ([]entities.Account, error)
	CountByRole(ctx context.Context, role entities.Role) (int64, error)
}

// BookReader provides read-only access to the catalog.
// Use this interface when you only need to query books.
type BookReader interface {
	GetBookByID(ctx context.Context, id uint) (*entities.Book, error)
	ListBooks(ctx context.Context) ([]entities.Book, error)
	ListAuthors(ctx context.Context) ([]entities.Author, error)
	ListGenres(ctx context.Context) ([]entities.Genre, error)
}

// CatalogStore is the full read/write catalog.
type CatalogStore interface {
	BookReader
	FindOrCreateAuthor(ctx context.Context, name string) (*entities.Author, bool, error)
	FindOrCreateGenre(ctx context.Context, name string) (*entities.Genre, bool, error)
	CreateBook(ctx context.Context, book *entities.Book) error
	UpdateBook(ctx context.Context, id uint, title string, rentPrice money.Money) error
	DeleteBook(ctx context.Context, id uint) error
}

// PlanStore provides the subscription plans.
type PlanStore interface {
	GetByID(ctx context.Context, id uint) (*entities.Plan, error)
	List(ctx context.Context) ([]entities.Plan, error)
}

// LedgerStore records payments and checkouts.
type LedgerStore interface {
	CreatePayment(ctx context.Context, payment *entities.Payment) error
	CreateCheckout(ctx context.Context, checkout *entities.Checkout) error
	ListPayments(ctx context.Context) ([]entities.Payment, error)
	ListCheckouts(ctx context.Context, username string) ([]entities.Checkout, error)
}

// Transactor runs fn so that every store call made with the ctx it receives
// commits or rolls back together.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AuditReader is the read side of the audit trail used by reports.
type AuditReader interface {
	GetEvents(ctx context.Context, username string, limit int) ([]entities.AuditEvent, int64, error)
}
