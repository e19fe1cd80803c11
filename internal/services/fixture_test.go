package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrlokans/lending-library/internal/audit"
	"github.com/mrlokans/lending-library/internal/auth"
	"github.com/mrlokans/lending-library/internal/database"
	"github.com/mrlokans/lending-library/internal/database/accounts"
	auditRepo "github.com/mrlokans/lending-library/internal/database/audit"
	"github.com/mrlokans/lending-library/internal/database/catalog"
	"github.com/mrlokans/lending-library/internal/database/dbtest"
	"github.com/mrlokans/lending-library/internal/database/ledger"
	"github.com/mrlokans/lending-library/internal/database/plans"
	"github.com/mrlokans/lending-library/internal/entities"
	"github.com/mrlokans/lending-library/internal/money"
)

type fixture struct {
	db       *database.Database
	accounts *accounts.Repository
	catalog  *catalog.Repository
	plans    *plans.Repository
	ledger   *ledger.Repository
	auditLog *auditRepo.Repository
	audit    *audit.Service
	tm       *database.TransactionManager

	Accounts *AccountService
	Catalog  *CatalogService
	Checkout *CheckoutService
	Reports  *ReportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.NewSeeded(t)

	f := &fixture{
		db:       db,
		accounts: accounts.NewRepository(db.DB),
		catalog:  catalog.NewRepository(db.DB),
		plans:    plans.NewRepository(db.DB),
		ledger:   ledger.NewRepository(db.DB),
		auditLog: auditRepo.NewRepository(db.DB),
		tm:       database.NewTransactionManager(db.DB),
	}
	f.audit = audit.NewService(f.auditLog, nil, true)

	f.Accounts = NewAccountService(f.accounts, auth.PlaintextPolicy{}, f.audit, nil)
	f.Catalog = NewCatalogService(f.catalog, f.audit, nil)
	f.Checkout = NewCheckoutService(f.catalog, f.plans, f.ledger, f.tm, f.audit, nil)
	f.Reports = NewReportService(f.catalog, f.plans, f.ledger, f.accounts, f.audit)
	return f
}

func (f *fixture) customer(t *testing.T, username string) *entities.Account {
	t.Helper()
	account, err := f.Accounts.Register(context.Background(), "", Registration{
		Username:  username,
		Password:  "Secret123!",
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     username + "@example.com",
		Role:      entities.RoleCustomer,
	})
	require.NoError(t, err)
	return account
}

func (f *fixture) book(t *testing.T, title, price string) *entities.Book {
	t.Helper()
	result, err := f.Catalog.AddBook(context.Background(), "root", NewBook{
		Title:      title,
		AuthorName: "Tolkien",
		GenreName:  "Fantasy",
		RentPrice:  money.MustParse(price),
	})
	require.NoError(t, err)
	return result.Book
}

func (f *fixture) firstPlan(t *testing.T) entities.Plan {
	t.Helper()
	plans, err := f.plans.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, plans)
	return plans[0]
}

func (f *fixture) counts(t *testing.T) (payments, checkouts int64) {
	t.Helper()
	ctx := context.Background()
	payments, err := f.ledger.CountPayments(ctx)
	require.NoError(t, err)
	checkouts, err = f.ledger.CountCheckouts(ctx)
	require.NoError(t, err)
	return payments, checkouts
}

func (f *fixture) auditActions(t *testing.T) []entities.AuditEvent {
	t.Helper()
	events, _, err := f.auditLog.GetEvents(context.Background(), "", 100, 0)
	require.NoError(t, err)
	return events
}
