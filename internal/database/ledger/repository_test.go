package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/lending-library/internal/database"
	"github.com/mrlokans/lending-library/internal/database/dbtest"
	"github.com/mrlokans/lending-library/internal/database/storeerr"
	"github.com/mrlokans/lending-library/internal/entities"
	"github.com/mrlokans/lending-library/internal/money"
)

type fixture struct {
	repo *Repository
	tm   *database.TransactionManager
	plan entities.Plan
}

func setupTestDB(t *testing.T) fixture {
	db := dbtest.NewSeeded(t)
	require.NoError(t, db.DB.Create(&entities.Account{Username: "alice", Password: "Secret1!", Role: entities.RoleCustomer}).Error)

	var plan entities.Plan
	require.NoError(t, db.DB.Order("id").First(&plan).Error)

	return fixture{
		repo: NewRepository(db.DB),
		tm:   database.NewTransactionManager(db.DB),
		plan: plan,
	}
}

func TestRepository_CreatePaymentAndCheckout(t *testing.T) {
	f := setupTestDB(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	payment := entities.NewPayment("alice", money.MustParse("207.50"), "gpay", day)
	require.NoError(t, f.repo.CreatePayment(ctx, payment))
	assert.NotZero(t, payment.ID)

	checkout := entities.NewSubscription("alice", f.plan.ID, day)
	require.NoError(t, f.repo.CreateCheckout(ctx, checkout))

	payments, err := f.repo.ListPayments(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "207.50", payments[0].Amount.String())
	assert.Equal(t, "gpay", payments[0].Method)
	assert.Equal(t, "2026-03-14", time.Time(payments[0].PaymentDate).Format(time.DateOnly))

	checkouts, err := f.repo.ListCheckouts(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, checkouts, 1)
	assert.Equal(t, entities.CheckoutSubscription, checkouts[0].Kind())
	assert.Nil(t, checkouts[0].BookID)
	assert.Nil(t, checkouts[0].Rating)
	require.NotNil(t, checkouts[0].PlanID)
	assert.Equal(t, f.plan.ID, *checkouts[0].PlanID)
}

func TestRepository_CreatePayment_UnknownUserRejected(t *testing.T) {
	f := setupTestDB(t)

	err := f.repo.CreatePayment(context.Background(), entities.NewPayment("nobody", money.MustParse("1"), "cash", time.Now()))

	require.Error(t, err)
	assert.True(t, storeerr.IsForeignKeyViolation(err))
}

func TestRepository_TransactionRollsBackPayment(t *testing.T) {
	f := setupTestDB(t)
	ctx := context.Background()

	err := f.tm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := f.repo.CreatePayment(ctx, entities.NewPayment("alice", money.MustParse("108.50"), "debit", time.Now())); err != nil {
			return err
		}
		// Unknown plan: the checkout insert fails
		return f.repo.CreateCheckout(ctx, entities.NewSubscription("alice", 9999, time.Now()))
	})
	require.Error(t, err)

	payments, err := f.repo.CountPayments(ctx)
	require.NoError(t, err)
	assert.Zero(t, payments, "payment must be rolled back with the failed checkout")

	checkouts, err := f.repo.CountCheckouts(ctx)
	require.NoError(t, err)
	assert.Zero(t, checkouts)
}

func TestRepository_TransactionCommits(t *testing.T) {
	f := setupTestDB(t)
	ctx := context.Background()

	err := f.tm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := f.repo.CreatePayment(ctx, entities.NewPayment("alice", money.MustParse("108.50"), "debit", time.Now())); err != nil {
			return err
		}
		return f.repo.CreateCheckout(ctx, entities.NewSubscription("alice", f.plan.ID, time.Now()))
	})
	require.NoError(t, err)

	payments, _ := f.repo.CountPayments(ctx)
	checkouts, _ := f.repo.CountCheckouts(ctx)
	assert.Equal(t, int64(1), payments)
	assert.Equal(t, int64(1), checkouts)
}

func TestRepository_TransactionRollsBackOnCallerError(t *testing.T) {
	f := setupTestDB(t)
	ctx := context.Background()
	errAbort := errors.New("abort")

	err := f.tm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := f.repo.CreatePayment(ctx, entities.NewPayment("alice", money.MustParse("5"), "cash", time.Now())); err != nil {
			return err
		}
		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	payments, _ := f.repo.CountPayments(ctx)
	assert.Zero(t, payments)
}

func TestRepository_ListCheckouts_FilterByUser(t *testing.T) {
	f := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, f.repo.CreateCheckout(ctx, entities.NewSubscription("alice", f.plan.ID, time.Now())))

	all, err := f.repo.ListCheckouts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	none, err := f.repo.ListCheckouts(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, none)
}
