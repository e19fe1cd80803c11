// Package ledger stores payments and checkouts.
//
// Inserts look for a transaction in the context (see
// database.TransactionManager) so a payment and its checkout are committed or
// rolled back together.
package ledger

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/lending-library/internal/database"
	"github.com/mrlokans/lending-library/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreatePayment(ctx context.Context, payment *entities.Payment) error {
	return database.GetTxFromContext(ctx, r.db).Create(payment).Error
}

func (r *Repository) CreateCheckout(ctx context.Context, checkout *entities.Checkout) error {
	return database.GetTxFromContext(ctx, r.db).Omit(clause.Associations).Create(checkout).Error
}

// ListPayments returns all payments in id order.
func (r *Repository) ListPayments(ctx context.Context) ([]entities.Payment, error) {
	var payments []entities.Payment
	err := database.GetTxFromContext(ctx, r.db).Order("id").Find(&payments).Error
	return payments, err
}

// ListCheckouts returns checkouts in id order, limited to one user when
// username is not empty.
func (r *Repository) ListCheckouts(ctx context.Context, username string) ([]entities.Checkout, error) {
	var checkouts []entities.Checkout
	query := database.GetTxFromContext(ctx, r.db).Order("id")
	if username != "" {
		query = query.Where("user_id = ?", username)
	}
	err := query.Find(&checkouts).Error
	return checkouts, err
}

func (r *Repository) CountPayments(ctx context.Context) (int64, error) {
	var count int64
	err := database.GetTxFromContext(ctx, r.db).Model(&entities.Payment{}).Count(&count).Error
	return count, err
}

func (r *Repository) CountCheckouts(ctx context.Context) (int64, error) {
	var count int64
	err := database.GetTxFromContext(ctx, r.db).Model(&entities.Checkout{}).Count(&count).Error
	return count, err
}
