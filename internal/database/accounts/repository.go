// Package accounts provides database operations for logins.
//
// # Usage
//
//	repo := accounts.NewRepository(db)
//	account, err := repo.GetByUsername(ctx, "alice")
package accounts

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/lending-library/internal/database"
	"github.com/mrlokans/lending-library/internal/entities"
)

// Repository handles all account database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new accounts repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts an account. A taken username fails with a duplicate key error.
func (r *Repository) Create(ctx context.Context, account *entities.Account) error {
	return database.GetTxFromContext(ctx, r.db).Create(account).Error
}

// GetByUsername retrieves an account by its username.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*entities.Account, error) {
	var account entities.Account
	err := database.GetTxFromContext(ctx, r.db).Where("username = ?", username).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// ListByRole returns the accounts holding role, ordered by username.
func (r *Repository) ListByRole(ctx context.Context, role entities.Role) ([]entities.Account, error) {
	var accounts []entities.Account
	err := database.GetTxFromContext(ctx, r.db).Where("role = ?", role).Order("username").Find(&accounts).Error
	return accounts, err
}

func (r *Repository) CountByRole(ctx context.Context, role entities.Role) (int64, error) {
	var count int64
	err := database.GetTxFromContext(ctx, r.db).Model(&entities.Account{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
