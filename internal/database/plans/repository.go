// Package plans provides read access to subscription plans.
package plans

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/lending-library/internal/database"
	"github.com/mrlokans/lending-library/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Plan, error) {
	var plan entities.Plan
	err := database.GetTxFromContext(ctx, r.db).First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *Repository) List(ctx context.Context) ([]entities.Plan, error) {
	var plans []entities.Plan
	err := database.GetTxFromContext(ctx, r.db).Order("id").Find(&plans).Error
	return plans, err
}
