package plans

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/lending-library/internal/database/dbtest"
)

func TestRepository_ListSeededPlans(t *testing.T) {
	repo := NewRepository(dbtest.NewSeeded(t).DB)
	ctx := context.Background()

	plans, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 3)

	assert.Equal(t, "1 Month", plans[0].Duration)
	assert.Equal(t, "199.00", plans[0].Cost.String())
	assert.Less(t, plans[0].ID, plans[1].ID)

	plan, err := repo.GetByID(ctx, plans[2].ID)
	require.NoError(t, err)
	assert.Equal(t, "1799.00", plan.Cost.String())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := NewRepository(dbtest.New(t).DB)

	_, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_ListEmptyWithoutSeed(t *testing.T) {
	repo := NewRepository(dbtest.New(t).DB)

	plans, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, plans)
}
