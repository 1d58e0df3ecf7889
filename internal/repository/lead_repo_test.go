package repository

import (
	"context"
	"testing"

	"aerotours/internal/database"
	"aerotours/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLeadGetByID(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	repo := NewLeadRepository(db)
	ctx := context.Background()

	lead := domain.ContactRequest{
		Name:   "Carlos",
		Email:  "carlos@example.com",
		Status: domain.LeadPending,
	}
	require.NoError(t, repo.Create(ctx, &lead))

	got, err := repo.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carlos", got.Name)
	assert.Equal(t, domain.LeadPending, got.Status)

	_, err = repo.GetByID(ctx, lead.ID+1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
