package repository

import (
	"context"
	"testing"

	"aerotours/internal/database"
	"aerotours/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAdminUserRepo(t *testing.T) *AdminUserRepository {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewAdminUserRepository(db)
}

func hashPassword(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAdminUserCreateNormalizesEmail(t *testing.T) {
	repo := setupAdminUserRepo(t)
	ctx := context.Background()

	user := domain.AdminUser{
		Email:        " Ops@AeroTours.mx ",
		PasswordHash: hashPassword(t, "secret"),
		Name:         "Ops",
		Role:         domain.RoleAdmin,
	}
	require.NoError(t, repo.Create(ctx, &user))
	require.NotZero(t, user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ops@aerotours.mx", got.Email)

	byEmail, err := repo.GetByEmail(ctx, "OPS@aerotours.mx")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestAdminUserGetByIDNotFound(t *testing.T) {
	repo := setupAdminUserRepo(t)

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// Rotation replaces the stored hash so the old password stops working.
func TestAdminUserUpdatePasswordHash(t *testing.T) {
	repo := setupAdminUserRepo(t)
	ctx := context.Background()

	user := domain.AdminUser{
		Email:        "ops@aerotours.mx",
		PasswordHash: hashPassword(t, "old-password"),
		Role:         domain.RoleAdmin,
	}
	require.NoError(t, repo.Create(ctx, &user))

	require.NoError(t, repo.UpdatePasswordHash(ctx, user.ID, hashPassword(t, "new-password")))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("new-password")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("old-password")))
}
