package auth

import (
	"context"

	"aerotours/internal/domain"
)

type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	TouchLastLogin(ctx context.Context, id int64) error
}

type TokenIssuer interface {
	GenerateToken(userID int64, email, role string) (string, error)
}
