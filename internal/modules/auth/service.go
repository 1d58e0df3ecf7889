package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"aerotours/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service handles back-office operator logins.
type Service struct {
	users UserStore
	jwt   TokenIssuer
}

type LoginResult struct {
	User  *domain.AdminUser
	Token string
}

func NewService(users UserStore, jwt TokenIssuer) *Service {
	return &Service{users: users, jwt: jwt}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		log.Printf("auth: failed to record login time for user %d: %v", user.ID, err)
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, Token: token}, nil
}
