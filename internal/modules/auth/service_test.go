package auth

import (
	"context"
	"testing"

	"aerotours/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminUser), args.Error(1)
}

func (m *MockUserStore) TouchLastLogin(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type stubIssuer struct{}

func (stubIssuer) GenerateToken(userID int64, email, role string) (string, error) {
	return "signed-token", nil
}

func adminWithPassword(t *testing.T, password string) *domain.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.AdminUser{
		ID:           1,
		Email:        "admin@aerotours.mx",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
}

func TestLoginSuccess(t *testing.T) {
	users := new(MockUserStore)
	users.On("GetByEmail", mock.Anything, "admin@aerotours.mx").
		Return(adminWithPassword(t, "secret123"), nil)
	users.On("TouchLastLogin", mock.Anything, int64(1)).Return(nil)

	service := NewService(users, stubIssuer{})

	result, err := service.Login(context.Background(), LoginRequest{
		Email:    "  Admin@AeroTours.mx ", // normalized before lookup
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Empty(t, result.User.PasswordHash)
	users.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(MockUserStore)
	users.On("GetByEmail", mock.Anything, "admin@aerotours.mx").
		Return(adminWithPassword(t, "secret123"), nil)

	service := NewService(users, stubIssuer{})

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "admin@aerotours.mx",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	users.AssertNotCalled(t, "TouchLastLogin", mock.Anything, mock.Anything)
}

func TestLoginUnknownEmail(t *testing.T) {
	users := new(MockUserStore)
	users.On("GetByEmail", mock.Anything, "ghost@aerotours.mx").
		Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, stubIssuer{})

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@aerotours.mx",
		Password: "whatever",
	})
	// Unknown email and wrong password are indistinguishable to callers.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
