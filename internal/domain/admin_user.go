package domain

import "time"

const RoleAdmin = "admin"

// AdminUser is a back-office operator. The public side of the site is
// anonymous; only operators authenticate.
type AdminUser struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name,omitempty"`
	Role         string     `json:"role"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
