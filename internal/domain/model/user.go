package model

import (
	"time"

	domainErrors "github.com/AbhishekM14/order-management-api/internal/domain/errors"
)

// UserRole drives discount eligibility and route-level authorization.
type UserRole string

const (
	RoleUser        UserRole = "USER"
	RolePremiumUser UserRole = "PREMIUM_USER"
	RoleAdmin       UserRole = "ADMIN"
)

// ParseRole maps a textual role to UserRole. Empty input falls back to USER.
func ParseRole(raw string) (UserRole, error) {
	switch UserRole(raw) {
	case "":
		return RoleUser, nil
	case RoleUser, RolePremiumUser, RoleAdmin:
		return UserRole(raw), nil
	default:
		return "", domainErrors.ErrInvalidRole
	}
}

// User represents a registered customer or administrator.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}

// IsAdmin reports whether the user holds the administrator capability.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
