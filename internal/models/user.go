package models

import (
	"strings"
	"time"
)

// UserRole represents the role of a user
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// User represents a registered account. Users are created at registration
// and never mutated by the booking core.
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	Role         UserRole  `json:"role" db:"role"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserSession records an issued login session for auditing
type UserSession struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	UserAgent string    `json:"user_agent" db:"user_agent"`
	IPAddress string    `json:"ip_address" db:"ip_address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 6

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

// Validate validates the register request. Email format and optional phone
// format are checked by the caller-supplied predicates so the same rules
// apply to passengers and accounts.
func (r *RegisterRequest) Validate(emailValid, phoneValid func(string) bool) error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidInput("name is required")
	}
	if !emailValid(r.Email) {
		return ErrInvalidInput("invalid email address")
	}
	if len(r.Password) < MinPasswordLength {
		return ErrInvalidInput("password must be at least 6 characters long")
	}
	if r.Phone != "" && !phoneValid(r.Phone) {
		return ErrInvalidInput("invalid phone number")
	}
	return nil
}

// LoginRequest represents the request to authenticate
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents the request to rotate an access token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse is returned from register and login
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
