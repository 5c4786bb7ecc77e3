package entities

import (
	"time"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleSeller   UserRole = "seller"
)

// User represents a user entity
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         UserRole  `json:"role"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	IsSuperuser  bool      `json:"is_superuser"`
	IsVerified   bool      `json:"is_verified"`
	RegistryAt   time.Time `json:"registry_at"`
}

// IsSeller reports whether the user may list goods at all
func (u *User) IsSeller() bool {
	return u.Role == UserRoleSeller
}

// PublicUser is the projection of a user visible to anyone
type PublicUser struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Role       UserRole  `json:"role"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	RegistryAt time.Time `json:"registry_at"`
}

// Public strips private fields from the user
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Username:   u.Username,
		Role:       u.Role,
		IsActive:   u.IsActive,
		IsVerified: u.IsVerified,
		RegistryAt: u.RegistryAt,
	}
}

// RegisterInput represents input for creating a user
type RegisterInput struct {
	Username string   `json:"user_name" binding:"required,max=100"`
	Email    string   `json:"user_email" binding:"required,shop_email"`
	Password string   `json:"user_password" binding:"required,shop_password"`
	Role     UserRole `json:"user_role" binding:"required,oneof=customer seller"`
}

// LoginInput represents the login form. Username is accepted as an alias of Email.
type LoginInput struct {
	Email    string `form:"email"`
	Username string `form:"username"`
	Password string `form:"password" binding:"required"`
}

// Identifier returns the email the client logged in with
func (in *LoginInput) Identifier() string {
	if in.Email != "" {
		return in.Email
	}
	return in.Username
}

// ForgotPasswordInput represents input for requesting a reset link
type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordInput represents the new password sent with a reset token
type ResetPasswordInput struct {
	Password string `json:"password" binding:"required,shop_password"`
}

// Session is an issued login session
type Session struct {
	ID        string
	UserID    int64
	Token     string
	ExpiresAt time.Time
}
