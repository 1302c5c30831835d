package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// User represents a customer or admin account
type User struct {
	ID           uuid.UUID   `json:"user_id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Phone        null.String `json:"phone"`
	Role         Role        `json:"role"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// UserSignupInput represents input for customer registration
type UserSignupInput struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

// MerchantSignupInput represents input for merchant registration
type MerchantSignupInput struct {
	BusinessName string     `json:"business_name" binding:"required,min=2,max=255"`
	Email        string     `json:"email" binding:"required,email"`
	Password     string     `json:"password" binding:"required,min=6"`
	CategoryID   *uuid.UUID `json:"category_id"`
	Description  string     `json:"description"`
}

// LoginInput represents input for user and merchant login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshInput represents input for token refresh
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	Role         Role      `json:"role"`
	User         *User     `json:"user,omitempty"`
	Merchant     *Merchant `json:"merchant,omitempty"`
}

// Profile is the caller's own account as returned by /auth/me.
type Profile struct {
	Role     Role      `json:"role"`
	User     *User     `json:"user,omitempty"`
	Merchant *Merchant `json:"merchant,omitempty"`
}
