package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User represents an account stored in PostgreSQL
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:30"` // Globally unique handle
	Email     string    `json:"email" gorm:"uniqueIndex"`            // Ensure email is unique across all users
	Password  string    `json:"-"`                                   // Store hashed password, ignore for JSON serialization
	Biography string    `json:"biography" gorm:"size:250"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterRequest defines the request body for user registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=5,max=30,nowhitespace"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the request body for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest defines the request body for updating a user profile
type UpdateUserRequest struct {
	Username  string `json:"username,omitempty" validate:"omitempty,min=5,max=30,nowhitespace"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Password  string `json:"password,omitempty" validate:"omitempty,min=8"`
	Biography string `json:"biography,omitempty" validate:"omitempty,max=250"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
