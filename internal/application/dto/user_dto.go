package dto

import "time"

// RegisterBusinessRequest creates a tenant together with its owner account.
type RegisterBusinessRequest struct {
	BusinessName string `json:"business_name" validate:"required,min=1,max=200"`
	OwnerName    string `json:"owner_name" validate:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
}

// RegisterRequest creates an additional user inside an existing business.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"`
	Role     string `json:"role"` // owner | staff; defaults to staff
}

// LoginRequest credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse user output (never includes the password hash).
type UserResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BusinessResponse tenant output.
type BusinessResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerName string    `json:"owner_name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token plus the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterBusinessResponse new tenant, owner and a first token.
type RegisterBusinessResponse struct {
	Business BusinessResponse `json:"business"`
	Token    string           `json:"token"`
	User     UserResponse     `json:"user"`
}
