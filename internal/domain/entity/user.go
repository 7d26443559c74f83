package entity

import "time"

// User roles.
const (
	RoleOwner = "owner"
	RoleStaff = "staff"
)

// User of a business account. Email is unique per business.
type User struct {
	ID           string
	BusinessID   string
	Email        string
	PasswordHash string
	Name         string
	Role         string // owner | staff
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
