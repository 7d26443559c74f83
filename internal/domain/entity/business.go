package entity

import "time"

// Business is the tenant. Every other record is scoped by BusinessID.
type Business struct {
	ID        string
	Name      string
	OwnerName string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
