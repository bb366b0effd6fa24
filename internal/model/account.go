package model

import "time"

// Account roles supported by the marketplace features.
const (
	RoleFreelancer = "freelancer"
	RoleCustomer   = "customer"
)

// Account represents a stored identity used for authentication.
// Accounts are created only through registration; no endpoint updates
// or deletes them.
type Account struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:50;not null"`
	CreatedAt    time.Time `json:"created_at"`
}
