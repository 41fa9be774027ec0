package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountDB represents an account record in the database
type AccountDB struct {
	AccountID    uuid.UUID  `json:"account_id" db:"account_id"`     // Primary key
	Name         string     `json:"name" db:"name"`                 // Display name
	Email        string     `json:"email" db:"email"`               // Unique email
	PasswordHash string     `json:"-" db:"password_hash"`           // Hashed password, never serialized
	UsageCount   int        `json:"usage_count" db:"usage_count"`   // Completed free-tier generations
	IsPremium    bool       `json:"is_premium" db:"is_premium"`     // Entitlement flag, one-way false -> true
	UpgradedAt   *time.Time `json:"upgraded_at" db:"upgraded_at"`   // Set once, on first premium grant
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`     // Creation timestamp
	LastActive   time.Time  `json:"last_active" db:"last_active"`   // Updated on every authenticated action
}
