package models

import (
	"time"

	"github.com/google/uuid"
)

// Wallet holds a user's fiat balance. The balance is mutated only by the
// reconciliation engine when a deposit completes, via an atomic increment.
type Wallet struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Balance   float64   `json:"balance" db:"balance"`
	Currency  string    `json:"currency" db:"currency"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
