package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreditWallet adds amount to the user's wallet balance as a single atomic
// increment. Two concurrently completing deposits for the same user must
// both land; a read-then-write here would lose one of them.
func (r *PaymentRepo) CreditWallet(ctx context.Context, userID uuid.UUID, amount float64) error {
	query := `
		INSERT INTO wallets (id, user_id, balance, currency, created_at, updated_at)
		VALUES ($1, $2, $3, 'KES', $4, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET balance = wallets.balance + EXCLUDED.balance, updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, query, uuid.New(), userID, amount, time.Now())
	if err != nil {
		return fmt.Errorf("failed to credit wallet: %w", err)
	}

	return nil
}
