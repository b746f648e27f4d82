package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tumapesa/tumapesa/services/payments"
)

// MarkCoinFeePaid flips the coin's listing-fee flags after the creation
// payment completes. Called at most once per coin because the engine gates
// it on the transaction's first-time completion.
func (r *PaymentRepo) MarkCoinFeePaid(ctx context.Context, coinID uuid.UUID) error {
	query := `
		UPDATE coins
		SET fee_paid = TRUE, approved = TRUE, updated_at = $2
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, coinID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark coin fee paid: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return &payments.NotFoundError{Resource: "coin", ID: coinID.String()}
	}

	return nil
}
