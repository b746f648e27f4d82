package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tumapesa/tumapesa/internal/pkg/models"
	"github.com/tumapesa/tumapesa/services/payments"
)

// GetPayout retrieves a payout request by its id
func (r *PaymentRepo) GetPayout(ctx context.Context, id uuid.UUID) (*models.Payout, error) {
	query := `SELECT * FROM payouts WHERE id = $1`

	var payout models.Payout
	err := r.db.GetContext(ctx, &payout, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &payments.NotFoundError{Resource: "payout", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get payout: %w", err)
	}

	return &payout, nil
}

// UpdatePayoutStatus advances a payout's lifecycle status. This is a plain
// write: disbursement is never invoked from two concurrent entry points,
// single invocation is the approval workflow's responsibility.
func (r *PaymentRepo) UpdatePayoutStatus(ctx context.Context, id uuid.UUID, status models.PayoutStatus, failureReason string) error {
	query := `
		UPDATE payouts
		SET status = $2, failure_reason = NULLIF($3, ''), updated_at = $4
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, status, failureReason, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update payout status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return &payments.NotFoundError{Resource: "payout", ID: id.String()}
	}

	return nil
}

// SetPayoutConversation records the gateway conversation identifiers
// returned by a successful disbursement request
func (r *PaymentRepo) SetPayoutConversation(ctx context.Context, id uuid.UUID, conversationID, originatorConversationID string) error {
	query := `
		UPDATE payouts
		SET conversation_id = $2, originator_conversation_id = $3, updated_at = $4
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, id, conversationID, originatorConversationID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set payout conversation ids: %w", err)
	}

	return nil
}
