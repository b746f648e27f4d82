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

// CreatePending inserts a new transaction in the pending state
func (r *PaymentRepo) CreatePending(ctx context.Context, kind models.TransactionKind, amount float64, userID uuid.UUID) (*models.Transaction, error) {
	now := time.Now()
	txn := &models.Transaction{
		ID:         uuid.New(),
		UserID:     userID,
		Kind:       kind,
		Amount:     amount,
		TotalValue: amount,
		Status:     models.TransactionStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	query := `
		INSERT INTO transactions (id, user_id, kind, amount, total_value, status,
			created_at, updated_at
		) VALUES (:id, :user_id, :kind, :amount, :total_value, :status,
			:created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return txn, nil
}

// MarkSTKSent records the gateway correlation keys and advances
// pending to stk_sent. The checkout request id is unique across in-flight
// transactions (enforced by index) and immutable once written.
func (r *PaymentRepo) MarkSTKSent(ctx context.Context, id uuid.UUID, merchantRequestID, checkoutRequestID string) error {
	query := `
		UPDATE transactions
		SET status = $2, merchant_request_id = $3, checkout_request_id = $4, updated_at = $5
		WHERE id = $1 AND status = $6
	`
	result, err := r.db.ExecContext(ctx, query,
		id, models.TransactionStatusSTKSent, merchantRequestID, checkoutRequestID,
		time.Now(), models.TransactionStatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to mark transaction stk_sent: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return &payments.StateConflictError{
			Resource: "transaction",
			ID:       id.String(),
			Current:  "not pending",
			Required: string(models.TransactionStatusPending),
		}
	}

	return nil
}

// ConditionalComplete applies a terminal status only if the transaction has
// not already reached one. This is a single atomic guarded update, not a
// read followed by a write; the affected-row count (0 or 1) gates every
// dependent effect in the reconciliation engine.
func (r *PaymentRepo) ConditionalComplete(ctx context.Context, id uuid.UUID, status models.TransactionStatus, receipt, failureReason string) (int64, error) {
	query := `
		UPDATE transactions
		SET status = $2,
			mpesa_receipt = NULLIF($3, ''),
			failure_reason = NULLIF($4, ''),
			updated_at = $5
		WHERE id = $1 AND status NOT IN ($6, $7, $8)
	`
	result, err := r.db.ExecContext(ctx, query,
		id, status, receipt, failureReason, time.Now(),
		models.TransactionStatusCompleted,
		models.TransactionStatusCancelled,
		models.TransactionStatusFailed,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to complete transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows, nil
}

// GetTransaction retrieves a transaction by its id
func (r *PaymentRepo) GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `SELECT * FROM transactions WHERE id = $1`

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &payments.NotFoundError{Resource: "transaction", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &txn, nil
}

// GetTransactionByCheckoutID retrieves a transaction by its gateway correlation key
func (r *PaymentRepo) GetTransactionByCheckoutID(ctx context.Context, checkoutRequestID string) (*models.Transaction, error) {
	query := `SELECT * FROM transactions WHERE checkout_request_id = $1`

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, checkoutRequestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &payments.NotFoundError{Resource: "transaction", ID: checkoutRequestID}
		}
		return nil, fmt.Errorf("failed to get transaction by checkout id: %w", err)
	}

	return &txn, nil
}

// SeenCallback marks a callback correlation key as processed and reports
// whether it had been seen before. Redis only; correctness never depends
// on this marker.
func (r *PaymentRepo) SeenCallback(ctx context.Context, checkoutRequestID string) (bool, error) {
	key := "payments:callback:" + checkoutRequestID
	set, err := r.redisClient.SetNX(ctx, key, time.Now().Unix(), 24*time.Hour)
	if err != nil {
		return false, fmt.Errorf("failed to record callback marker: %w", err)
	}

	return !set, nil
}
