package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/tumapesa/tumapesa/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/tumapesa/tumapesa/services/payments PaymentRepo

// PaymentRepo is the durable store for transactions, wallets, coins and
// payouts. ConditionalComplete is the single concurrency-safety primitive:
// an atomic guarded update whose affected-row count gates every dependent
// effect.
type PaymentRepo interface {
	// Transactions
	CreatePending(ctx context.Context, kind models.TransactionKind, amount float64, userID uuid.UUID) (*models.Transaction, error)
	MarkSTKSent(ctx context.Context, id uuid.UUID, merchantRequestID, checkoutRequestID string) error
	ConditionalComplete(ctx context.Context, id uuid.UUID, status models.TransactionStatus, receipt, failureReason string) (int64, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	GetTransactionByCheckoutID(ctx context.Context, checkoutRequestID string) (*models.Transaction, error)

	// Dependent effects of a first-time completion
	CreditWallet(ctx context.Context, userID uuid.UUID, amount float64) error
	MarkCoinFeePaid(ctx context.Context, coinID uuid.UUID) error

	// Payouts
	GetPayout(ctx context.Context, id uuid.UUID) (*models.Payout, error)
	UpdatePayoutStatus(ctx context.Context, id uuid.UUID, status models.PayoutStatus, failureReason string) error
	SetPayoutConversation(ctx context.Context, id uuid.UUID, conversationID, originatorConversationID string) error

	// SeenCallback records a callback correlation key and reports whether it
	// was already seen. Advisory only: duplicate detection for logging, not
	// for correctness.
	SeenCallback(ctx context.Context, checkoutRequestID string) (bool, error)
}
