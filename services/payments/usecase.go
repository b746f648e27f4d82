package payments

import (
	"context"

	"github.com/tumapesa/tumapesa/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tumapesa/tumapesa/services/payments PaymentUC

// PaymentUC represents the payment usecase interface. It owns the full
// reconciliation lifecycle: only this layer may move a transaction to a
// terminal state.
type PaymentUC interface {
	// InitiatePayment creates (or loads) a pending transaction and sends the
	// STK push to the payer's device.
	InitiatePayment(ctx context.Context, userID string, req *models.PaymentInitiateRequest) (*models.PaymentInitiateResponse, error)

	// HandleSTKCallback reconciles an asynchronous gateway callback. The
	// returned error is for operator logging only; the HTTP layer always
	// acknowledges positively.
	HandleSTKCallback(ctx context.Context, callback *models.STKCallback) error

	// PollPaymentStatus actively queries the gateway for an in-flight
	// transaction, reconciles the outcome and returns the current state.
	PollPaymentStatus(ctx context.Context, transactionID string) (*models.PaymentStatusResponse, error)

	// InitiatePayout disburses an approved payout request via B2C.
	InitiatePayout(ctx context.Context, payoutID string) (*models.PayoutInitiateResponse, error)
}
