package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tumapesa/tumapesa/internal/pkg/logger"
	"github.com/tumapesa/tumapesa/internal/pkg/models"
	"github.com/tumapesa/tumapesa/internal/utils"
	"github.com/tumapesa/tumapesa/services/payments"
)

// InitiatePayment creates (or loads) a pending transaction and sends the
// STK push. Auth, network and gateway failures during initiation are not
// ambiguous: the transaction is marked failed and the error surfaces to
// the caller.
func (uc *PaymentUC) InitiatePayment(ctx context.Context, userID string, req *models.PaymentInitiateRequest) (*models.PaymentInitiateResponse, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	switch req.Kind {
	case models.TransactionKindBuy, models.TransactionKindDeposit, models.TransactionKindCoinCreation:
	default:
		return nil, fmt.Errorf("unknown payment kind %q", req.Kind)
	}

	msisdn, err := utils.NormalizeMSISDN(req.PhoneNumber)
	if err != nil {
		return nil, err
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	txn, err := uc.resolveTransaction(ctx, uid, req)
	if err != nil {
		return nil, err
	}

	reference := req.Reference
	if reference == "" {
		reference = "TUMAPESA-" + txn.ID.String()[:8]
	}

	result, err := uc.paymentGW.InitiateSTK(ctx, msisdn, txn.Amount, reference)
	if err != nil {
		uc.failInitiation(ctx, txn, err)
		return nil, err
	}

	if err := uc.paymentRepo.MarkSTKSent(ctx, txn.ID, result.MerchantRequestID, result.CheckoutRequestID); err != nil {
		return nil, fmt.Errorf("failed to record gateway correlation keys: %w", err)
	}

	logger.InfoCtx(ctx, "STK push dispatched",
		logger.String("transaction_id", txn.ID.String()),
		logger.String("checkout_request_id", result.CheckoutRequestID),
	)

	return &models.PaymentInitiateResponse{
		TransactionID:     txn.ID.String(),
		MerchantRequestID: result.MerchantRequestID,
		CheckoutRequestID: result.CheckoutRequestID,
		CustomerMessage:   result.CustomerMessage,
	}, nil
}

// resolveTransaction loads a pre-created pending transaction or creates a
// fresh one. A pre-created transaction must belong to the caller and still
// be pending.
func (uc *PaymentUC) resolveTransaction(ctx context.Context, userID uuid.UUID, req *models.PaymentInitiateRequest) (*models.Transaction, error) {
	if req.TransactionID == "" {
		return uc.paymentRepo.CreatePending(ctx, req.Kind, req.Amount, userID)
	}

	id, err := uuid.Parse(req.TransactionID)
	if err != nil {
		return nil, &payments.NotFoundError{Resource: "transaction", ID: req.TransactionID}
	}

	txn, err := uc.paymentRepo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn.UserID != userID {
		return nil, &payments.NotFoundError{Resource: "transaction", ID: req.TransactionID}
	}
	if txn.Status != models.TransactionStatusPending {
		return nil, &payments.StateConflictError{
			Resource: "transaction",
			ID:       txn.ID.String(),
			Current:  string(txn.Status),
			Required: string(models.TransactionStatusPending),
		}
	}

	return txn, nil
}

// failInitiation records a failed initiation. Auth and network errors are
// recovered locally here rather than surfaced as ambiguous pending state.
func (uc *PaymentUC) failInitiation(ctx context.Context, txn *models.Transaction, cause error) {
	reason := cause.Error()
	var gwErr *payments.GatewayError
	if errors.As(cause, &gwErr) {
		reason = gwErr.Description
	}

	rows, err := uc.paymentRepo.ConditionalComplete(ctx, txn.ID, models.TransactionStatusFailed, "", reason)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to mark transaction failed after initiation error",
			logger.String("transaction_id", txn.ID.String()),
			logger.Err(err),
		)
		return
	}

	if rows == 1 {
		uc.publishPaymentEvent(ctx, txn, models.TransactionStatusFailed, "")
	}

	logger.WarnCtx(ctx, "Payment initiation failed",
		logger.String("transaction_id", txn.ID.String()),
		logger.String("reason", reason),
	)
}
