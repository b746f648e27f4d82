package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tumapesa/tumapesa/internal/pkg/constants"
	"github.com/tumapesa/tumapesa/internal/pkg/logger"
	"github.com/tumapesa/tumapesa/internal/pkg/models"
	"github.com/tumapesa/tumapesa/services/payments"
)

// reconcile decides the terminal status for a gateway outcome and applies
// it exactly once. Both the callback path and the poll path funnel through
// here: whichever arrives first wins the conditional write, the other
// observes zero affected rows and performs no further mutation.
func (uc *PaymentUC) reconcile(ctx context.Context, txn *models.Transaction, resultCode int, resultDesc, receipt string) (models.TransactionStatus, error) {
	var (
		status        models.TransactionStatus
		failureReason string
	)

	switch resultCode {
	case models.MpesaResultSuccess:
		status = models.TransactionStatusCompleted
	case models.MpesaResultUserCancelled:
		status = models.TransactionStatusCancelled
		failureReason = resultDesc
	default:
		status = models.TransactionStatusFailed
		failureReason = resultDesc
	}

	rows, err := uc.paymentRepo.ConditionalComplete(ctx, txn.ID, status, receipt, failureReason)
	if err != nil {
		return "", fmt.Errorf("failed to apply terminal status: %w", err)
	}

	if rows == 0 {
		// Lost the race or the transaction is already terminal. Either way
		// the dependent effects have been (or will be) applied exactly once
		// by the winner.
		logger.InfoCtx(ctx, "Transaction already reconciled, skipping effects",
			logger.String("transaction_id", txn.ID.String()),
			logger.String("attempted_status", string(status)),
		)
		return status, nil
	}

	if status == models.TransactionStatusCompleted {
		if err := uc.applyCompletionEffects(ctx, txn); err != nil {
			return status, err
		}
	}

	uc.publishPaymentEvent(ctx, txn, status, receipt)

	return status, nil
}

// applyCompletionEffects runs the dependent effects of a first-time
// completion. Buy-kind transactions have none here: holdings allocation
// rides on the status write itself through the store's trigger, keeping it
// exactly as atomic as the status change.
func (uc *PaymentUC) applyCompletionEffects(ctx context.Context, txn *models.Transaction) error {
	switch txn.Kind {
	case models.TransactionKindDeposit:
		if err := uc.paymentRepo.CreditWallet(ctx, txn.UserID, txn.Amount); err != nil {
			return fmt.Errorf("failed to credit wallet for deposit %s: %w", txn.ID, err)
		}
	case models.TransactionKindCoinCreation:
		if !txn.CoinID.Valid {
			return fmt.Errorf("coin_creation transaction %s has no coin reference", txn.ID)
		}
		if err := uc.paymentRepo.MarkCoinFeePaid(ctx, txn.CoinID.UUID); err != nil {
			return fmt.Errorf("failed to mark coin fee paid for %s: %w", txn.ID, err)
		}
	}

	return nil
}

// publishPaymentEvent emits the lifecycle event for a first-time terminal
// transition. Publish failures are logged, not propagated: the terminal
// write has already landed.
func (uc *PaymentUC) publishPaymentEvent(ctx context.Context, txn *models.Transaction, status models.TransactionStatus, receipt string) {
	subject := constants.SubjectPaymentFailed
	switch status {
	case models.TransactionStatusCompleted:
		subject = constants.SubjectPaymentCompleted
	case models.TransactionStatusCancelled:
		subject = constants.SubjectPaymentCancelled
	}

	event := &models.PaymentEvent{
		TransactionID: txn.ID.String(),
		UserID:        txn.UserID.String(),
		Kind:          txn.Kind,
		Amount:        txn.Amount,
		Status:        status,
		MpesaReceipt:  receipt,
		Timestamp:     time.Now().UTC(),
	}

	if err := uc.paymentGW.PublishPaymentEvent(ctx, subject, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish payment event",
			logger.String("transaction_id", txn.ID.String()),
			logger.Err(err),
		)
	}
}

// HandleSTKCallback reconciles an asynchronous gateway callback. A callback
// whose correlation key matches no known transaction is logged and dropped;
// the HTTP layer acknowledges positively regardless of what happens here.
func (uc *PaymentUC) HandleSTKCallback(ctx context.Context, callback *models.STKCallback) error {
	cb := callback.Body.StkCallback
	if cb.CheckoutRequestID == "" {
		return fmt.Errorf("callback has no checkout request id")
	}

	if seen, err := uc.paymentRepo.SeenCallback(ctx, cb.CheckoutRequestID); err != nil {
		logger.WarnCtx(ctx, "Callback dedup marker unavailable",
			logger.String("checkout_request_id", cb.CheckoutRequestID),
			logger.Err(err),
		)
	} else if seen {
		logger.InfoCtx(ctx, "Duplicate gateway callback",
			logger.String("checkout_request_id", cb.CheckoutRequestID),
		)
	}

	txn, err := uc.paymentRepo.GetTransactionByCheckoutID(ctx, cb.CheckoutRequestID)
	if err != nil {
		var notFound *payments.NotFoundError
		if errors.As(err, &notFound) {
			logger.WarnCtx(ctx, "Callback for unknown transaction",
				logger.String("checkout_request_id", cb.CheckoutRequestID),
				logger.Int("result_code", cb.ResultCode),
			)
			return nil
		}
		return fmt.Errorf("failed to load transaction for callback: %w", err)
	}

	receipt := ""
	if cb.ResultCode == models.MpesaResultSuccess {
		receipt = callback.ReceiptNumber()
	}

	status, err := uc.reconcile(ctx, txn, cb.ResultCode, cb.ResultDesc, receipt)
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Callback reconciled",
		logger.String("transaction_id", txn.ID.String()),
		logger.String("status", string(status)),
	)
	return nil
}

// PollPaymentStatus actively queries the gateway for an in-flight
// transaction and reconciles the outcome. A "still processing" answer
// applies no transition: the caller keeps polling or awaits the callback.
func (uc *PaymentUC) PollPaymentStatus(ctx context.Context, transactionID string) (*models.PaymentStatusResponse, error) {
	id, err := uuid.Parse(transactionID)
	if err != nil {
		return nil, &payments.NotFoundError{Resource: "transaction", ID: transactionID}
	}

	txn, err := uc.paymentRepo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	// Terminal or not yet initiated: nothing to ask the gateway.
	if txn.Status.Terminal() || txn.Status == models.TransactionStatusPending {
		return statusResponse(txn), nil
	}

	result, err := uc.paymentGW.QuerySTK(ctx, txn.CheckoutRequestID.String)
	if err != nil {
		// The query channel failing does not make the payment ambiguous;
		// the transaction stays stk_sent for the next poll or the callback.
		logger.WarnCtx(ctx, "Gateway status query failed",
			logger.String("transaction_id", txn.ID.String()),
			logger.Err(err),
		)
		return statusResponse(txn), nil
	}

	if result.Pending {
		return statusResponse(txn), nil
	}

	status, err := uc.reconcile(ctx, txn, result.ResultCode, result.ResultDesc, "")
	if err != nil {
		return nil, err
	}

	// Re-read for the authoritative record: the race winner may have been
	// the callback, which carries the receipt.
	updated, err := uc.paymentRepo.GetTransaction(ctx, id)
	if err != nil {
		return &models.PaymentStatusResponse{
			TransactionID: txn.ID.String(),
			Status:        status,
		}, nil
	}

	return statusResponse(updated), nil
}

func statusResponse(txn *models.Transaction) *models.PaymentStatusResponse {
	return &models.PaymentStatusResponse{
		TransactionID: txn.ID.String(),
		Status:        txn.Status,
		MpesaReceipt:  txn.MpesaReceipt.String,
		FailureReason: txn.FailureReason.String,
	}
}
