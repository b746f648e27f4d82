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

// InitiatePayout disburses an approved payout via B2C. An unapproved or
// already-processing payout is rejected with no state change. Auth and
// network failures leave the payout in its prior status for manual retry;
// a definitive gateway rejection advances it to failed.
func (uc *PaymentUC) InitiatePayout(ctx context.Context, payoutID string) (*models.PayoutInitiateResponse, error) {
	id, err := uuid.Parse(payoutID)
	if err != nil {
		return nil, &payments.NotFoundError{Resource: "payout", ID: payoutID}
	}

	payout, err := uc.paymentRepo.GetPayout(ctx, id)
	if err != nil {
		return nil, err
	}

	if payout.Approval != models.PayoutApprovalApproved {
		return nil, &payments.StateConflictError{
			Resource: "payout",
			ID:       payout.ID.String(),
			Current:  string(payout.Approval),
			Required: string(models.PayoutApprovalApproved),
		}
	}
	if payout.Status != models.PayoutStatusPending {
		return nil, &payments.StateConflictError{
			Resource: "payout",
			ID:       payout.ID.String(),
			Current:  string(payout.Status),
			Required: string(models.PayoutStatusPending),
		}
	}

	reference := "PAYOUT-" + payout.ID.String()[:8]
	result, err := uc.paymentGW.Disburse(ctx, payout.PhoneNumber, payout.Amount, reference)
	if err != nil {
		var gwErr *payments.GatewayError
		if errors.As(err, &gwErr) {
			// A definitive gateway rejection is final for this attempt.
			if updateErr := uc.paymentRepo.UpdatePayoutStatus(ctx, payout.ID, models.PayoutStatusFailed, gwErr.Description); updateErr != nil {
				logger.ErrorCtx(ctx, "Failed to mark payout failed",
					logger.String("payout_id", payout.ID.String()),
					logger.Err(updateErr),
				)
			}
			uc.publishPayoutEvent(ctx, payout, models.PayoutStatusFailed, "")
			return nil, err
		}
		// Auth/network failure: payout keeps its prior status, never
		// silently abandoned in an ambiguous state.
		return nil, fmt.Errorf("payout disbursement failed: %w", err)
	}

	if err := uc.paymentRepo.SetPayoutConversation(ctx, payout.ID, result.ConversationID, result.OriginatorConversationID); err != nil {
		return nil, err
	}
	if err := uc.paymentRepo.UpdatePayoutStatus(ctx, payout.ID, models.PayoutStatusProcessing, ""); err != nil {
		return nil, err
	}

	uc.publishPayoutEvent(ctx, payout, models.PayoutStatusProcessing, result.ConversationID)

	logger.InfoCtx(ctx, "Payout handed to gateway",
		logger.String("payout_id", payout.ID.String()),
		logger.String("conversation_id", result.ConversationID),
	)

	return &models.PayoutInitiateResponse{
		PayoutID:                 payout.ID.String(),
		Status:                   models.PayoutStatusProcessing,
		ConversationID:           result.ConversationID,
		OriginatorConversationID: result.OriginatorConversationID,
	}, nil
}

func (uc *PaymentUC) publishPayoutEvent(ctx context.Context, payout *models.Payout, status models.PayoutStatus, conversationID string) {
	subject := constants.SubjectPayoutInitiated
	if status == models.PayoutStatusFailed {
		subject = constants.SubjectPayoutFailed
	}

	event := &models.PayoutEvent{
		PayoutID:       payout.ID.String(),
		UserID:         payout.UserID.String(),
		Amount:         payout.Amount,
		Status:         status,
		ConversationID: conversationID,
		Timestamp:      time.Now().UTC(),
	}

	if err := uc.paymentGW.PublishPayoutEvent(ctx, subject, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish payout event",
			logger.String("payout_id", payout.ID.String()),
			logger.Err(err),
		)
	}
}
