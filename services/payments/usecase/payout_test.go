package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tumapesa/tumapesa/internal/pkg/models"
	"github.com/tumapesa/tumapesa/services/payments"
)

func pendingPayout() *models.Payout {
	return &models.Payout{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		PhoneNumber: "254712345678",
		Amount:      750,
		Approval:    models.PayoutApprovalApproved,
		Status:      models.PayoutStatusPending,
	}
}

func TestInitiatePayout_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockGW := newTestUC(ctrl)
	payout := pendingPayout()

	mockRepo.EXPECT().GetPayout(gomock.Any(), payout.ID).Return(payout, nil)
	mockGW.EXPECT().
		Disburse(gomock.Any(), payout.PhoneNumber, payout.Amount, "PAYOUT-"+payout.ID.String()[:8]).
		Return(&models.B2CResult{
			ConversationID:           "AG_20240601_0000abc",
			OriginatorConversationID: "29112-34801843-1",
		}, nil)
	mockRepo.EXPECT().
		SetPayoutConversation(gomock.Any(), payout.ID, "AG_20240601_0000abc", "29112-34801843-1").
		Return(nil)
	mockRepo.EXPECT().
		UpdatePayoutStatus(gomock.Any(), payout.ID, models.PayoutStatusProcessing, "").
		Return(nil)
	mockGW.EXPECT().PublishPayoutEvent(gomock.Any(), "payouts.initiated", gomock.Any()).Return(nil)

	// Act
	resp, err := uc.InitiatePayout(context.Background(), payout.ID.String())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.PayoutStatusProcessing, resp.Status)
	assert.Equal(t, "AG_20240601_0000abc", resp.ConversationID)
}

func TestInitiatePayout_UnapprovedIsRejected(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _ := newTestUC(ctrl)
	payout := pendingPayout()
	payout.Approval = models.PayoutApprovalPending

	mockRepo.EXPECT().GetPayout(gomock.Any(), payout.ID).Return(payout, nil)
	// No Disburse and no UpdatePayoutStatus expectations: the precondition
	// failure leaves the payout untouched.

	// Act
	_, err := uc.InitiatePayout(context.Background(), payout.ID.String())

	// Assert
	var conflict *payments.StateConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, string(models.PayoutApprovalPending), conflict.Current)
	assert.Equal(t, string(models.PayoutApprovalApproved), conflict.Required)
}

func TestInitiatePayout_RejectedApprovalIsRejected(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _ := newTestUC(ctrl)
	payout := pendingPayout()
	payout.Approval = models.PayoutApprovalRejected

	mockRepo.EXPECT().GetPayout(gomock.Any(), payout.ID).Return(payout, nil)

	// Act
	_, err := uc.InitiatePayout(context.Background(), payout.ID.String())

	// Assert
	var conflict *payments.StateConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestInitiatePayout_AlreadyProcessingIsRejected(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _ := newTestUC(ctrl)
	payout := pendingPayout()
	payout.Status = models.PayoutStatusProcessing

	mockRepo.EXPECT().GetPayout(gomock.Any(), payout.ID).Return(payout, nil)

	// Act
	_, err := uc.InitiatePayout(context.Background(), payout.ID.String())

	// Assert
	var conflict *payments.StateConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, string(models.PayoutStatusProcessing), conflict.Current)
}

func TestInitiatePayout_GatewayRejectionMarksFailed(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockGW := newTestUC(ctrl)
	payout := pendingPayout()

	gwErr := &payments.GatewayError{Code: "1", Description: "Insufficient balance"}

	mockRepo.EXPECT().GetPayout(gomock.Any(), payout.ID).Return(payout, nil)
	mockGW.EXPECT().
		Disburse(gomock.Any(), payout.PhoneNumber, payout.Amount, gomock.Any()).
		Return(nil, gwErr)
	mockRepo.EXPECT().
		UpdatePayoutStatus(gomock.Any(), payout.ID, models.PayoutStatusFailed, "Insufficient balance").
		Return(nil)
	mockGW.EXPECT().PublishPayoutEvent(gomock.Any(), "payouts.failed", gomock.Any()).Return(nil)

	// Act
	_, err := uc.InitiatePayout(context.Background(), payout.ID.String())

	// Assert
	var got *payments.GatewayError
	assert.ErrorAs(t, err, &got)
}

func TestInitiatePayout_NetworkFailureLeavesStatusUntouched(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockGW := newTestUC(ctrl)
	payout := pendingPayout()

	mockRepo.EXPECT().GetPayout(gomock.Any(), payout.ID).Return(payout, nil)
	mockGW.EXPECT().
		Disburse(gomock.Any(), payout.PhoneNumber, payout.Amount, gomock.Any()).
		Return(nil, &payments.NetworkError{Op: "b2c payment", Err: errors.New("timeout")})
	// No UpdatePayoutStatus expectation: the payout stays pending for a retry.

	// Act
	_, err := uc.InitiatePayout(context.Background(), payout.ID.String())

	// Assert
	assert.Error(t, err)
}

func TestInitiatePayout_InvalidIDReturnsNotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _ := newTestUC(ctrl)

	// Act
	_, err := uc.InitiatePayout(context.Background(), "not-a-uuid")

	// Assert
	var notFound *payments.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestInitiatePayout_UnknownPayout(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _ := newTestUC(ctrl)
	id := uuid.New()

	mockRepo.EXPECT().
		GetPayout(gomock.Any(), id).
		Return(nil, &payments.NotFoundError{Resource: "payout", ID: id.String()})

	// Act
	_, err := uc.InitiatePayout(context.Background(), id.String())

	// Assert
	var notFound *payments.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
