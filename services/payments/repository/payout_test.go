package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tumapesa/tumapesa/internal/pkg/models"
	"github.com/tumapesa/tumapesa/services/payments"
)

func payoutRows(payout *models.Payout) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "phone_number", "amount", "approval", "status",
		"conversation_id", "originator_conversation_id", "failure_reason",
		"created_at", "updated_at",
	}).AddRow(
		payout.ID, payout.UserID, payout.PhoneNumber, payout.Amount,
		payout.Approval, payout.Status, payout.ConversationID,
		payout.OriginatorConversationID, payout.FailureReason,
		payout.CreatedAt, payout.UpdatedAt,
	)
}

func TestGetPayout(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, cleanup := setupPaymentRepoTest(t)
		defer cleanup()

		now := time.Now()
		payout := &models.Payout{
			ID:          uuid.New(),
			UserID:      uuid.New(),
			PhoneNumber: "254712345678",
			Amount:      750,
			Approval:    models.PayoutApprovalApproved,
			Status:      models.PayoutStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		mock.ExpectQuery("^SELECT (.+) FROM payouts WHERE id").
			WithArgs(payout.ID).
			WillReturnRows(payoutRows(payout))

		got, err := repo.GetPayout(context.Background(), payout.ID)

		require.NoError(t, err)
		assert.Equal(t, payout.ID, got.ID)
		assert.Equal(t, models.PayoutApprovalApproved, got.Approval)
	})

	t.Run("missing returns NotFoundError", func(t *testing.T) {
		repo, mock, cleanup := setupPaymentRepoTest(t)
		defer cleanup()

		id := uuid.New()
		mock.ExpectQuery("^SELECT (.+) FROM payouts WHERE id").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetPayout(context.Background(), id)

		var notFound *payments.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestUpdatePayoutStatus(t *testing.T) {
	t.Run("updates status and failure reason", func(t *testing.T) {
		repo, mock, cleanup := setupPaymentRepoTest(t)
		defer cleanup()

		id := uuid.New()
		mock.ExpectExec("^UPDATE payouts").
			WithArgs(id, models.PayoutStatusFailed, "Insufficient balance", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdatePayoutStatus(context.Background(), id, models.PayoutStatusFailed, "Insufficient balance")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing payout returns NotFoundError", func(t *testing.T) {
		repo, mock, cleanup := setupPaymentRepoTest(t)
		defer cleanup()

		id := uuid.New()
		mock.ExpectExec("^UPDATE payouts").
			WithArgs(id, models.PayoutStatusProcessing, "", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdatePayoutStatus(context.Background(), id, models.PayoutStatusProcessing, "")

		var notFound *payments.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestSetPayoutConversation(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec("^UPDATE payouts").
		WithArgs(id, "AG_20240601_0000abc", "29112-34801843-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetPayoutConversation(context.Background(), id, "AG_20240601_0000abc", "29112-34801843-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
