package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tumapesa/tumapesa/internal/pkg/logger"
	"github.com/tumapesa/tumapesa/internal/utils"
	"github.com/tumapesa/tumapesa/services/payments"
)

// PayoutHandler handles HTTP requests for payout operations
type PayoutHandler struct {
	paymentUC payments.PaymentUC
}

// NewPayoutHandler creates a new payout handler
func NewPayoutHandler(paymentUC payments.PaymentUC) *PayoutHandler {
	return &PayoutHandler{
		paymentUC: paymentUC,
	}
}

// InitiatePayout handles payout initiation requests
func (h *PayoutHandler) InitiatePayout(c echo.Context) error {
	payoutID := c.Param("id")
	if payoutID == "" {
		return utils.BadRequestResponse(c, "Invalid payout ID")
	}

	resp, err := h.paymentUC.InitiatePayout(c.Request().Context(), payoutID)
	if err != nil {
		var (
			notFound *payments.NotFoundError
			conflict *payments.StateConflictError
			gwErr    *payments.GatewayError
		)
		switch {
		case errors.As(err, &notFound):
			return utils.NotFoundResponse(c, notFound.Error())
		case errors.As(err, &conflict):
			return utils.ConflictResponse(c, conflict.Error())
		case errors.As(err, &gwErr):
			return utils.ErrorResponseHandler(c, http.StatusBadGateway, gwErr.Description)
		default:
			logger.Error("Failed to initiate payout",
				logger.String("payout_id", payoutID),
				logger.ErrorField(err),
			)
			return utils.ErrorResponseHandler(c, http.StatusBadGateway, "Payout gateway unavailable")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payout initiated", resp)
}
