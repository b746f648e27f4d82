package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tumapesa/tumapesa/internal/pkg/logger"
	"github.com/tumapesa/tumapesa/internal/pkg/models"
	"github.com/tumapesa/tumapesa/internal/utils"
	"github.com/tumapesa/tumapesa/services/payments"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// InitiatePayment handles payment initiation requests
func (h *PaymentHandler) InitiatePayment(c echo.Context) error {
	var req models.PaymentInitiateRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for payment initiation",
			logger.ErrorField(err),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	userID := fmt.Sprintf("%v", c.Get("user_id"))
	if userID == "" || userID == "<nil>" {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	resp, err := h.paymentUC.InitiatePayment(c.Request().Context(), userID, &req)
	if err != nil {
		return h.mapInitiationError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment initiated", resp)
}

// STKCallback handles the asynchronous gateway callback. The gateway
// retries indefinitely on anything other than a positive acknowledgment,
// so this endpoint always acknowledges, processing errors included.
func (h *PaymentHandler) STKCallback(c echo.Context) error {
	ack := models.CallbackAck{ResultCode: 0, ResultDesc: "Accepted"}

	var callback models.STKCallback
	if err := c.Bind(&callback); err != nil {
		logger.Warn("Malformed gateway callback payload",
			logger.ErrorField(err),
		)
		return c.JSON(http.StatusOK, ack)
	}

	if err := h.paymentUC.HandleSTKCallback(c.Request().Context(), &callback); err != nil {
		logger.Error("Failed to process gateway callback",
			logger.String("checkout_request_id", callback.Body.StkCallback.CheckoutRequestID),
			logger.ErrorField(err),
		)
	}

	return c.JSON(http.StatusOK, ack)
}

// PaymentStatus handles status poll requests
func (h *PaymentHandler) PaymentStatus(c echo.Context) error {
	transactionID := c.Param("id")
	if transactionID == "" {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	resp, err := h.paymentUC.PollPaymentStatus(c.Request().Context(), transactionID)
	if err != nil {
		var notFound *payments.NotFoundError
		if errors.As(err, &notFound) {
			return utils.NotFoundResponse(c, notFound.Error())
		}
		logger.Error("Failed to poll payment status",
			logger.String("transaction_id", transactionID),
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to retrieve payment status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment status retrieved", resp)
}

func (h *PaymentHandler) mapInitiationError(c echo.Context, err error) error {
	var (
		notFound *payments.NotFoundError
		conflict *payments.StateConflictError
		gwErr    *payments.GatewayError
		authErr  *payments.AuthError
		netErr   *payments.NetworkError
	)

	switch {
	case errors.As(err, &notFound):
		return utils.NotFoundResponse(c, notFound.Error())
	case errors.As(err, &conflict):
		return utils.ConflictResponse(c, conflict.Error())
	case errors.As(err, &gwErr):
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, gwErr.Description)
	case errors.As(err, &authErr), errors.As(err, &netErr):
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "Payment gateway unavailable")
	default:
		return utils.BadRequestResponse(c, err.Error())
	}
}
