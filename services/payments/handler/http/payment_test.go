package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tumapesa/tumapesa/internal/pkg/models"
	"github.com/tumapesa/tumapesa/services/payments"
	"github.com/tumapesa/tumapesa/services/payments/mocks"
)

func TestInitiatePayment_HandlerSuccess(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)
	userID := uuid.New().String()

	mockUC.EXPECT().
		InitiatePayment(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req *models.PaymentInitiateRequest) (*models.PaymentInitiateResponse, error) {
			assert.Equal(t, "0712345678", req.PhoneNumber)
			assert.Equal(t, float64(500), req.Amount)
			return &models.PaymentInitiateResponse{
				TransactionID:     uuid.New().String(),
				CheckoutRequestID: "ws_CO_1",
			}, nil
		})

	e := echo.New()
	body := `{"phone_number":"0712345678","amount":500,"kind":"deposit"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)

	// Act
	err := handler.InitiatePayment(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestInitiatePayment_HandlerStateConflict(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)
	userID := uuid.New().String()

	mockUC.EXPECT().
		InitiatePayment(gomock.Any(), userID, gomock.Any()).
		Return(nil, &payments.StateConflictError{
			Resource: "transaction",
			ID:       uuid.New().String(),
			Current:  "completed",
			Required: "pending",
		})

	e := echo.New()
	body := `{"phone_number":"0712345678","amount":500,"kind":"deposit"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)

	// Act
	err := handler.InitiatePayment(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestInitiatePayment_HandlerGatewayError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)
	userID := uuid.New().String()

	mockUC.EXPECT().
		InitiatePayment(gomock.Any(), userID, gomock.Any()).
		Return(nil, &payments.GatewayError{Code: "1", Description: "Insufficient funds on shortcode"})

	e := echo.New()
	body := `{"phone_number":"0712345678","amount":500,"kind":"deposit"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)

	// Act
	err := handler.InitiatePayment(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestSTKCallback_AlwaysAcknowledgesPositively(t *testing.T) {
	callbackBody := `{
		"Body": {
			"stkCallback": {
				"MerchantRequestID": "29115-34620561-1",
				"CheckoutRequestID": "ws_CO_191220191020363925",
				"ResultCode": 0,
				"ResultDesc": "The service request is processed successfully.",
				"CallbackMetadata": {
					"Item": [
						{"Name": "Amount", "Value": 500.00},
						{"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"},
						{"Name": "PhoneNumber", "Value": 254712345678}
					]
				}
			}
		}
	}`

	assertPositiveAck := func(t *testing.T, rec *httptest.ResponseRecorder) {
		assert.Equal(t, http.StatusOK, rec.Code)
		var ack models.CallbackAck
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
		assert.Equal(t, 0, ack.ResultCode)
		assert.Equal(t, "Accepted", ack.ResultDesc)
	}

	t.Run("processing succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUC := mocks.NewMockPaymentUC(ctrl)
		handler := NewPaymentHandler(mockUC)
		mockUC.EXPECT().HandleSTKCallback(gomock.Any(), gomock.Any()).Return(nil)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/callback", strings.NewReader(callbackBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, handler.STKCallback(e.NewContext(req, rec)))
		assertPositiveAck(t, rec)
	})

	t.Run("processing fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUC := mocks.NewMockPaymentUC(ctrl)
		handler := NewPaymentHandler(mockUC)
		mockUC.EXPECT().HandleSTKCallback(gomock.Any(), gomock.Any()).Return(errors.New("database unavailable"))

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/callback", strings.NewReader(callbackBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, handler.STKCallback(e.NewContext(req, rec)))
		assertPositiveAck(t, rec)
	})

	t.Run("malformed payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUC := mocks.NewMockPaymentUC(ctrl)
		handler := NewPaymentHandler(mockUC)
		// No HandleSTKCallback expectation: the payload never parses.

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/callback", strings.NewReader("{not json"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, handler.STKCallback(e.NewContext(req, rec)))
		assertPositiveAck(t, rec)
	})
}

func TestPaymentStatus_Handler(t *testing.T) {
	t.Run("returns reconciled status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUC := mocks.NewMockPaymentUC(ctrl)
		handler := NewPaymentHandler(mockUC)
		transactionID := uuid.New().String()

		mockUC.EXPECT().
			PollPaymentStatus(gomock.Any(), transactionID).
			Return(&models.PaymentStatusResponse{
				TransactionID: transactionID,
				Status:        models.TransactionStatusCompleted,
				MpesaReceipt:  "NLJ7RT61SV",
			}, nil)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/v1/payments/:id/status")
		c.SetParamNames("id")
		c.SetParamValues(transactionID)

		require.NoError(t, handler.PaymentStatus(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "NLJ7RT61SV")
	})

	t.Run("unknown transaction returns 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUC := mocks.NewMockPaymentUC(ctrl)
		handler := NewPaymentHandler(mockUC)
		transactionID := uuid.New().String()

		mockUC.EXPECT().
			PollPaymentStatus(gomock.Any(), transactionID).
			Return(nil, &payments.NotFoundError{Resource: "transaction", ID: transactionID})

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/v1/payments/:id/status")
		c.SetParamNames("id")
		c.SetParamValues(transactionID)

		require.NoError(t, handler.PaymentStatus(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
