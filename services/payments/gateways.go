package payments

import (
	"context"

	"github.com/tumapesa/tumapesa/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/tumapesa/tumapesa/services/payments PaymentGW

// PaymentGW defines the payment gateways interface
type PaymentGW interface {
	// M-Pesa Gateway
	InitiateSTK(ctx context.Context, phoneNumber string, amount float64, reference string) (*models.STKPushResult, error)
	QuerySTK(ctx context.Context, checkoutRequestID string) (*models.STKQueryResult, error)
	Disburse(ctx context.Context, phoneNumber string, amount float64, reference string) (*models.B2CResult, error)

	// NATS Gateway
	PublishPaymentEvent(ctx context.Context, subject string, event *models.PaymentEvent) error
	PublishPayoutEvent(ctx context.Context, subject string, event *models.PayoutEvent) error
}
