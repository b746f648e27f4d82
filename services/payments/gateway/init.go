package gateway

import (
	"context"

	"github.com/tumapesa/tumapesa/internal/pkg/models"
	natspkg "github.com/tumapesa/tumapesa/internal/pkg/nats"
	"github.com/tumapesa/tumapesa/services/payments"
	"github.com/tumapesa/tumapesa/services/payments/gateway/mpesa"
	gateway_nats "github.com/tumapesa/tumapesa/services/payments/gateway/nats"
)

// PaymentGW handles payment gateway operations
type PaymentGW struct {
	mpesaClient *mpesa.Client
	natsGateway *gateway_nats.NATSGateway
}

// NewPaymentGW creates a new gateway instance with Daraja and NATS clients
func NewPaymentGW(cfg models.MpesaConfig, natsClient *natspkg.Client) payments.PaymentGW {
	return &PaymentGW{
		mpesaClient: mpesa.NewClient(cfg),
		natsGateway: gateway_nats.NewNATSGateway(natsClient),
	}
}

// InitiateSTK sends an STK push via the Daraja client
func (g *PaymentGW) InitiateSTK(ctx context.Context, phoneNumber string, amount float64, reference string) (*models.STKPushResult, error) {
	return g.mpesaClient.InitiateSTK(ctx, phoneNumber, amount, reference)
}

// QuerySTK queries an initiated payment's outcome via the Daraja client
func (g *PaymentGW) QuerySTK(ctx context.Context, checkoutRequestID string) (*models.STKQueryResult, error) {
	return g.mpesaClient.QuerySTK(ctx, checkoutRequestID)
}

// Disburse invokes the B2C payment operation via the Daraja client
func (g *PaymentGW) Disburse(ctx context.Context, phoneNumber string, amount float64, reference string) (*models.B2CResult, error) {
	return g.mpesaClient.Disburse(ctx, phoneNumber, amount, reference)
}

// PublishPaymentEvent publishes a payment lifecycle event
func (g *PaymentGW) PublishPaymentEvent(ctx context.Context, subject string, event *models.PaymentEvent) error {
	return g.natsGateway.PublishPaymentEvent(ctx, subject, event)
}

// PublishPayoutEvent publishes a payout lifecycle event
func (g *PaymentGW) PublishPayoutEvent(ctx context.Context, subject string, event *models.PayoutEvent) error {
	return g.natsGateway.PublishPayoutEvent(ctx, subject, event)
}
