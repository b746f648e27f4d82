package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tumapesa/tumapesa/internal/pkg/logger"
	"github.com/tumapesa/tumapesa/internal/pkg/models"
	natspkg "github.com/tumapesa/tumapesa/internal/pkg/nats"
)

// NATSGateway publishes payment lifecycle events
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway instance
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{client: client}
}

// PublishPaymentEvent publishes a payment lifecycle event to the given subject
func (g *NATSGateway) PublishPaymentEvent(ctx context.Context, subject string, event *models.PaymentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal payment event: %w", err)
	}

	if err := g.client.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish payment event: %w", err)
	}

	logger.InfoCtx(ctx, "Published payment event",
		logger.String("subject", subject),
		logger.String("transaction_id", event.TransactionID),
	)
	return nil
}

// PublishPayoutEvent publishes a payout lifecycle event to the given subject
func (g *NATSGateway) PublishPayoutEvent(ctx context.Context, subject string, event *models.PayoutEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal payout event: %w", err)
	}

	if err := g.client.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish payout event: %w", err)
	}

	logger.InfoCtx(ctx, "Published payout event",
		logger.String("subject", subject),
		logger.String("payout_id", event.PayoutID),
	)
	return nil
}
