package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// PayoutApproval is the review outcome recorded by the approval workflow
type PayoutApproval string

const (
	PayoutApprovalPending  PayoutApproval = "pending"
	PayoutApprovalApproved PayoutApproval = "approved"
	PayoutApprovalRejected PayoutApproval = "rejected"
)

// PayoutStatus is the disbursement lifecycle state
type PayoutStatus string

const (
	PayoutStatusPending    PayoutStatus = "pending"
	PayoutStatusProcessing PayoutStatus = "processing"
	PayoutStatusCompleted  PayoutStatus = "completed"
	PayoutStatusFailed     PayoutStatus = "failed"
)

// Payout represents an outbound B2C disbursement request. It is created by
// the approval workflow and advanced only by the payout initiator and the
// asynchronous B2C result callback.
type Payout struct {
	ID                       uuid.UUID      `json:"id" db:"id"`
	UserID                   uuid.UUID      `json:"user_id" db:"user_id"`
	PhoneNumber              string         `json:"phone_number" db:"phone_number"`
	Amount                   float64        `json:"amount" db:"amount"`
	Approval                 PayoutApproval `json:"approval" db:"approval"`
	Status                   PayoutStatus   `json:"status" db:"status"`
	ConversationID           sql.NullString `json:"conversation_id,omitempty" db:"conversation_id"`
	OriginatorConversationID sql.NullString `json:"originator_conversation_id,omitempty" db:"originator_conversation_id"`
	FailureReason            sql.NullString `json:"failure_reason,omitempty" db:"failure_reason"`
	CreatedAt                time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt                time.Time      `json:"updated_at" db:"updated_at"`
}

// PayoutInitiateResponse returns the gateway conversation identifiers
type PayoutInitiateResponse struct {
	PayoutID                 string       `json:"payout_id"`
	Status                   PayoutStatus `json:"status"`
	ConversationID           string       `json:"conversation_id"`
	OriginatorConversationID string       `json:"originator_conversation_id"`
}

// PayoutEvent is published on NATS when a disbursement is handed to the gateway
type PayoutEvent struct {
	PayoutID       string       `json:"payout_id"`
	UserID         string       `json:"user_id"`
	Amount         float64      `json:"amount"`
	Status         PayoutStatus `json:"status"`
	ConversationID string       `json:"conversation_id,omitempty"`
	Timestamp      time.Time    `json:"timestamp"`
}
