package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// TransactionKind identifies what a payment is funding
type TransactionKind string

const (
	TransactionKindBuy          TransactionKind = "buy"
	TransactionKindDeposit      TransactionKind = "deposit"
	TransactionKindCoinCreation TransactionKind = "coin_creation"
)

// TransactionStatus is the reconciliation state of a payment
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusSTKSent   TransactionStatus = "stk_sent"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Terminal reports whether no further transition is permitted from s
func (s TransactionStatus) Terminal() bool {
	switch s {
	case TransactionStatusCompleted, TransactionStatusCancelled, TransactionStatusFailed:
		return true
	}
	return false
}

// Transaction represents a single payment's durable record. The checkout
// request ID is the gateway correlation key: set once after a successful
// STK initiation, immutable afterwards.
type Transaction struct {
	ID                uuid.UUID         `json:"id" db:"id"`
	UserID            uuid.UUID         `json:"user_id" db:"user_id"`
	Kind              TransactionKind   `json:"kind" db:"kind"`
	Amount            float64           `json:"amount" db:"amount"`
	TotalValue        float64           `json:"total_value" db:"total_value"`
	CoinID            uuid.NullUUID     `json:"coin_id,omitempty" db:"coin_id"`
	MerchantRequestID sql.NullString    `json:"merchant_request_id,omitempty" db:"merchant_request_id"`
	CheckoutRequestID sql.NullString    `json:"checkout_request_id,omitempty" db:"checkout_request_id"`
	Status            TransactionStatus `json:"status" db:"status"`
	MpesaReceipt      sql.NullString    `json:"mpesa_receipt,omitempty" db:"mpesa_receipt"`
	FailureReason     sql.NullString    `json:"failure_reason,omitempty" db:"failure_reason"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" db:"updated_at"`
}

// PaymentInitiateRequest represents a request to start an STK push payment
type PaymentInitiateRequest struct {
	PhoneNumber   string          `json:"phone_number"`
	Amount        float64         `json:"amount"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Reference     string          `json:"reference,omitempty"`
	Kind          TransactionKind `json:"kind"`
}

// PaymentInitiateResponse returns the gateway correlation key to the caller
type PaymentInitiateResponse struct {
	TransactionID     string `json:"transaction_id"`
	MerchantRequestID string `json:"merchant_request_id"`
	CheckoutRequestID string `json:"checkout_request_id"`
	CustomerMessage   string `json:"customer_message,omitempty"`
}

// PaymentStatusResponse is the reconciled view returned by the status poll
type PaymentStatusResponse struct {
	TransactionID string            `json:"transaction_id"`
	Status        TransactionStatus `json:"status"`
	MpesaReceipt  string            `json:"mpesa_receipt,omitempty"`
	FailureReason string            `json:"failure_reason,omitempty"`
}

// PaymentEvent is published on NATS when a transaction reaches a terminal state
type PaymentEvent struct {
	TransactionID string            `json:"transaction_id"`
	UserID        string            `json:"user_id"`
	Kind          TransactionKind   `json:"kind"`
	Amount        float64           `json:"amount"`
	Status        TransactionStatus `json:"status"`
	MpesaReceipt  string            `json:"mpesa_receipt,omitempty"`
	Timestamp     time.Time         `json:"timestamp"`
}
