package usecase

import (
	"github.com/tumapesa/tumapesa/services/payments"
)

// PaymentUC implements the payments.PaymentUC interface
type PaymentUC struct {
	paymentRepo payments.PaymentRepo
	paymentGW   payments.PaymentGW
}

// NewPaymentUC creates a new payment usecase instance
func NewPaymentUC(
	paymentRepo payments.PaymentRepo,
	paymentGW payments.PaymentGW,
) *PaymentUC {
	return &PaymentUC{
		paymentRepo: paymentRepo,
		paymentGW:   paymentGW,
	}
}
