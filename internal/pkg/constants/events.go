package constants

// NATS subjects for payment lifecycle events
const (
	SubjectPaymentCompleted = "payments.completed"
	SubjectPaymentFailed    = "payments.failed"
	SubjectPaymentCancelled = "payments.cancelled"
	SubjectPayoutInitiated  = "payouts.initiated"
	SubjectPayoutFailed     = "payouts.failed"
)
