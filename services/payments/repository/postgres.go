package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/tumapesa/tumapesa/internal/pkg/database"
)

// PaymentRepo implements the payments.PaymentRepo interface on Postgres,
// with Redis carrying advisory callback dedup markers.
type PaymentRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewPaymentRepo creates a new payment repository
func NewPaymentRepo(db *sqlx.DB, redisClient *database.RedisClient) *PaymentRepo {
	return &PaymentRepo{
		db:          db,
		redisClient: redisClient,
	}
}
