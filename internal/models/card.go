package models

import (
	"time"

	"github.com/benx421/payment-gateway/balance/internal/timeline"
	"github.com/google/uuid"
)

// Card represents a credit card and the daily balance history it owns
type Card struct {
	CreatedAt      time.Time         `db:"created_at"`
	IssuanceBank   string            `db:"issuance_bank"`
	Number         string            `db:"number"`
	BalanceHistory timeline.Timeline `db:"-"`
	ID             uuid.UUID         `db:"id"`
	UserID         uuid.UUID         `db:"user_id"`
}

// BalanceSnapshot is the stored form of a timeline entry, keyed by card and day
type BalanceSnapshot struct {
	Day     time.Time `db:"day"`
	Balance float64   `db:"balance"`
	CardID  uuid.UUID `db:"card_id"`
}

// Transaction is a signed balance change reported against a card number.
// It is applied to the card's timeline and never stored on its own.
type Transaction struct {
	OccurredAt time.Time
	CardNumber string
	Amount     float64
}

// IdempotencyKey tracks processed requests to prevent duplicate updates
type IdempotencyKey struct {
	CreatedAt      time.Time `db:"created_at"`
	Key            string    `db:"key"`
	RequestPath    string    `db:"request_path"`
	ResponseBody   string    `db:"response_body"`
	ResponseStatus int       `db:"response_status"`
}
