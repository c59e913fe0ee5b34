package api

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// CreateUserRequest is the body of POST /api/v1/users
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

// AddCardRequest is the body of POST /api/v1/cards
type AddCardRequest struct {
	UserID       uuid.UUID `json:"user_id" validate:"required"`
	IssuanceBank string    `json:"card_issuance_bank" validate:"required,max=255"`
	CardNumber   string    `json:"card_number" validate:"required,numeric,min=13,max=19"`
}

// BalanceUpdate is one transaction in a POST /api/v1/balance-updates batch.
// Amount is a pointer so a missing amount is told apart from zero.
type BalanceUpdate struct {
	TransactionTime   time.Time `json:"transaction_time" validate:"required"`
	TransactionAmount *float64  `json:"transaction_amount" validate:"required"`
	CreditCardNumber  string    `json:"credit_card_number" validate:"required"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type OwnerResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type CardView struct {
	IssuanceBank string `json:"issuance_bank"`
	Number       string `json:"number"`
}

type BalanceSnapshot struct {
	Date    civil.Date `json:"date"`
	Balance float64    `json:"balance"`
}

type BalanceUpdateResponse struct {
	Status  string `json:"status"`
	Applied int    `json:"applied"`
}

// HealthStatus values
const (
	Healthy   = "healthy"
	Unhealthy = "unhealthy"
)

type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every 4xx and 5xx reply
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// BatchErrorResponse reports where a balance update batch stopped
type BatchErrorResponse struct {
	Error       string `json:"error"`
	Message     string `json:"message"`
	FailedIndex int    `json:"failed_index"`
	Applied     int    `json:"applied"`
}
