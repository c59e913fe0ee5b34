package service

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/benx421/payment-gateway/balance/internal/models"
	"github.com/benx421/payment-gateway/balance/internal/timeline"
	"github.com/google/uuid"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// UserManager handles user lifecycle operations
type UserManager interface {
	CreateUser(ctx context.Context, name, email string) (*models.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// CardManager handles card registration and lookups
type CardManager interface {
	AddCard(ctx context.Context, userID uuid.UUID, issuanceBank, number string) (*models.Card, error)
	ListCards(ctx context.Context, userID uuid.UUID) ([]models.Card, error)
	FindOwner(ctx context.Context, number string) (uuid.UUID, error)
	BalanceHistory(ctx context.Context, number string, from, to *civil.Date) (timeline.Timeline, error)
}

// BalanceUpdater applies batches of dated transactions to card timelines
type BalanceUpdater interface {
	UpdateBalances(ctx context.Context, txns []models.Transaction) (int, error)
}

// Ensure concrete types implement interfaces
var (
	_ UserManager    = (*UserService)(nil)
	_ CardManager    = (*CardService)(nil)
	_ BalanceUpdater = (*BalanceService)(nil)
)
