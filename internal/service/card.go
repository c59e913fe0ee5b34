package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/benx421/payment-gateway/balance/internal/db"
	"github.com/benx421/payment-gateway/balance/internal/models"
	"github.com/benx421/payment-gateway/balance/internal/repository"
	"github.com/benx421/payment-gateway/balance/internal/timeline"
	"github.com/google/uuid"
)

// CardService handles card registration and lookups
type CardService struct {
	db  *db.DB
	now func() time.Time
}

// NewCardService creates a new CardService. A nil clock defaults to time.Now.
func NewCardService(database *db.DB, now func() time.Time) *CardService {
	if now == nil {
		now = time.Now
	}
	return &CardService{
		db:  database,
		now: now,
	}
}

// AddCard registers a card for an existing user and seeds its balance
// history with a zero balance for today
func (s *CardService) AddCard(ctx context.Context, userID uuid.UUID, issuanceBank, number string) (*models.Card, error) {
	if err := ValidateCardNumber(number); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidCard,
			Message: err.Error(),
		}
	}

	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, internalError("start transaction", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	card, err := s.performAddCard(ctx,
		repository.NewUserRepository(tx),
		repository.NewCardRepository(tx),
		userID, issuanceBank, number,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("commit transaction", err)
	}

	return card, nil
}

func (s *CardService) performAddCard(
	ctx context.Context,
	userRepo repository.UserRepository,
	cardRepo repository.CardRepository,
	userID uuid.UUID,
	issuanceBank, number string,
) (*models.Card, error) {
	if _, err := userRepo.FindByID(ctx, userID); err != nil {
		return nil, userLookupError(err)
	}

	card := &models.Card{
		ID:             uuid.New(),
		UserID:         userID,
		IssuanceBank:   issuanceBank,
		Number:         number,
		BalanceHistory: timeline.EnsureToday(nil, s.now()),
	}

	if err := cardRepo.Create(ctx, card); err != nil {
		return nil, internalError("create card", err)
	}

	if err := cardRepo.SaveSnapshots(ctx, card.ID, card.BalanceHistory); err != nil {
		return nil, internalError("save balance history", err)
	}

	return card, nil
}

// ListCards returns every card owned by a user
func (s *CardService) ListCards(ctx context.Context, userID uuid.UUID) ([]models.Card, error) {
	return s.listCards(ctx, repository.NewUserRepository(s.db), repository.NewCardRepository(s.db), userID)
}

func (s *CardService) listCards(
	ctx context.Context,
	userRepo repository.UserRepository,
	cardRepo repository.CardRepository,
	userID uuid.UUID,
) ([]models.Card, error) {
	if _, err := userRepo.FindByID(ctx, userID); err != nil {
		return nil, userLookupError(err)
	}

	cards, err := cardRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, internalError("list cards", err)
	}

	return cards, nil
}

// FindOwner returns the ID of the user owning the card with the given number
func (s *CardService) FindOwner(ctx context.Context, number string) (uuid.UUID, error) {
	card, err := s.findCard(ctx, repository.NewCardRepository(s.db), number)
	if err != nil {
		return uuid.Nil, err
	}
	return card.UserID, nil
}

// BalanceHistory returns the stored balance history of a card, most recent
// day first, optionally limited to [from, to]
func (s *CardService) BalanceHistory(ctx context.Context, number string, from, to *civil.Date) (timeline.Timeline, error) {
	return s.balanceHistory(ctx, repository.NewCardRepository(s.db), number, from, to)
}

func (s *CardService) balanceHistory(
	ctx context.Context,
	cardRepo repository.CardRepository,
	number string,
	from, to *civil.Date,
) (timeline.Timeline, error) {
	card, err := s.findCard(ctx, cardRepo, number)
	if err != nil {
		return nil, err
	}

	history, err := cardRepo.LoadBalanceHistory(ctx, card.ID)
	if err != nil {
		return nil, internalError("load balance history", err)
	}

	return history.Between(from, to), nil
}

func (s *CardService) findCard(ctx context.Context, cardRepo repository.CardRepository, number string) (*models.Card, error) {
	cards, err := cardRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, internalError("find card", err)
	}
	return resolveCard(cards)
}

// resolveCard returns the single card of a number lookup. Zero or several
// matches are ambiguous.
func resolveCard(cards []models.Card) (*models.Card, error) {
	if len(cards) != 1 {
		return nil, &ServiceError{
			Code:    ErrCodeAmbiguousCard,
			Message: fmt.Sprintf("card number matches %d cards, expected exactly one", len(cards)),
		}
	}
	return &cards[0], nil
}

func userLookupError(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{
			Code:    ErrCodeUserNotFound,
			Message: "user does not exist",
		}
	}
	return internalError("find user", err)
}
