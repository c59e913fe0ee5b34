package repository

import (
	"context"
	"fmt"

	"github.com/benx421/payment-gateway/balance/internal/models"
	"github.com/benx421/payment-gateway/balance/internal/timeline"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// CardRepository defines the interface for card and balance history data access
type CardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	FindByNumber(ctx context.Context, number string) ([]models.Card, error)
	FindByNumberForUpdate(ctx context.Context, number string) ([]models.Card, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Card, error)
	LoadBalanceHistory(ctx context.Context, cardID uuid.UUID) (timeline.Timeline, error)
	SaveSnapshots(ctx context.Context, cardID uuid.UUID, snapshots timeline.Timeline) error
}

type cardRepository struct {
	db DBTX
}

// NewCardRepository creates a new CardRepository
func NewCardRepository(db DBTX) CardRepository {
	return &cardRepository{db: db}
}

const cardColumns = `id, user_id, issuance_bank, number, created_at`

// Create inserts a card row. Its balance history is written with SaveSnapshots.
func (r *cardRepository) Create(ctx context.Context, card *models.Card) error {
	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}

	query := `
		INSERT INTO cards (id, user_id, issuance_bank, number)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := r.db.QueryRowxContext(ctx, query, card.ID, card.UserID, card.IssuanceBank, card.Number).
		Scan(&card.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}

	return nil
}

// FindByNumber returns every card carrying the given number
func (r *cardRepository) FindByNumber(ctx context.Context, number string) ([]models.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE number = $1 ORDER BY created_at`
	return r.selectCards(ctx, query, number)
}

// FindByNumberForUpdate is FindByNumber with the matching rows locked until
// the surrounding transaction ends
func (r *cardRepository) FindByNumberForUpdate(ctx context.Context, number string) ([]models.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE number = $1 ORDER BY created_at FOR UPDATE`
	return r.selectCards(ctx, query, number)
}

// FindByUserID returns the cards owned by a user
func (r *cardRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE user_id = $1 ORDER BY created_at`
	return r.selectCards(ctx, query, userID)
}

func (r *cardRepository) selectCards(ctx context.Context, query string, arg any) ([]models.Card, error) {
	cards := []models.Card{}
	if err := sqlx.SelectContext(ctx, r.db, &cards, query, arg); err != nil {
		return nil, fmt.Errorf("failed to find cards: %w", err)
	}
	return cards, nil
}

// LoadBalanceHistory returns a card's snapshots, most recent first
func (r *cardRepository) LoadBalanceHistory(ctx context.Context, cardID uuid.UUID) (timeline.Timeline, error) {
	query := `
		SELECT card_id, day, balance
		FROM balance_snapshots
		WHERE card_id = $1
		ORDER BY day DESC
	`

	var rows []models.BalanceSnapshot
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, cardID); err != nil {
		return nil, fmt.Errorf("failed to load balance history: %w", err)
	}

	history := make(timeline.Timeline, 0, len(rows))
	for _, row := range rows {
		history = append(history, timeline.Snapshot{
			Day:     timeline.DayOf(row.Day),
			Balance: row.Balance,
		})
	}

	return history, nil
}

// SaveSnapshots upserts the given snapshots of a card in a single statement
func (r *cardRepository) SaveSnapshots(ctx context.Context, cardID uuid.UUID, snapshots timeline.Timeline) error {
	if len(snapshots) == 0 {
		return nil
	}

	days := make([]string, len(snapshots))
	balances := make([]float64, len(snapshots))
	for i, s := range snapshots {
		days[i] = s.Day.String()
		balances[i] = s.Balance
	}

	query := `
		INSERT INTO balance_snapshots (card_id, day, balance)
		SELECT $1, unnest($2::date[]), unnest($3::double precision[])
		ON CONFLICT (card_id, day) DO UPDATE SET balance = EXCLUDED.balance
	`

	if _, err := r.db.ExecContext(ctx, query, cardID, pq.Array(days), pq.Array(balances)); err != nil {
		return fmt.Errorf("failed to save balance snapshots: %w", err)
	}

	return nil
}
