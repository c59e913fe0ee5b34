package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/benx421/payment-gateway/balance/internal/models"
)

// IdempotencyRepository stores responses of mutating requests keyed by the
// client's Idempotency-Key and request path
type IdempotencyRepository interface {
	Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error)
	Store(ctx context.Context, idemKey *models.IdempotencyKey) error
}

type idempotencyRepository struct {
	db DBTX
}

// NewIdempotencyRepository creates a new IdempotencyRepository
func NewIdempotencyRepository(db DBTX) IdempotencyRepository {
	return &idempotencyRepository{db: db}
}

// Get returns the cached response, or nil when the key has not been seen
func (r *idempotencyRepository) Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error) {
	query := `
		SELECT key, request_path, response_status, response_body, created_at
		FROM idempotency_keys
		WHERE key = $1 AND request_path = $2
	`

	var idemKey models.IdempotencyKey
	err := r.db.QueryRowxContext(ctx, query, key, requestPath).StructScan(&idemKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get idempotency key: %w", err)
	}

	return &idemKey, nil
}

// Store records a response. The first stored response for a key wins.
func (r *idempotencyRepository) Store(ctx context.Context, idemKey *models.IdempotencyKey) error {
	query := `
		INSERT INTO idempotency_keys (key, request_path, response_status, response_body)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key, request_path) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query,
		idemKey.Key,
		idemKey.RequestPath,
		idemKey.ResponseStatus,
		idemKey.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("failed to store idempotency key: %w", err)
	}

	return nil
}
