package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/benx421/payment-gateway/balance/internal/db"
	"github.com/benx421/payment-gateway/balance/internal/metrics"
	"github.com/benx421/payment-gateway/balance/internal/models"
	"github.com/benx421/payment-gateway/balance/internal/repository"
	"github.com/benx421/payment-gateway/balance/internal/timeline"
)

// BalanceService applies dated transactions to card balance timelines
type BalanceService struct {
	db  *db.DB
	now func() time.Time
}

// NewBalanceService creates a new BalanceService. A nil clock defaults to time.Now.
func NewBalanceService(database *db.DB, now func() time.Time) *BalanceService {
	if now == nil {
		now = time.Now
	}
	return &BalanceService{
		db:  database,
		now: now,
	}
}

// UpdateBalances applies txns in order, committing each before the next.
// It stops at the first failure and returns how many transactions were
// committed; those are not rolled back.
func (s *BalanceService) UpdateBalances(ctx context.Context, txns []models.Transaction) (int, error) {
	metrics.RecordBatch(len(txns))

	for i, txn := range txns {
		if err := s.applyTransaction(ctx, txn); err != nil {
			metrics.RecordTransaction(outcomeOf(err))
			return i, err
		}
		metrics.RecordTransaction(metrics.OutcomeApplied)
	}

	return len(txns), nil
}

func (s *BalanceService) applyTransaction(ctx context.Context, txn models.Transaction) error {
	now := s.now()
	if err := validateTransaction(txn, now); err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return internalError("start transaction", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	if err := s.performUpdate(ctx, repository.NewCardRepository(tx), txn, now); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return internalError("commit transaction", err)
	}

	return nil
}

// performUpdate contains the core balance update logic: resolve the card,
// anchor its timeline on today, fold in the transaction and persist the
// snapshots that changed
func (s *BalanceService) performUpdate(
	ctx context.Context,
	cardRepo repository.CardRepository,
	txn models.Transaction,
	now time.Time,
) error {
	cards, err := cardRepo.FindByNumberForUpdate(ctx, txn.CardNumber)
	if err != nil {
		return internalError("find card", err)
	}

	card, err := resolveCard(cards)
	if err != nil {
		return err
	}

	history, err := cardRepo.LoadBalanceHistory(ctx, card.ID)
	if err != nil {
		return internalError("load balance history", err)
	}

	updated := timeline.EnsureToday(history, now)
	updated = timeline.Apply(updated, txn.Amount, timeline.DayOf(txn.OccurredAt))

	changed := timeline.Diff(history, updated)
	if err := cardRepo.SaveSnapshots(ctx, card.ID, changed); err != nil {
		return internalError("save balance history", err)
	}
	metrics.RecordSnapshotsWritten(len(changed))

	return nil
}

func validateTransaction(txn models.Transaction, now time.Time) error {
	if txn.OccurredAt.IsZero() {
		return &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: "transaction time is required",
		}
	}

	if err := ValidateAmount(txn.Amount); err != nil {
		return &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: err.Error(),
		}
	}

	if err := ValidateTransactionTime(txn.OccurredAt, now); err != nil {
		return &ServiceError{
			Code:    ErrCodeFutureTransaction,
			Message: err.Error(),
		}
	}

	return nil
}

func outcomeOf(err error) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Code != ErrCodeInternalError {
		return svcErr.Code
	}
	return metrics.OutcomeError
}
