package service

import (
	"context"
	"errors"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/benx421/payment-gateway/balance/internal/db"
	"github.com/benx421/payment-gateway/balance/internal/models"
	"github.com/benx421/payment-gateway/balance/internal/repository/mocks"
	"github.com/benx421/payment-gateway/balance/internal/timeline"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBalanceService_PerformUpdate(t *testing.T) {
	cardID := uuid.New()
	card := []models.Card{{ID: cardID, Number: validCard}}

	t.Run("same day deposit updates today only", func(t *testing.T) {
		mockCardRepo := mocks.NewMockCardRepository(t)
		service := NewBalanceService(nil, fixedClock)
		ctx := context.Background()

		mockCardRepo.On("FindByNumberForUpdate", ctx, validCard).Return(card, nil)
		mockCardRepo.On("LoadBalanceHistory", ctx, cardID).
			Return(timeline.Timeline{{Day: day(0), Balance: 0}}, nil)
		mockCardRepo.On("SaveSnapshots", ctx, cardID,
			timeline.Timeline{{Day: day(0), Balance: 100}}).Return(nil)

		err := service.performUpdate(ctx, mockCardRepo, models.Transaction{
			CardNumber: validCard,
			Amount:     100,
			OccurredAt: testNow.Add(-time.Hour),
		}, testNow)

		assert.NoError(t, err)
	})

	t.Run("stale history is carried to today before applying", func(t *testing.T) {
		mockCardRepo := mocks.NewMockCardRepository(t)
		service := NewBalanceService(nil, fixedClock)
		ctx := context.Background()

		mockCardRepo.On("FindByNumberForUpdate", ctx, validCard).Return(card, nil)
		mockCardRepo.On("LoadBalanceHistory", ctx, cardID).
			Return(timeline.Timeline{{Day: day(-2), Balance: 50}}, nil)
		mockCardRepo.On("SaveSnapshots", ctx, cardID, timeline.Timeline{
			{Day: day(0), Balance: 40},
			{Day: day(-1), Balance: 40},
			{Day: day(-2), Balance: 40},
		}).Return(nil)

		err := service.performUpdate(ctx, mockCardRepo, models.Transaction{
			CardNumber: validCard,
			Amount:     -10,
			OccurredAt: testNow.AddDate(0, 0, -2),
		}, testNow)

		assert.NoError(t, err)
	})

	t.Run("ambiguous card writes nothing", func(t *testing.T) {
		mockCardRepo := mocks.NewMockCardRepository(t)
		service := NewBalanceService(nil, fixedClock)
		ctx := context.Background()

		mockCardRepo.On("FindByNumberForUpdate", ctx, validCard).Return([]models.Card{}, nil)

		err := service.performUpdate(ctx, mockCardRepo, models.Transaction{
			CardNumber: validCard,
			Amount:     10,
			OccurredAt: testNow,
		}, testNow)

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeAmbiguousCard, svcErr.Code)
		}
		mockCardRepo.AssertNotCalled(t, "SaveSnapshots", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("save failure", func(t *testing.T) {
		mockCardRepo := mocks.NewMockCardRepository(t)
		service := NewBalanceService(nil, fixedClock)
		ctx := context.Background()

		mockCardRepo.On("FindByNumberForUpdate", ctx, validCard).Return(card, nil)
		mockCardRepo.On("LoadBalanceHistory", ctx, cardID).
			Return(timeline.Timeline{{Day: day(0), Balance: 0}}, nil)
		mockCardRepo.On("SaveSnapshots", ctx, cardID, mock.Anything).Return(errors.New("disk full"))

		err := service.performUpdate(ctx, mockCardRepo, models.Transaction{
			CardNumber: validCard,
			Amount:     10,
			OccurredAt: testNow,
		}, testNow)

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeInternalError, svcErr.Code)
		}
	})
}

// Validation runs before any database work, so a nil database is never touched.
func TestBalanceService_UpdateBalances_RejectsBeforeStorage(t *testing.T) {
	tests := []struct {
		name     string
		txn      models.Transaction
		wantCode string
	}{
		{
			name:     "future transaction",
			txn:      models.Transaction{CardNumber: validCard, Amount: 10, OccurredAt: testNow.Add(time.Second)},
			wantCode: ErrCodeFutureTransaction,
		},
		{
			name:     "next day",
			txn:      models.Transaction{CardNumber: validCard, Amount: 10, OccurredAt: testNow.AddDate(0, 0, 1)},
			wantCode: ErrCodeFutureTransaction,
		},
		{
			name:     "missing time",
			txn:      models.Transaction{CardNumber: validCard, Amount: 10},
			wantCode: ErrCodeInvalidRequest,
		},
		{
			name:     "non finite amount",
			txn:      models.Transaction{CardNumber: validCard, Amount: math.NaN(), OccurredAt: testNow},
			wantCode: ErrCodeInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewBalanceService(nil, fixedClock)

			applied, err := service.UpdateBalances(context.Background(), []models.Transaction{tt.txn})

			assert.Equal(t, 0, applied)
			var svcErr *ServiceError
			if assert.ErrorAs(t, err, &svcErr) {
				assert.Equal(t, tt.wantCode, svcErr.Code)
			}
		})
	}
}

func TestBalanceService_UpdateBalances_Empty(t *testing.T) {
	service := NewBalanceService(nil, fixedClock)

	applied, err := service.UpdateBalances(context.Background(), nil)

	assert.NoError(t, err)
	assert.Equal(t, 0, applied)
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, ErrCodeAmbiguousCard, outcomeOf(&ServiceError{Code: ErrCodeAmbiguousCard}))
	assert.Equal(t, "error", outcomeOf(internalError("x", errors.New("boom"))))
	assert.Equal(t, "error", outcomeOf(errors.New("plain")))
}

// A batch commits each transaction on its own and stops at the first failure.
// Transactions committed before the failure stay committed and later ones are
// never started.
func TestBalanceService_UpdateBalances_StopsAtFirstFailure(t *testing.T) {
	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	database := db.NewTestDB(sqlDB)
	t.Cleanup(func() { _ = database.Close() })

	cardID, userID := uuid.New(), uuid.New()
	const unknownCard = "5555555555554444"
	cardColumns := []string{"id", "user_id", "issuance_bank", "number", "created_at"}

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery(regexp.QuoteMeta("FROM cards WHERE number = $1 ORDER BY created_at FOR UPDATE")).
		WithArgs(validCard).
		WillReturnRows(sqlmock.NewRows(cardColumns).
			AddRow(cardID.String(), userID.String(), "Acme", validCard, testNow))
	sqlMock.ExpectQuery(regexp.QuoteMeta("FROM balance_snapshots")).
		WithArgs(cardID).
		WillReturnRows(sqlmock.NewRows([]string{"card_id", "day", "balance"}).
			AddRow(cardID.String(), time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), 0.0))
	sqlMock.ExpectExec(regexp.QuoteMeta("INSERT INTO balance_snapshots")).
		WithArgs(cardID, `{"2024-03-01"}`, `{25}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery(regexp.QuoteMeta("FROM cards WHERE number = $1 ORDER BY created_at FOR UPDATE")).
		WithArgs(unknownCard).
		WillReturnRows(sqlmock.NewRows(cardColumns))
	sqlMock.ExpectRollback()

	service := NewBalanceService(database, fixedClock)
	occurred := testNow.Add(-time.Hour)

	applied, err := service.UpdateBalances(context.Background(), []models.Transaction{
		{CardNumber: validCard, Amount: 25, OccurredAt: occurred},
		{CardNumber: unknownCard, Amount: 10, OccurredAt: occurred},
		{CardNumber: validCard, Amount: 99, OccurredAt: occurred},
	})

	assert.Equal(t, 1, applied)
	var svcErr *ServiceError
	if assert.ErrorAs(t, err, &svcErr) {
		assert.Equal(t, ErrCodeAmbiguousCard, svcErr.Code)
	}
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
