package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/benx421/payment-gateway/balance/internal/models"
	"github.com/benx421/payment-gateway/balance/internal/repository/mocks"
	"github.com/benx421/payment-gateway/balance/internal/timeline"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.March, 1, 15, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func day(offset int) civil.Date {
	return timeline.DayOf(testNow).AddDays(offset)
}

const validCard = "4111111111111111"

func TestCardService_PerformAddCard(t *testing.T) {
	t.Run("seeds zero balance for today", func(t *testing.T) {
		mockUserRepo := mocks.NewMockUserRepository(t)
		mockCardRepo := mocks.NewMockCardRepository(t)
		service := NewCardService(nil, fixedClock)
		ctx := context.Background()
		userID := uuid.New()

		mockUserRepo.On("FindByID", ctx, userID).Return(&models.User{ID: userID}, nil)
		mockCardRepo.On("Create", ctx, mock.AnythingOfType("*models.Card")).Return(nil)
		mockCardRepo.On("SaveSnapshots", ctx, mock.AnythingOfType("uuid.UUID"),
			timeline.Timeline{{Day: day(0), Balance: 0}}).Return(nil)

		card, err := service.performAddCard(ctx, mockUserRepo, mockCardRepo, userID, "Acme", validCard)

		require.NoError(t, err)
		assert.Equal(t, userID, card.UserID)
		assert.Equal(t, validCard, card.Number)
		assert.Equal(t, timeline.Timeline{{Day: day(0), Balance: 0}}, card.BalanceHistory)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUserRepo := mocks.NewMockUserRepository(t)
		mockCardRepo := mocks.NewMockCardRepository(t)
		service := NewCardService(nil, fixedClock)
		ctx := context.Background()
		userID := uuid.New()

		mockUserRepo.On("FindByID", ctx, userID).Return(nil, models.ErrNotFound)

		card, err := service.performAddCard(ctx, mockUserRepo, mockCardRepo, userID, "Acme", validCard)

		assert.Nil(t, card)
		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeUserNotFound, svcErr.Code)
		}
	})
}

func TestCardService_AddCard_InvalidNumber(t *testing.T) {
	service := NewCardService(nil, fixedClock)

	card, err := service.AddCard(context.Background(), uuid.New(), "Acme", "4111111111111112")

	assert.Nil(t, card)
	var svcErr *ServiceError
	if assert.ErrorAs(t, err, &svcErr) {
		assert.Equal(t, ErrCodeInvalidCard, svcErr.Code)
	}
}

func TestCardService_ListCards(t *testing.T) {
	t.Run("returns owned cards", func(t *testing.T) {
		mockUserRepo := mocks.NewMockUserRepository(t)
		mockCardRepo := mocks.NewMockCardRepository(t)
		service := NewCardService(nil, fixedClock)
		ctx := context.Background()
		userID := uuid.New()
		cards := []models.Card{{ID: uuid.New(), UserID: userID, Number: validCard}}

		mockUserRepo.On("FindByID", ctx, userID).Return(&models.User{ID: userID}, nil)
		mockCardRepo.On("FindByUserID", ctx, userID).Return(cards, nil)

		result, err := service.listCards(ctx, mockUserRepo, mockCardRepo, userID)

		assert.NoError(t, err)
		assert.Equal(t, cards, result)
	})

	t.Run("user lookup failure", func(t *testing.T) {
		mockUserRepo := mocks.NewMockUserRepository(t)
		mockCardRepo := mocks.NewMockCardRepository(t)
		service := NewCardService(nil, fixedClock)
		ctx := context.Background()
		userID := uuid.New()

		mockUserRepo.On("FindByID", ctx, userID).Return(nil, errors.New("connection reset"))

		result, err := service.listCards(ctx, mockUserRepo, mockCardRepo, userID)

		assert.Nil(t, result)
		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeInternalError, svcErr.Code)
		}
	})
}

func TestCardService_BalanceHistory(t *testing.T) {
	cardID := uuid.New()
	stored := timeline.Timeline{
		{Day: day(0), Balance: 30},
		{Day: day(-1), Balance: 20},
		{Day: day(-2), Balance: 10},
	}

	t.Run("full history", func(t *testing.T) {
		mockCardRepo := mocks.NewMockCardRepository(t)
		service := NewCardService(nil, fixedClock)
		ctx := context.Background()

		mockCardRepo.On("FindByNumber", ctx, validCard).Return([]models.Card{{ID: cardID}}, nil)
		mockCardRepo.On("LoadBalanceHistory", ctx, cardID).Return(stored, nil)

		history, err := service.balanceHistory(ctx, mockCardRepo, validCard, nil, nil)

		assert.NoError(t, err)
		assert.Equal(t, stored, history)
	})

	t.Run("bounded range", func(t *testing.T) {
		mockCardRepo := mocks.NewMockCardRepository(t)
		service := NewCardService(nil, fixedClock)
		ctx := context.Background()
		from, to := day(-1), day(-1)

		mockCardRepo.On("FindByNumber", ctx, validCard).Return([]models.Card{{ID: cardID}}, nil)
		mockCardRepo.On("LoadBalanceHistory", ctx, cardID).Return(stored, nil)

		history, err := service.balanceHistory(ctx, mockCardRepo, validCard, &from, &to)

		assert.NoError(t, err)
		assert.Equal(t, timeline.Timeline{{Day: day(-1), Balance: 20}}, history)
	})

	t.Run("ambiguous number", func(t *testing.T) {
		mockCardRepo := mocks.NewMockCardRepository(t)
		service := NewCardService(nil, fixedClock)
		ctx := context.Background()

		mockCardRepo.On("FindByNumber", ctx, validCard).
			Return([]models.Card{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

		history, err := service.balanceHistory(ctx, mockCardRepo, validCard, nil, nil)

		assert.Nil(t, history)
		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeAmbiguousCard, svcErr.Code)
		}
	})
}

func TestResolveCard(t *testing.T) {
	tests := []struct {
		name    string
		cards   []models.Card
		wantErr bool
	}{
		{name: "no match", cards: nil, wantErr: true},
		{name: "single match", cards: []models.Card{{Number: validCard}}},
		{name: "two matches", cards: []models.Card{{Number: validCard}, {Number: validCard}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := resolveCard(tt.cards)
			if tt.wantErr {
				var svcErr *ServiceError
				assert.ErrorAs(t, err, &svcErr)
				assert.Equal(t, ErrCodeAmbiguousCard, svcErr.Code)
				assert.Nil(t, card)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, validCard, card.Number)
		})
	}
}
