// Package handlers implements HTTP handlers for the balance API.
package handlers

import (
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/benx421/payment-gateway/balance/internal/service"
	"github.com/go-playground/validator/v10"
)

// Handler serves every API endpoint
type Handler struct {
	userService    service.UserManager
	cardService    service.CardManager
	balanceService service.BalanceUpdater
	healthChecker  service.HealthChecker
	validate       *validator.Validate
	logger         *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	userService service.UserManager,
	cardService service.CardManager,
	balanceService service.BalanceUpdater,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		userService:    userService,
		cardService:    cardService,
		balanceService: balanceService,
		healthChecker:  healthChecker,
		validate:       validate,
		logger:         logger,
	}
}

// RegisterRoutes mounts the API endpoints on mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.GetHealth)

	mux.HandleFunc("POST /api/v1/users", h.CreateUser)
	mux.HandleFunc("DELETE /api/v1/users/{userId}", h.DeleteUser)
	mux.HandleFunc("GET /api/v1/users/{userId}/cards", h.ListCards)

	mux.HandleFunc("POST /api/v1/cards", h.AddCard)
	mux.HandleFunc("GET /api/v1/cards/{cardNumber}/owner", h.FindCardOwner)
	mux.HandleFunc("GET /api/v1/cards/{cardNumber}/balance-history", h.GetBalanceHistory)

	mux.HandleFunc("POST /api/v1/balance-updates", h.UpdateBalances)
}
