package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/benx421/payment-gateway/balance/internal/api"
	"github.com/benx421/payment-gateway/balance/internal/config"
	"github.com/benx421/payment-gateway/balance/internal/db"
	"github.com/benx421/payment-gateway/balance/internal/middleware"
	"github.com/benx421/payment-gateway/balance/internal/repository"
	"github.com/benx421/payment-gateway/balance/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const visitorTTL = 3 * time.Minute

// NewRouter creates and configures the HTTP router with all routes and middleware.
// Background work started here stops when ctx is done.
func NewRouter(
	ctx context.Context,
	database *db.DB,
	cfg *config.Config,
	logger *slog.Logger,
) (http.Handler, error) {
	userService := service.NewUserService(database)
	cardService := service.NewCardService(database, time.Now)
	balanceService := service.NewBalanceService(database, time.Now)

	handler := NewHandler(userService, cardService, balanceService, database, logger)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	handler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := middleware.OpenAPIValidator(doc, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create request validator: %w", err)
	}

	var finalHandler http.Handler = mux

	finalHandler = validator(finalHandler)

	idempotencyRepo := repository.NewIdempotencyRepository(database)
	finalHandler = middleware.Idempotency(idempotencyRepo, logger)(finalHandler)

	if cfg.App.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(cfg.App.RateLimitRPS, cfg.App.RateLimitBurst, visitorTTL)
		go limiter.Run(time.Minute, ctx.Done())
		finalHandler = middleware.RateLimit(limiter)(finalHandler)
	}
	finalHandler = middleware.RequestLogging(logger)(finalHandler)

	return finalHandler, nil
}
