package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/benx421/payment-gateway/balance/internal/config"
	"github.com/benx421/payment-gateway/balance/internal/db"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testServer runs the full middleware chain over a sqlmock database
type testServer struct {
	handler http.Handler
	mock    sqlmock.Sqlmock
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	database := db.NewTestDB(sqlDB)

	ctx, cancel := context.WithCancel(context.Background())
	cfg := &config.Config{App: config.AppConfig{RateLimitRPS: 0}}

	router, err := NewRouter(ctx, database, cfg, testLogger())
	require.NoError(t, err)

	t.Cleanup(func() {
		cancel()
		require.NoError(t, mock.ExpectationsWereMet(), "unmet sql expectations")
		_ = database.Close()
	})

	return &testServer{handler: router, mock: mock}
}

func (ts *testServer) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	ts := newTestServer(t)
	ts.mock.ExpectPing()

	rec := ts.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_HealthDatabaseDown(t *testing.T) {
	ts := newTestServer(t)
	ts.mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	rec := ts.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_DocsAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/docs/openapi", "", nil).Code)

	rec := ts.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "balance_http_requests_total")
}

func TestRouter_SchemaViolationNeverReachesDatabase(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/v1/balance-updates",
		`[{"credit_card_number":"4111111111111111","transaction_amount":"lots"}]`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_request")
}

func TestRouter_BalanceUpdate(t *testing.T) {
	ts := newTestServer(t)
	cardID, userID := uuid.New(), uuid.New()
	now := time.Now().UTC()

	ts.mock.ExpectBegin()
	ts.mock.ExpectQuery(regexp.QuoteMeta("FROM cards WHERE number = $1 ORDER BY created_at FOR UPDATE")).
		WithArgs(testCard).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "issuance_bank", "number", "created_at"}).
			AddRow(cardID.String(), userID.String(), "Acme", testCard, now))
	ts.mock.ExpectQuery(regexp.QuoteMeta("FROM balance_snapshots")).
		WithArgs(cardID).
		WillReturnRows(sqlmock.NewRows([]string{"card_id", "day", "balance"}).
			AddRow(cardID.String(), now.Truncate(24*time.Hour), 0.0))
	ts.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO balance_snapshots")).
		WithArgs(cardID, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	ts.mock.ExpectCommit()

	occurred := now.Add(-time.Minute).Format(time.RFC3339)
	rec := ts.do(http.MethodPost, "/api/v1/balance-updates",
		`[{"credit_card_number":"`+testCard+`","transaction_amount":42,"transaction_time":"`+occurred+`"}]`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","applied":1}`, rec.Body.String())
}

func TestRouter_BalanceUpdateReplayedByIdempotencyKey(t *testing.T) {
	ts := newTestServer(t)

	ts.mock.ExpectQuery(regexp.QuoteMeta("FROM idempotency_keys")).
		WithArgs("batch-7", "/api/v1/balance-updates").
		WillReturnRows(sqlmock.NewRows([]string{"key", "request_path", "response_status", "response_body", "created_at"}).
			AddRow("batch-7", "/api/v1/balance-updates", 200, `{"status":"ok","applied":3}`, time.Now()))

	rec := ts.do(http.MethodPost, "/api/v1/balance-updates",
		`[{"credit_card_number":"4111111111111111","transaction_amount":1,"transaction_time":"2024-03-01T10:00:00Z"}]`,
		map[string]string{"Idempotency-Key": "batch-7"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("X-Idempotent-Replayed"))
	assert.JSONEq(t, `{"status":"ok","applied":3}`, rec.Body.String())
}
