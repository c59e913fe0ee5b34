package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benx421/payment-gateway/balance/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) func(http.Handler) http.Handler {
	t.Helper()
	doc, err := api.GetSwagger()
	require.NoError(t, err)
	mw, err := OpenAPIValidator(doc, testLogger())
	require.NoError(t, err)
	return mw
}

func TestOpenAPIValidator(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid balance update batch",
			method:     http.MethodPost,
			path:       balanceUpdatesPath,
			body:       `[{"credit_card_number":"4111111111111111","transaction_amount":12.5,"transaction_time":"2024-03-01T10:00:00Z"}]`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing transaction time",
			method:     http.MethodPost,
			path:       balanceUpdatesPath,
			body:       `[{"credit_card_number":"4111111111111111","transaction_amount":12.5}]`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "amount is a string",
			method:     http.MethodPost,
			path:       balanceUpdatesPath,
			body:       `[{"credit_card_number":"4111111111111111","transaction_amount":"12.5","transaction_time":"2024-03-01T10:00:00Z"}]`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "card number with letters",
			method:     http.MethodGet,
			path:       "/api/v1/cards/4111abc/owner",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "valid owner lookup",
			method:     http.MethodGet,
			path:       "/api/v1/cards/4111111111111111/owner",
			wantStatus: http.StatusOK,
		},
		{
			name:       "route outside the document passes through",
			method:     http.MethodGet,
			path:       "/metrics",
			wantStatus: http.StatusOK,
		},
	}

	mw := newValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()

			mw(testHandler(http.StatusOK, `{}`)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusBadRequest {
				assert.Contains(t, rec.Body.String(), `"error":"invalid_request"`)
			}
		})
	}
}
