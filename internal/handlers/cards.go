package handlers

import (
	"net/http"

	"github.com/benx421/payment-gateway/balance/internal/api"
	"github.com/benx421/payment-gateway/balance/internal/service"
)

// AddCard handles POST /api/v1/cards
func (h *Handler) AddCard(w http.ResponseWriter, r *http.Request) {
	var req api.AddCardRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	card, err := h.cardService.AddCard(r.Context(), req.UserID, req.IssuanceBank, req.CardNumber)
	if err != nil {
		h.writeServiceError(w, err, "add card")
		return
	}

	writeJSON(w, http.StatusOK, api.CreatedResponse{ID: card.ID})
}

// ListCards handles GET /api/v1/users/{userId}/cards
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, service.ErrCodeInvalidRequest, err.Error())
		return
	}

	cards, err := h.cardService.ListCards(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err, "list cards")
		return
	}

	views := make([]api.CardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, api.CardView{IssuanceBank: c.IssuanceBank, Number: c.Number})
	}
	writeJSON(w, http.StatusOK, views)
}

// FindCardOwner handles GET /api/v1/cards/{cardNumber}/owner
func (h *Handler) FindCardOwner(w http.ResponseWriter, r *http.Request) {
	owner, err := h.cardService.FindOwner(r.Context(), r.PathValue("cardNumber"))
	if err != nil {
		h.writeServiceError(w, err, "find card owner")
		return
	}

	writeJSON(w, http.StatusOK, api.OwnerResponse{UserID: owner})
}

// GetBalanceHistory handles GET /api/v1/cards/{cardNumber}/balance-history
func (h *Handler) GetBalanceHistory(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, service.ErrCodeInvalidRequest, err.Error())
		return
	}

	history, err := h.cardService.BalanceHistory(r.Context(), r.PathValue("cardNumber"), from, to)
	if err != nil {
		h.writeServiceError(w, err, "load balance history")
		return
	}

	snapshots := make([]api.BalanceSnapshot, 0, len(history))
	for _, s := range history {
		snapshots = append(snapshots, api.BalanceSnapshot{Date: s.Day, Balance: s.Balance})
	}
	writeJSON(w, http.StatusOK, snapshots)
}
