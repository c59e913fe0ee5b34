package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/benx421/payment-gateway/balance/internal/api"
	"github.com/benx421/payment-gateway/balance/internal/models"
	"github.com/benx421/payment-gateway/balance/internal/service"
)

// UpdateBalances handles POST /api/v1/balance-updates.
//
// A malformed item rejects the whole batch before anything is applied.
// A business failure reports the failing index together with the number of
// transactions already committed.
func (h *Handler) UpdateBalances(w http.ResponseWriter, r *http.Request) {
	var items []api.BalanceUpdate
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&items); err != nil {
		writeError(w, http.StatusBadRequest, service.ErrCodeInvalidRequest, "body must be a JSON array of balance updates")
		return
	}

	txns := make([]models.Transaction, 0, len(items))
	for i := range items {
		if err := h.validate.Struct(&items[i]); err != nil {
			writeJSON(w, http.StatusBadRequest, api.BatchErrorResponse{
				Error:       service.ErrCodeInvalidRequest,
				Message:     fmt.Sprintf("item %d: %s", i, validationMessage(err)),
				FailedIndex: i,
			})
			return
		}
		txns = append(txns, models.Transaction{
			CardNumber: items[i].CreditCardNumber,
			Amount:     *items[i].TransactionAmount,
			OccurredAt: items[i].TransactionTime,
		})
	}

	applied, err := h.balanceService.UpdateBalances(r.Context(), txns)
	if err != nil {
		status, body := h.serviceErrorResponse(err, "update balances")
		h.logger.Info("balance update batch stopped",
			"failed_index", applied,
			"applied", applied,
			"code", body.Error,
		)
		writeJSON(w, status, api.BatchErrorResponse{
			Error:       body.Error,
			Message:     body.Message,
			FailedIndex: applied,
			Applied:     applied,
		})
		return
	}

	writeJSON(w, http.StatusOK, api.BalanceUpdateResponse{Status: "ok", Applied: applied})
}
