package handlers

import (
	"net/http"

	"github.com/benx421/payment-gateway/balance/internal/api"
	"github.com/benx421/payment-gateway/balance/internal/service"
)

// CreateUser handles POST /api/v1/users
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req api.CreateUserRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req.Name, req.Email)
	if err != nil {
		h.writeServiceError(w, err, "create user")
		return
	}

	writeJSON(w, http.StatusOK, api.CreatedResponse{ID: user.ID})
}

// DeleteUser handles DELETE /api/v1/users/{userId}
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, service.ErrCodeInvalidRequest, err.Error())
		return
	}

	if err := h.userService.DeleteUser(r.Context(), userID); err != nil {
		h.writeServiceError(w, err, "delete user")
		return
	}

	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "user deleted"})
}
