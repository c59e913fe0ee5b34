package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/benx421/payment-gateway/balance/internal/api"
	"github.com/benx421/payment-gateway/balance/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Nothing useful to do if write fails
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, api.ErrorResponse{Error: code, Message: message})
}

func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, service.ErrCodeInvalidRequest, "malformed JSON body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, service.ErrCodeInvalidRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "email":
			msgs = append(msgs, fe.Field()+" must be a valid email address")
		case "numeric":
			msgs = append(msgs, fe.Field()+" must contain only digits")
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s violates %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

func statusForCode(code string) int {
	switch code {
	case service.ErrCodeInvalidRequest,
		service.ErrCodeInvalidCard,
		service.ErrCodeInvalidAmount,
		service.ErrCodeAmbiguousCard,
		service.ErrCodeFutureTransaction:
		return http.StatusBadRequest
	case service.ErrCodeUserNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// serviceErrorResponse maps err to a status and body, logging anything
// that is not a known business error
func (h *Handler) serviceErrorResponse(err error, action string) (int, api.ErrorResponse) {
	svcErr := extractServiceError(err)
	if svcErr == nil || statusForCode(svcErr.Code) == http.StatusInternalServerError {
		h.logger.Error(action+" failed", "error", err)
		return http.StatusInternalServerError, api.ErrorResponse{
			Error:   service.ErrCodeInternalError,
			Message: "An internal error occurred",
		}
	}
	return statusForCode(svcErr.Code), api.ErrorResponse{Error: svcErr.Code, Message: svcErr.Message}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, action string) {
	status, body := h.serviceErrorResponse(err, action)
	writeJSON(w, status, body)
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

func parseUserID(r *http.Request) (uuid.UUID, error) {
	var userID uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "userId", r.PathValue("userId"), &userID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid format for parameter userId: %w", err)
	}
	return userID, nil
}

// parseDateRange reads the optional from and to query parameters
func parseDateRange(r *http.Request) (from, to *civil.Date, err error) {
	var fromParam, toParam *openapi_types.Date
	query := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "from", query, &fromParam); err != nil {
		return nil, nil, fmt.Errorf("invalid format for parameter from: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "to", query, &toParam); err != nil {
		return nil, nil, fmt.Errorf("invalid format for parameter to: %w", err)
	}

	if fromParam != nil {
		d := civil.DateOf(fromParam.Time)
		from = &d
	}
	if toParam != nil {
		d := civil.DateOf(toParam.Time)
		to = &d
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, errors.New("to must not be before from")
	}
	return from, to, nil
}
