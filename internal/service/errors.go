package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeInvalidRequest    = "invalid_request"
	ErrCodeInvalidCard       = "invalid_card"
	ErrCodeInvalidAmount     = "invalid_amount"
	ErrCodeAmbiguousCard     = "ambiguous_card"
	ErrCodeFutureTransaction = "future_transaction"
	ErrCodeUserNotFound      = "user_not_found"
	ErrCodeInternalError     = "internal_error"
)

func internalError(action string, err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: "failed to " + action,
		Err:     err,
	}
}
