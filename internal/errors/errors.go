// Package errors provides custom error types for the WealthGuard API.
// All engine-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Profile errors.
var (
	ErrProfileNotFound = &AppError{Code: "PROFILE_NOT_FOUND", Message: "Profile document does not exist", StatusCode: http.StatusNotFound}
	ErrLoadFailed      = &AppError{Code: "LOAD_FAILED", Message: "Failed to load portfolio from the cloud and no local copy exists", StatusCode: http.StatusServiceUnavailable}
	ErrSaveFailed      = &AppError{Code: "SAVE_FAILED", Message: "Failed to save portfolio to the cloud", StatusCode: http.StatusBadGateway}
)

// Spending errors.
var (
	ErrSpendingWriteFailed = &AppError{Code: "SPENDING_WRITE_FAILED", Message: "Failed to save the transaction to the cloud", StatusCode: http.StatusBadGateway}
	ErrSpendingQueryFailed = &AppError{Code: "SPENDING_QUERY_FAILED", Message: "Failed to load transactions for the selected range", StatusCode: http.StatusBadGateway}
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
)

// Ledger transport errors.
var (
	ErrLedgerUnreachable = &AppError{Code: "LEDGER_UNREACHABLE", Message: "The remote ledger could not be reached", StatusCode: http.StatusBadGateway}
)
