package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string         `json:"error_code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another *AppError by code so callers can use errors.Is with the
// constructors below.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Security & Authentication (SEC) ----

func ErrInvalidToken() *AppError {
	return New("SEC_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("SEC_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrInvalidServiceKey() *AppError {
	return New("SEC_003", "Invalid service key", http.StatusUnauthorized)
}

func ErrNonceUsed() *AppError {
	return New("SEC_004", "Event has already been processed", http.StatusConflict)
}

// ---- Payment validation (PAY) ----

func ErrInvalidAmount() *AppError {
	return New("PAY_002", "Invalid amount", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("PAY_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// Validation returns a PAY_002-style validation error.
func Validation(message string) *AppError {
	return New("PAY_002", message, http.StatusBadRequest)
}

// ---- Wallet ledger (WAL) ----

// ErrInsufficientFunds reports the balance observed under lock and the amount required.
func ErrInsufficientFunds(current, required int64) *AppError {
	e := New("WAL_001", "Solde insuffisant", http.StatusPaymentRequired)
	e.Details = map[string]any{
		"current_balance": current,
		"required":        required,
	}
	return e
}

func ErrWalletNotFound() *AppError {
	return New("WAL_002", "Wallet not found", http.StatusNotFound)
}

func ErrRefundExceedsSpent() *AppError {
	return New("WAL_003", "Refund amount exceeds total spent", http.StatusBadRequest)
}

// ---- Gateway (GW) ----

func ErrProviderNotSupported() *AppError {
	return New("GW_001", "Fournisseur de paiement non supporté", http.StatusBadRequest)
}

func ErrProviderNotConfigured() *AppError {
	return New("GW_002", "Fournisseur de paiement non configuré", http.StatusServiceUnavailable)
}

// ErrGateway carries the user-facing message returned by the dispatcher.
func ErrGateway(message string) *AppError {
	return New("GW_003", message, http.StatusBadGateway)
}

// ---- Transactions (TXN) ----

func ErrInvalidTransition(from, to string) *AppError {
	return New("TXN_001", fmt.Sprintf("Transition %s -> %s not allowed", from, to), http.StatusConflict)
}

func ErrForbidden() *AppError {
	return New("TXN_002", "Operation not allowed for this user", http.StatusForbidden)
}

// ---- Escrow (ESC) ----

func ErrEscrowReleaseExceedsHeld() *AppError {
	return New("ESC_001", "Release amount exceeds funds held in escrow", http.StatusBadRequest)
}

func ErrEscrowExists() *AppError {
	return New("ESC_002", "Escrow account already exists for contract", http.StatusConflict)
}

func ErrEscrowState(status string) *AppError {
	return New("ESC_003", fmt.Sprintf("Escrow account is %s", status), http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrPayloadTooLarge() *AppError {
	return New("SYS_004", "Request body too large", http.StatusRequestEntityTooLarge)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
