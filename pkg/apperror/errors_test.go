package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("WAL_001", "Solde insuffisant", http.StatusPaymentRequired),
			expected: "[WAL_001] Solde insuffisant",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("debit: %w", ErrInsufficientFunds(500, 1000))

	assert.True(t, errors.Is(err, ErrInsufficientFunds(0, 0)))
	assert.False(t, errors.Is(err, ErrWalletNotFound()))
}

func TestErrInsufficientFunds_Details(t *testing.T) {
	err := ErrInsufficientFunds(500, 1000)

	assert.Equal(t, "WAL_001", err.Code)
	assert.Equal(t, http.StatusPaymentRequired, err.HTTPStatus)
	assert.Equal(t, int64(500), err.Details["current_balance"])
	assert.Equal(t, int64(1000), err.Details["required"])
}

func TestErrorCatalog(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidToken", ErrInvalidToken(), "SEC_001", 401},
		{"InvalidSignature", ErrInvalidSignature(), "SEC_002", 401},
		{"InvalidServiceKey", ErrInvalidServiceKey(), "SEC_003", 401},
		{"NonceUsed", ErrNonceUsed(), "SEC_004", 409},
		{"InvalidAmount", ErrInvalidAmount(), "PAY_002", 400},
		{"NotFound", ErrNotFound("transaction"), "PAY_004", 404},
		{"WalletNotFound", ErrWalletNotFound(), "WAL_002", 404},
		{"RefundExceedsSpent", ErrRefundExceedsSpent(), "WAL_003", 400},
		{"ProviderNotSupported", ErrProviderNotSupported(), "GW_001", 400},
		{"ProviderNotConfigured", ErrProviderNotConfigured(), "GW_002", 503},
		{"Gateway", ErrGateway("boom"), "GW_003", 502},
		{"InvalidTransition", ErrInvalidTransition("complete", "echoue"), "TXN_001", 409},
		{"Forbidden", ErrForbidden(), "TXN_002", 403},
		{"ReleaseExceedsHeld", ErrEscrowReleaseExceedsHeld(), "ESC_001", 400},
		{"EscrowExists", ErrEscrowExists(), "ESC_002", 409},
		{"EscrowState", ErrEscrowState("cloture"), "ESC_003", 409},
		{"RateLimit", ErrRateLimitExceeded(), "RATE_001", 429},
		{"Database", ErrDatabaseError(errors.New("x")), "SYS_001", 500},
		{"Encryption", ErrEncryptionFailure(errors.New("x")), "SYS_003", 500},
		{"PayloadTooLarge", ErrPayloadTooLarge(), "SYS_004", 413},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestProviderMessages(t *testing.T) {
	assert.Equal(t, "Fournisseur de paiement non supporté", ErrProviderNotSupported().Message)
	assert.Equal(t, "Transition complete -> echoue not allowed", ErrInvalidTransition("complete", "echoue").Message)
}
