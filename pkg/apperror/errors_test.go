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
			appErr:   New("PAY_001", "Insufficient funds", http.StatusPaymentRequired),
			expected: "[PAY_001] Insufficient funds",
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
	assert.Nil(t, New("PAY_001", "test", http.StatusBadRequest).Unwrap())
}

func TestAppError_WithDetails(t *testing.T) {
	err := ErrInsufficientFunds().WithDetails(map[string]any{"balance": "10.00"})
	assert.Equal(t, "10.00", err.Details["balance"])
	assert.Equal(t, "PAY_001", err.Code)
}

func TestCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidAccessKey", ErrInvalidAccessKey(), "SEC_001", 401},
		{"InvalidSignature", ErrInvalidSignature(), "SEC_002", 401},
		{"TimestampExpired", ErrTimestampExpired(), "SEC_003", 403},
		{"NonceUsed", ErrNonceUsed(), "SEC_004", 403},
		{"InsufficientFunds", ErrInsufficientFunds(), "PAY_001", 402},
		{"InvalidAmount", ErrInvalidAmount(), "PAY_002", 400},
		{"NotFound", ErrNotFound("Cart"), "PAY_004", 404},
		{"WalletInactive", ErrWalletInactive(), "WAL_001", 403},
		{"EmptyCart", ErrEmptyCart(), "CHK_001", 422},
		{"InvalidReference", ErrInvalidReference(), "TOP_001", 404},
		{"Conflict", ErrConflict("already settled"), "CON_001", 409},
		{"InvalidToken", ErrInvalidToken(), "AUTH_003", 401},
		{"PartnerSuspended", ErrPartnerSuspended(), "AUTH_004", 403},
		{"RateLimit", ErrRateLimitExceeded(), "RATE_001", 429},
		{"Validation", Validation("amount below minimum"), "VAL_001", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))
	assert.False(t, IsRetryable(dbErr))

	transient := ErrTransientStore(inner)
	assert.Equal(t, "SYS_002", transient.Code)
	assert.Equal(t, 503, transient.HTTPStatus)
	assert.True(t, IsRetryable(transient))
	assert.True(t, IsRetryable(fmt.Errorf("outer: %w", transient)))

	encErr := ErrEncryptionFailure(inner)
	assert.Equal(t, "SYS_003", encErr.Code)
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("settle: %w", ErrInsufficientFunds())
	assert.True(t, HasCode(err, "PAY_001"))
	assert.False(t, HasCode(err, "PAY_002"))
	assert.False(t, HasCode(errors.New("plain"), "PAY_001"))
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("Order")
	assert.Contains(t, err.Message, "Order")
}
