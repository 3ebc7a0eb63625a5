package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
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

// HasCode reports whether any AppError in err's chain carries code.
func HasCode(err error, code string) bool {
	for err != nil {
		var appErr *AppError
		if !errors.As(err, &appErr) {
			return false
		}
		if appErr.Code == code {
			return true
		}
		err = appErr.Err
	}
	return false
}

// Error codes referenced outside this package.
const (
	CodeMalformedToken        = "TOK_001"
	CodeKeyNotFound           = "TOK_002"
	CodeSignatureInvalid      = "TOK_003"
	CodeClaimMissing          = "TOK_004"
	CodeVerificationExhausted = "TOK_005"
	CodeCustomerNotFound      = "PAY_001"
	CodeValidation            = "PAY_002"
	CodeSequenceViolation     = "PAY_003"
	CodeNotFound              = "PAY_004"
	CodeUnmappedGatewayStatus = "PAY_005"
	CodeCaptureRejected       = "PAY_006"
	CodeTransport             = "GW_001"
	CodeGatewayAPI            = "GW_002"
	CodeInvalidNotification   = "WH_001"
	CodeDuplicateNotification = "WH_002"
	CodeInvalidOperatorKey    = "AUTH_001"
	CodeInternal              = "SYS_001"
	CodeDatabase              = "SYS_002"
	CodeRateLimited           = "SYS_003"
)

// ---- Token integrity (TOK) ----

func ErrMalformedToken(err error) *AppError {
	return Wrap(CodeMalformedToken, "Malformed capture context token", http.StatusBadGateway, err)
}

func ErrKeyNotFound(kid string, err error) *AppError {
	return Wrap(CodeKeyNotFound, fmt.Sprintf("Signing key %q not found", kid), http.StatusBadGateway, err)
}

func ErrSignatureInvalid(err error) *AppError {
	return Wrap(CodeSignatureInvalid, "Capture context signature is invalid", http.StatusBadGateway, err)
}

func ErrClaimMissing(claim string) *AppError {
	return New(CodeClaimMissing, fmt.Sprintf("The %s claim is missing in the capture context", claim), http.StatusBadGateway)
}

func ErrVerificationExhausted(attempts int, err error) *AppError {
	return Wrap(CodeVerificationExhausted,
		fmt.Sprintf("Capture context verification failed after %d attempts", attempts),
		http.StatusBadGateway, err)
}

// ---- Payment preconditions (PAY) ----

func ErrCustomerNotFound(userID string) *AppError {
	return New(CodeCustomerNotFound, fmt.Sprintf("User with id %s not found", userID), http.StatusUnprocessableEntity)
}

// Validation returns a PAY_002 validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func ErrSequenceViolation(message string) *AppError {
	return New(CodeSequenceViolation, message, http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrUnmappedGatewayStatus(status string) *AppError {
	return New(CodeUnmappedGatewayStatus, fmt.Sprintf("Unmapped gateway status %q", status), http.StatusBadGateway)
}

// ErrCaptureRejected carries the processor's raw response text as the message.
func ErrCaptureRejected(raw string) *AppError {
	return New(CodeCaptureRejected, raw, http.StatusBadGateway)
}

// ---- Gateway transport (GW) ----

func ErrTransport(err error) *AppError {
	return Wrap(CodeTransport, "Payment gateway unreachable", http.StatusBadGateway, err)
}

func ErrGatewayAPI(status int, err error) *AppError {
	return Wrap(CodeGatewayAPI, fmt.Sprintf("Payment gateway returned HTTP %d", status), http.StatusBadGateway, err)
}

// ---- Webhooks (WH) ----

func ErrInvalidNotificationSignature() *AppError {
	return New(CodeInvalidNotification, "Invalid notification signature", http.StatusUnauthorized)
}

func ErrDuplicateNotification() *AppError {
	return New(CodeDuplicateNotification, "Notification already processed", http.StatusOK)
}

// ---- Authentication (AUTH) ----

func ErrInvalidOperatorKey() *AppError {
	return New(CodeInvalidOperatorKey, "Invalid operator key", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap(CodeDatabase, "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Too many requests, slow down", http.StatusTooManyRequests)
}
