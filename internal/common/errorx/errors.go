package errorx

import (
	"fmt"
	"net/http"
)

// ErrorCategory represents different categories of errors
type ErrorCategory string

const (
	CategoryValidation     ErrorCategory = "validation"
	CategoryAuthentication ErrorCategory = "authentication"
	CategoryAuthorization  ErrorCategory = "authorization"
	CategoryNotFound       ErrorCategory = "not_found"
	CategoryConflict       ErrorCategory = "conflict"
	CategoryInternal       ErrorCategory = "internal"
)

// APIError represents a structured API error carried from the business layer
// to the HTTP boundary, where it is rendered as the uniform response envelope.
type APIError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Category   ErrorCategory  `json:"category"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Category, e.Message)
}

// WithMessage returns a copy of the error with a different human-readable message
func (e *APIError) WithMessage(format string, args ...any) *APIError {
	clone := *e
	clone.Message = fmt.Sprintf(format, args...)
	return &clone
}

// WithDetail returns a copy of the error with an extra detail attached
func (e *APIError) WithDetail(key string, value any) *APIError {
	clone := *e
	clone.Details = make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		clone.Details[k] = v
	}
	clone.Details[key] = value
	return &clone
}

var (
	// ErrValidation covers malformed or missing input on any mutation
	ErrValidation = &APIError{
		Code:       "E1001",
		Message:    "Invalid input provided",
		Category:   CategoryValidation,
		HTTPStatus: http.StatusBadRequest,
	}

	// ErrDuplicateCredential covers unique-constraint violations on registration
	ErrDuplicateCredential = &APIError{
		Code:       "E1002",
		Message:    "This Mail is Already Registered",
		Category:   CategoryConflict,
		HTTPStatus: http.StatusConflict,
	}

	// ErrInvalidCredentials covers login mismatches
	ErrInvalidCredentials = &APIError{
		Code:       "E2001",
		Message:    "Invalid email or password",
		Category:   CategoryAuthentication,
		HTTPStatus: http.StatusUnauthorized,
	}

	// ErrTokenMissing covers requests without a bearer token
	ErrTokenMissing = &APIError{
		Code:       "E2002",
		Message:    "Access token required",
		Category:   CategoryAuthentication,
		HTTPStatus: http.StatusUnauthorized,
	}

	// ErrTokenInvalid covers signature mismatches and expired tokens
	ErrTokenInvalid = &APIError{
		Code:       "E2003",
		Message:    "Invalid or expired token",
		Category:   CategoryAuthentication,
		HTTPStatus: http.StatusUnauthorized,
	}

	// ErrForbidden covers authenticated identities acting outside their role
	ErrForbidden = &APIError{
		Code:       "E2004",
		Message:    "Forbidden",
		Category:   CategoryAuthorization,
		HTTPStatus: http.StatusForbidden,
	}

	// ErrNotFound covers lookups and deletes that match no record
	ErrNotFound = &APIError{
		Code:       "E3001",
		Message:    "Record not found",
		Category:   CategoryNotFound,
		HTTPStatus: http.StatusNotFound,
	}

	// ErrStoreUnavailable covers backing store connectivity failures
	ErrStoreUnavailable = &APIError{
		Code:       "E5001",
		Message:    "Database error occurred",
		Category:   CategoryInternal,
		HTTPStatus: http.StatusInternalServerError,
	}

	// ErrNotImplemented covers endpoints the dashboard references but the
	// backend never implemented
	ErrNotImplemented = &APIError{
		Code:       "E5002",
		Message:    "Not implemented",
		Category:   CategoryValidation,
		HTTPStatus: http.StatusBadRequest,
	}
)
