package errors

import (
	"errors"
	"fmt"
)

// Claim error kinds, surfaced to HTTP as machine-readable codes.
const (
	ErrTypeNotFound     = "NOT_FOUND"
	ErrTypeBadRequest   = "BAD_REQUEST"
	ErrTypeValidation   = "VALIDATION_ERROR"
	ErrTypeInternal     = "INTERNAL_ERROR"
	ErrTypeAuthProvider = "AUTH_PROVIDER_FAILED"
)

// ClaimError represents a failure in the promotion-claim flow.
type ClaimError struct {
	Type    string
	Message string
	Cause   error
}

func (e *ClaimError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s - %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *ClaimError) Unwrap() error {
	return e.Cause
}

// NewNotFoundError creates a NOT_FOUND error for a missing resource.
func NewNotFoundError(resource, id string) *ClaimError {
	return &ClaimError{
		Type:    ErrTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// NewBadRequestError creates a BAD_REQUEST error.
func NewBadRequestError(message string) *ClaimError {
	return &ClaimError{
		Type:    ErrTypeBadRequest,
		Message: message,
	}
}

// NewValidationError creates a VALIDATION_ERROR.
func NewValidationError(message string, cause error) *ClaimError {
	return &ClaimError{
		Type:    ErrTypeValidation,
		Message: message,
		Cause:   cause,
	}
}

// NewInternalError creates an INTERNAL_ERROR wrapping an unexpected failure.
func NewInternalError(message string, cause error) *ClaimError {
	return &ClaimError{
		Type:    ErrTypeInternal,
		Message: message,
		Cause:   cause,
	}
}

// NewAuthProviderError creates an error for an unexpected auth-provider failure.
func NewAuthProviderError(message string, cause error) *ClaimError {
	return &ClaimError{
		Type:    ErrTypeAuthProvider,
		Message: message,
		Cause:   cause,
	}
}

// TypeOf extracts the claim error kind, defaulting to INTERNAL_ERROR.
func TypeOf(err error) string {
	var claimErr *ClaimError
	if errors.As(err, &claimErr) {
		return claimErr.Type
	}
	return ErrTypeInternal
}
