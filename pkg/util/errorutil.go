package util

import (
	"errors"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewBadRequest(message string) error {
	return NewDomainError("BAD_REQUEST", message, http.StatusBadRequest, nil)
}

func NewNotFound(resource string) error {
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewUnauthorized is the single 401 response: the credential was absent.
func NewUnauthorized() error {
	return NewDomainError("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized, nil)
}

// NewForbidden is the single 403 response. Token verification failures,
// role mismatches, missing identities and ownership mismatches all
// collapse into it; the caller learns nothing about which check failed.
func NewForbidden() error {
	return NewDomainError("FORBIDDEN", "Forbidden Access", http.StatusForbidden, nil)
}

// NewUpstreamFailure wraps a store or provider error.
func NewUpstreamFailure(err error) error {
	return &DomainError{
		Code:       "UPSTREAM_FAILURE",
		Message:    "upstream dependency failed",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		if de, ok := NewNotFound("resource").(*DomainError); ok {
			return de
		}
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		if de, ok := NewUpstreamFailure(err).(*DomainError); ok {
			return de
		}
	}
	if de, ok := NewInternalError(err).(*DomainError); ok {
		return de
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
