// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr is the error vocabulary shared by the content API handlers.

Services return an [*AppError] for anything the caller can act on: a missing
sermon, a malformed contact form, a flood of submissions. Everything else is
an internal failure and reaches the client only as INTERNAL_ERROR.

The rotation controllers never produce one: degenerate input renders nothing.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Machine-readable codes carried in the "code" field of error envelopes.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeBadRequest         = "BAD_REQUEST"
	CodeConflict           = "CONFLICT"
	CodeValidation         = "VALIDATION_ERROR"
	CodeRateLimited        = "RATE_LIMITED"
	CodeInternal           = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// AppError is an error the client is allowed to see.
//
// Cause is logged server-side and never serialised, so driver messages and
// SQL stay out of responses.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"error"`
	HTTPStatus int          `json:"-"`
	Cause      error        `json:"-"`
	Details    []FieldError `json:"details,omitempty"`

	// RetryAfter is sent as a Retry-After header when non-zero.
	RetryAfter time.Duration `json:"-"`
}

// FieldError names one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Cause }

func newError(status int, code, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// # 4xx

// NotFound reports a missing resource, e.g. NotFound("Sermon") gives "Sermon not found".
func NotFound(resource string) *AppError {
	return newError(http.StatusNotFound, CodeNotFound, resource+" not found")
}

// BadRequest reports an unusable query or path parameter.
func BadRequest(message string) *AppError {
	return newError(http.StatusBadRequest, CodeBadRequest, message)
}

// Conflict reports a duplicate, such as a resubmitted contact message.
func Conflict(message string) *AppError {
	return newError(http.StatusConflict, CodeConflict, message)
}

// ValidationError reports a rejected request body with per-field details.
func ValidationError(message string, details ...FieldError) *AppError {
	err := newError(http.StatusBadRequest, CodeValidation, message)
	err.Details = details
	return err
}

// RateLimited reports a client over its budget. The wait is rounded up to
// whole seconds, at least one.
func RateLimited(wait time.Duration) *AppError {
	seconds := max(1, int((wait+time.Second-1)/time.Second))
	err := newError(http.StatusTooManyRequests, CodeRateLimited,
		fmt.Sprintf("Too many requests. Try again in %ds.", seconds))
	err.RetryAfter = time.Duration(seconds) * time.Second
	return err
}

// # 5xx

// Internal hides cause behind a generic message.
func Internal(cause error) *AppError {
	err := newError(http.StatusInternalServerError, CodeInternal, "An unexpected error occurred")
	err.Cause = cause
	return err
}

// ServiceUnavailable reports that PostgreSQL or Redis cannot be reached.
func ServiceUnavailable(message string) *AppError {
	return newError(http.StatusServiceUnavailable, CodeServiceUnavailable, message)
}

// As returns the first [*AppError] in err's chain, or nil.
func As(err error) *AppError {
	var target *AppError
	if errors.As(err, &target) {
		return target
	}
	return nil
}
