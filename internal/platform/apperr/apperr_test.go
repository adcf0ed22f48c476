// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/masjid/internal/platform/apperr"
)

/*
TestAs_WrappedChain verifies AppErrors are found through fmt.Errorf wrapping.
*/
func TestAs_WrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("sermon lookup: %w", apperr.NotFound("Sermon"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)
	assert.Equal(t, "Sermon not found", ae.Error())
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)

	assert.Nil(t, apperr.As(errors.New("plain")))
}

/*
TestInternal_HidesCause verifies the cause is reachable but not in the message.
*/
func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("connection refused")
	ae := apperr.Internal(cause)

	assert.ErrorIs(t, ae, cause)
	assert.NotContains(t, ae.Error(), "refused")
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
}

/*
TestRateLimited verifies the wait is rounded up to whole seconds.
*/
func TestRateLimited(t *testing.T) {
	tests := []struct {
		name    string
		wait    time.Duration
		seconds int
	}{
		{"whole", 60 * time.Second, 60},
		{"fraction_rounds_up", 1500 * time.Millisecond, 2},
		{"zero_is_one", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ae := apperr.RateLimited(tt.wait)
			assert.Equal(t, apperr.CodeRateLimited, ae.Code)
			assert.Equal(t, http.StatusTooManyRequests, ae.HTTPStatus)
			assert.Equal(t, time.Duration(tt.seconds)*time.Second, ae.RetryAfter)
			assert.Contains(t, ae.Message, fmt.Sprintf("%ds", tt.seconds))
		})
	}
}

/*
TestValidationError_Details verifies field details are carried.
*/
func TestValidationError_Details(t *testing.T) {
	ae := apperr.ValidationError("Invalid input", apperr.FieldError{Field: "email", Message: "Invalid email"})
	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
	assert.Len(t, ae.Details, 1)
}
