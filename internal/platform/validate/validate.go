// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate checks service inputs and folds the failures into one
// VALIDATION_ERROR.
//
// Rules run in chain order and only the first failure of each field is kept,
// so an empty email reads "This field is required" rather than also "Must be
// a valid email address".
package validate

import (
	"fmt"
	"net/mail"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/masjid/internal/platform/apperr"
	"github.com/taibuivan/masjid/pkg/slug"
)

var (
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator accumulates field failures. Use one per request.
type Validator struct {
	failures []apperr.FieldError
}

// Required fails on a blank value.
func (v *Validator) Required(field, value string) *Validator {
	return v.check(field, strings.TrimSpace(value) == "", "This field is required")
}

// MaxLen fails when value has more than limit characters.
func (v *Validator) MaxLen(field, value string, limit int) *Validator {
	return v.check(field, utf8.RuneCountInString(value) > limit, fmt.Sprintf("Maximum %d characters", limit))
}

// MinLen fails when value has fewer than limit characters.
func (v *Validator) MinLen(field, value string, limit int) *Validator {
	return v.check(field, utf8.RuneCountInString(value) < limit, fmt.Sprintf("Minimum %d characters", limit))
}

// Email accepts a bare address only. Display names and angle brackets
// ("Aisha <aisha@example.com>") are rejected because the value is replied to
// verbatim.
func (v *Validator) Email(field, value string) *Validator {
	parsed, err := mail.ParseAddress(value)
	return v.check(field, err != nil || parsed.Address != value, "Must be a valid email address")
}

// Slug fails unless value is lowercase words joined by single hyphens and no
// longer than a generated slug can be.
func (v *Validator) Slug(field, value string) *Validator {
	invalid := len(value) > slug.MaxLength || !slugPattern.MatchString(value)
	return v.check(field, invalid, "Must be a valid URL slug (lowercase letters, digits, hyphens only)")
}

// Custom fails with message when failed is true.
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	return v.check(field, failed, message)
}

// HasErrors reports whether any rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.failures) > 0
}

// Err ends the chain. It is nil when every rule passed.
func (v *Validator) Err() error {
	if len(v.failures) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.failures...)
}

func (v *Validator) check(field string, failed bool, message string) *Validator {
	if !failed || v.failed(field) {
		return v
	}
	v.failures = append(v.failures, apperr.FieldError{Field: field, Message: message})
	return v
}

func (v *Validator) failed(field string) bool {
	return slices.ContainsFunc(v.failures, func(failure apperr.FieldError) bool {
		return failure.Field == field
	})
}
