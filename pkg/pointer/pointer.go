// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer handles optional CMS fields.

Optional columns (a slide's mobile image, an event's end time) are modelled as
pointers. The CMS sometimes stores a cleared text field as an empty string
rather than NULL, so [NilIfBlank] folds both into nil at the storage edge.
*/
package pointer

import "strings"

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, or returns the zero value when p is nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// NilIfBlank returns nil when p is nil or points at whitespace only.
func NilIfBlank(p *string) *string {
	if p == nil || strings.TrimSpace(*p) == "" {
		return nil
	}
	return p
}
