// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination reads ?page= and ?limit= and describes the page returned.
//
// Content lists are small and cached whole, so pages are cut in memory with
// [Window] after filtering rather than with SQL OFFSET.
package pagination

import (
	"net/http"

	"github.com/taibuivan/masjid/pkg/convert"
)

const (
	// DefaultLimit fills four rows of the three-column sermon grid.
	DefaultLimit = 12
	// MaxLimit caps a single page.
	MaxLimit = 50
)

// Params selects one 1-indexed page.
type Params struct {
	Page  int
	Limit int
}

// Offset is the index of the first item on the page.
func (p Params) Offset() int {
	return max(p.Page-1, 0) * p.Limit
}

// FromRequest reads the page parameters. A missing or malformed value takes
// its default, and a limit above [MaxLimit] is lowered to it.
func FromRequest(request *http.Request) Params {
	query := request.URL.Query()

	page := convert.IntOr(query.Get("page"), 1)
	limit := convert.IntOr(query.Get("limit"), DefaultLimit)

	return Params{
		Page:  max(page, 1),
		Limit: clampLimit(limit),
	}
}

func clampLimit(limit int) int {
	switch {
	case limit < 1:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// Meta accompanies a page in the response envelope.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasMore    bool `json:"has_more"`
}

// NewMeta describes page p of total items.
func NewMeta(p Params, total int) Meta {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: pages,
		HasMore:    p.Page < pages,
	}
}

// Window returns the items on page p. A page past the end is empty, not nil.
func Window[T any](items []T, p Params) []T {
	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}
	return items[start:min(start+p.Limit, len(items))]
}
