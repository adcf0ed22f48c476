// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/masjid/pkg/pagination"
)

/*
TestFromRequest_Clamping verifies defaults and the limit cap.
*/
func TestFromRequest_Clamping(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want pagination.Params
	}{
		{"defaults", "/sermons", pagination.Params{Page: 1, Limit: 12}},
		{"explicit", "/sermons?page=3&limit=5", pagination.Params{Page: 3, Limit: 5}},
		{"negative_page", "/sermons?page=-2", pagination.Params{Page: 1, Limit: 12}},
		{"zero_limit", "/sermons?limit=0", pagination.Params{Page: 1, Limit: 12}},
		{"limit_too_big", "/sermons?limit=1000", pagination.Params{Page: 1, Limit: 50}},
		{"garbage", "/sermons?page=abc&limit=x", pagination.Params{Page: 1, Limit: 12}},
		{"padded", "/sermons?page=%202%20", pagination.Params{Page: 2, Limit: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagination.FromRequest(httptest.NewRequest("GET", tt.url, nil))
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestWindow verifies in-memory paging including past-the-end pages.
*/
func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, pagination.Window(items, pagination.Params{Page: 1, Limit: 2}))
	assert.Equal(t, []int{5}, pagination.Window(items, pagination.Params{Page: 3, Limit: 2}))

	past := pagination.Window(items, pagination.Params{Page: 4, Limit: 2})
	assert.NotNil(t, past)
	assert.Empty(t, past)
}

/*
TestNewMeta verifies page counting and the has_more flag.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		total   int
		pages   int
		hasMore bool
	}{
		{"first_of_three", 1, 5, 3, true},
		{"last", 3, 5, 3, false},
		{"empty", 1, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(pagination.Params{Page: tt.page, Limit: 2}, tt.total)
			assert.Equal(t, tt.pages, meta.TotalPages)
			assert.Equal(t, tt.hasMore, meta.HasMore)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}
