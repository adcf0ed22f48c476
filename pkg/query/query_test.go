// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/masjid/pkg/query"
)

/*
TestStringSlice verifies trimming, blank removal and de-duplication.
*/
func TestStringSlice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"single", "Imam Yusuf Khan", []string{"Imam Yusuf Khan"}},
		{"trimmed", " Tafsir , Seerah ", []string{"Tafsir", "Seerah"}},
		{"blanks", ",,Seerah,", []string{"Seerah"}},
		{"repeats", "Seerah,seerah,SEERAH", []string{"Seerah"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.StringSlice(tt.raw))
		})
	}
}

/*
TestContainsFold verifies case-insensitive membership and the empty filter.
*/
func TestContainsFold(t *testing.T) {
	assert.True(t, query.ContainsFold(nil, "anything"))
	assert.True(t, query.ContainsFold([]string{"Tafsir"}, "tafsir"))
	assert.False(t, query.ContainsFold([]string{"Tafsir"}, "Seerah"))
}
