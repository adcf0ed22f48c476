// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/masjid/pkg/convert"
)

/*
TestFlag verifies the toggle spellings the CMS produces.
*/
func TestFlag(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{" Yes ", true},
		{"on", true},
		{"1", true},
		{"", false},
		{"no", false},
		{"disabled", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, convert.Flag(tt.raw))
		})
	}
}

/*
TestIntOr verifies trimming and fallback.
*/
func TestIntOr(t *testing.T) {
	assert.Equal(t, 1998, convert.IntOr(" 1998 ", 0))
	assert.Equal(t, 0, convert.IntOr("nineteen", 0))
	assert.Equal(t, 7, convert.IntOr("", 7))
}
