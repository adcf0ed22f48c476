// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/masjid/pkg/slice"
)

/*
TestEmptyResultsEncodeAsArrays verifies nil input still yields a JSON array.
*/
func TestEmptyResultsEncodeAsArrays(t *testing.T) {
	mapped, err := json.Marshal(slice.Map[string, int](nil, func(string) int { return 0 }))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(mapped))

	filtered, err := json.Marshal(slice.Filter([]string{"Jumuah"}, func(string) bool { return false }))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(filtered))
}

/*
TestFilter_KeepsOrder verifies matching elements keep their order.
*/
func TestFilter_KeepsOrder(t *testing.T) {
	titles := []string{"Patience", "Gratitude", "Prayer", "Parents"}
	got := slice.Filter(titles, func(title string) bool { return strings.HasPrefix(title, "P") })
	assert.Equal(t, []string{"Patience", "Prayer", "Parents"}, got)

	assert.Equal(t, []int{8, 9}, slice.Map([]string{"Patience", "Gratitude"}, func(s string) int { return len(s) }))
}
