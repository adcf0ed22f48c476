// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuidv7_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/masjid/pkg/uuidv7"
)

/*
TestNew_SortsByCreation verifies identifiers carry their creation time and
later identifiers sort after earlier ones.
*/
func TestNew_SortsByCreation(t *testing.T) {
	first := uuidv7.New()
	time.Sleep(2 * time.Millisecond)
	second := uuidv7.New()

	assert.Less(t, first, second)

	created, ok := uuidv7.Time(first)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now(), created, time.Second)
}

/*
TestTime_RejectsOtherVersions verifies only UUIDv7 input yields a time.
*/
func TestTime_RejectsOtherVersions(t *testing.T) {
	_, ok := uuidv7.Time(uuid.NewString())
	assert.False(t, ok)

	_, ok = uuidv7.Time("not-a-uuid")
	assert.False(t, ok)
}
