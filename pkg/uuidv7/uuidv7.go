// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 issues time-ordered identifiers for rows this service writes.
//
// Contact messages are keyed by UUIDv7 so the inbox sorts by arrival without
// a separate timestamp index.
package uuidv7

import (
	"time"

	"github.com/google/uuid"
)

// New returns a UUIDv7 string. If the random source fails it falls back to a
// random UUIDv4, which still identifies the row but loses arrival order.
func New() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// Time returns the creation time embedded in a UUIDv7 string.
// It reports false for malformed input or other UUID versions.
func Time(id string) (time.Time, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.Version() != 7 {
		return time.Time{}, false
	}

	seconds, nanoseconds := parsed.Time().UnixTime()
	return time.Unix(seconds, nanoseconds).UTC(), true
}
