// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package sermon serves the recorded sermon library.

The published list is small, so it is cached whole and searched in memory:
the query matches title, speaker and series case-insensitively, and the
speaker and series filters accept comma-separated values.
*/
package sermon

import (
	"fmt"
	"strings"
	"time"
)

// Sermon is a published recording.
type Sermon struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Speaker     string    `json:"speaker"`
	Series      string    `json:"series"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	MediaURL    string    `json:"media_url"`
	DeliveredOn time.Time `json:"delivered_on"`
	DurationSec int       `json:"duration_sec"`
	Date        string    `json:"date"`
	Duration    string    `json:"duration"`
}

// Filter narrows a sermon listing. Zero values match everything.
type Filter struct {
	Query    string
	Speakers []string
	Series   []string
}

// matches reports whether the sermon satisfies the text query.
func (filter Filter) matches(sermon Sermon) bool {
	needle := strings.ToLower(strings.TrimSpace(filter.Query))
	if needle == "" {
		return true
	}

	for _, field := range []string{sermon.Title, sermon.Speaker, sermon.Series} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// formatDuration renders seconds as "1 h 5 min" or "28 min".
func formatDuration(seconds int) string {
	if seconds <= 0 {
		return ""
	}

	minutes := (seconds + 59) / 60
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%d h %d min", minutes/60, minutes%60)
}
