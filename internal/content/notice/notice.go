// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package notice serves the community notice board.

Rows are stored with a publication date and a free-text tag. The service
formats the date for display and resolves the tag colour, so every client
renders the same board.
*/
package notice

import (
	"strings"
	"time"

	"github.com/taibuivan/masjid/internal/rotation"
)

// Record is a published notice as stored by the CMS.
type Record struct {
	ID          string
	Title       string
	PublishedOn time.Time
	Tag         string
	IsCancelled bool
}

// Notice is the display form consumed by the notice scroller.
type Notice = rotation.Notice

// defaultTagColor is used for tags outside the palette.
const defaultTagColor = "#6b7280"

// tagPalette maps lower-cased tags to badge colours.
var tagPalette = map[string]string{
	"prayer":    "#047857",
	"event":     "#b45309",
	"youth":     "#1d4ed8",
	"education": "#7c3aed",
	"community": "#0f766e",
	"urgent":    "#b91c1c",
	"general":   defaultTagColor,
}

// TagColor returns the badge colour for tag.
func TagColor(tag string) string {
	if color, ok := tagPalette[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return color
	}
	return defaultTagColor
}
