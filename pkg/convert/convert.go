// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert reads typed values out of CMS text settings.

Site settings are a key/value table edited by hand in the CMS, so values
arrive as free text ("Yes", " 1998 ", "on"). These helpers never fail: a
value that cannot be read yields the fallback.
*/
package convert

import (
	"strconv"
	"strings"
)

// IntOr parses a trimmed integer, or returns fallback.
func IntOr(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return value
}

// Flag reads a CMS toggle. "true", "1", "yes" and "on" in any case are set;
// everything else, including an empty value, is unset.
func Flag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on", "t", "y":
		return true
	default:
		return false
	}
}
