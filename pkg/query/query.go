// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses list-valued filters such as ?speaker=a,b.
package query

import (
	"slices"
	"strings"
)

// StringSlice splits a comma-separated value, dropping blanks and repeats
// (case-insensitively, first spelling wins). An empty value gives nil.
func StringSlice(raw string) []string {
	var values []string
	for part := range strings.SplitSeq(raw, ",") {
		value := strings.TrimSpace(part)
		if value == "" || slices.ContainsFunc(values, func(seen string) bool { return strings.EqualFold(seen, value) }) {
			continue
		}
		values = append(values, value)
	}
	return values
}

// ContainsFold reports whether target is one of values, ignoring case.
// No values means no filter, so everything matches.
func ContainsFold(values []string, target string) bool {
	return len(values) == 0 || slices.ContainsFunc(values, func(value string) bool {
		return strings.EqualFold(value, target)
	})
}
