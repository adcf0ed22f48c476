// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug derives ASCII URL slugs from sermon titles.
//
// Slugs are the public identifiers of sermons (e.g., "patience-in-hardship").
// The CMS may leave them blank, in which case one is derived from the title.
// Titles are often transliterated Arabic, so diacritics are folded
// ("Sūrah" → "surah") and apostrophes and the ʿayn/hamza marks are elided
// rather than split ("Qur'an" → "quran").
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength bounds a derived slug. Longer titles are cut at a word boundary.
const MaxLength = 80

// elided marks vanish without leaving a word break.
var elided = strings.NewReplacer("'", "", "’", "", "‘", "", "`", "", "ʿ", "", "ʾ", "")

// fold decomposes compatibility forms and drops combining marks.
var fold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// From converts title into lowercase ASCII words joined by single hyphens.
// Characters that fold to nothing ASCII (for example Arabic script) act as
// separators, so a title with no Latin content yields "".
func From(title string) string {
	folded, _, err := transform.String(fold, elided.Replace(title))
	if err != nil {
		folded = title
	}

	var builder strings.Builder
	separate := false

	for _, r := range strings.ToLower(folded) {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			separate = builder.Len() > 0
			continue
		}
		if separate {
			builder.WriteByte('-')
			separate = false
		}
		builder.WriteRune(r)
	}

	return truncate(builder.String())
}

// truncate cuts s to MaxLength, backing up to the last hyphen when one exists.
func truncate(s string) string {
	if len(s) <= MaxLength {
		return s
	}

	cut := s[:MaxLength]
	if boundary := strings.LastIndexByte(cut, '-'); boundary > 0 {
		cut = cut[:boundary]
	}
	return strings.TrimRight(cut, "-")
}
