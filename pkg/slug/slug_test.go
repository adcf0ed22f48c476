// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/masjid/pkg/slug"
)

/*
TestFrom verifies diacritic folding, elision and hyphen cleanup.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Patience in Hardship", "patience-in-hardship"},
		{"diacritics", "  Tafsīr of Sūrah al-Kahf  ", "tafsir-of-surah-al-kahf"},
		{"punctuation", "Friday Khutbah: Part 2!", "friday-khutbah-part-2"},
		{"apostrophe", "Lessons from the Qur'an", "lessons-from-the-quran"},
		{"ayn", "ʿAqīdah for Beginners", "aqidah-for-beginners"},
		{"ligature", "The ﬁrst Hajj", "the-first-hajj"},
		{"arabic_only", "الصبر", ""},
		{"mixed_script", "Sabr الصبر Patience", "sabr-patience"},
		{"separators_only", "---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.in))
		})
	}
}

/*
TestFrom_Truncates verifies long titles are cut at a word boundary.
*/
func TestFrom_Truncates(t *testing.T) {
	title := strings.Repeat("Remembrance ", 12)

	got := slug.From(title)
	assert.LessOrEqual(t, len(got), slug.MaxLength)
	assert.True(t, strings.HasPrefix(got, "remembrance-remembrance"))
	assert.False(t, strings.HasSuffix(got, "-"))
	assert.True(t, strings.HasSuffix(got, "remembrance"))
}
