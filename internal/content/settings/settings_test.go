// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/masjid/internal/content/settings"
)

type fakeRepository map[string]string

func (repository fakeRepository) ListValues(context.Context) (map[string]string, error) {
	return repository, nil
}

/*
TestFromValues verifies typed parsing and tolerance of bad values.
*/
func TestFromValues(t *testing.T) {
	site := settings.FromValues(map[string]string{
		settings.KeyName:        "Masjid Al-Noor",
		settings.KeyYouTube:     "https://youtube.com/@masjidalnoor",
		settings.KeyDonations:   "true",
		settings.KeyEstablished: "nineteen",
		"unknown":               "ignored",
	})

	assert.Equal(t, "Masjid Al-Noor", site.Name)
	assert.Equal(t, "https://youtube.com/@masjidalnoor", site.Social.YouTube)
	assert.True(t, site.DonationsEnabled)
	assert.Zero(t, site.Established)
}

/*
TestService_Site verifies the service assembles settings from the store.
*/
func TestService_Site(t *testing.T) {
	repo := fakeRepository{settings.KeyEmail: "info@masjid.org", settings.KeyEstablished: "1987"}

	site, err := settings.NewService(repo, nil, slog.Default()).Site(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "info@masjid.org", site.Email)
	assert.Equal(t, 1987, site.Established)
	assert.False(t, site.DonationsEnabled)
}
