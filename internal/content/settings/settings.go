// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package settings serves the site-wide details shown in the header and footer.

The CMS stores them as key/value text rows; [FromValues] assembles the typed
[Site]. Unknown keys are ignored and missing keys leave zero values.
*/
package settings

import (
	"github.com/taibuivan/masjid/pkg/convert"
)

// Setting keys.
const (
	KeyName        = "name"
	KeyTagline     = "tagline"
	KeyAddress     = "address"
	KeyPhone       = "phone"
	KeyEmail       = "email"
	KeyFacebook    = "facebook"
	KeyYouTube     = "youtube"
	KeyInstagram   = "instagram"
	KeyPrayerNote  = "prayer_note"
	KeyDonations   = "donations"
	KeyEstablished = "established"
)

// Social holds the outbound profile links.
type Social struct {
	Facebook  string `json:"facebook,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Site is the global site description.
type Site struct {
	Name             string `json:"name"`
	Tagline          string `json:"tagline"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Social           Social `json:"social"`
	PrayerNote       string `json:"prayer_note,omitempty"`
	DonationsEnabled bool   `json:"donations_enabled"`
	Established      int    `json:"established,omitempty"`
}

// FromValues builds a [Site] from raw key/value settings.
func FromValues(values map[string]string) Site {
	return Site{
		Name:    values[KeyName],
		Tagline: values[KeyTagline],
		Address: values[KeyAddress],
		Phone:   values[KeyPhone],
		Email:   values[KeyEmail],
		Social: Social{
			Facebook:  values[KeyFacebook],
			YouTube:   values[KeyYouTube],
			Instagram: values[KeyInstagram],
		},
		PrayerNote:       values[KeyPrayerNote],
		DonationsEnabled: convert.Flag(values[KeyDonations]),
		Established:      convert.IntOr(values[KeyEstablished], 0),
	}
}
