// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package event serves upcoming community events.
package event

import "time"

// Event is a scheduled gathering.
type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	ImageURL    string     `json:"image_url"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
}

// timeLayout is the display form of an event start time.
const timeLayout = "3:04pm"
