// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package contact accepts messages from the website's contact form.

Submissions are validated, keyed by a UUIDv7 and appended to the inbox table.
The endpoint carries its own per-IP rate limit, tighter than the read API.
*/
package contact

import "time"

// Field limits.
const (
	maxNameLength    = 120
	maxEmailLength   = 254
	maxSubjectLength = 160
	minMessageLength = 10
	maxMessageLength = 5000
)

// Message is a stored contact form submission.
type Message struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Body      string
	IPAddress string
	CreatedAt time.Time
}

// SubmitRequest is the JSON body of POST /contact.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitResponse identifies the stored message.
type SubmitResponse struct {
	ID string `json:"id"`
}
