// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/masjid/internal/platform/validate"
	"github.com/taibuivan/masjid/pkg/uuidv7"
)

// Service validates and stores contact form submissions.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a new contact [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

/*
Submit validates input and stores it.

Parameters:
  - context: context.Context
  - input: SubmitRequest
  - ip: string (Client address, recorded for abuse review)

Returns:
  - string: The new message ID (UUIDv7)
  - error: apperr.ValidationError or storage failures
*/
func (service *Service) Submit(context context.Context, input SubmitRequest, ip string) (string, error) {

	// 1. Normalise
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)

	// 2. Validate every field before reporting
	validator := &validate.Validator{}
	validator.
		Required("name", input.Name).
		MaxLen("name", input.Name, maxNameLength).
		Required("email", input.Email).
		Email("email", input.Email).
		MaxLen("email", input.Email, maxEmailLength).
		Required("subject", input.Subject).
		MaxLen("subject", input.Subject, maxSubjectLength).
		Custom("subject", strings.ContainsAny(input.Subject, "\r\n"), "Must be a single line").
		MinLen("message", input.Message, minMessageLength).
		MaxLen("message", input.Message, maxMessageLength)

	if err := validator.Err(); err != nil {
		return "", err
	}

	// 3. Persist
	id := uuidv7.New()
	createdAt, ok := uuidv7.Time(id)
	if !ok {
		createdAt = service.now().UTC()
	}

	message := &Message{
		ID:        id,
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Body:      input.Message,
		IPAddress: ip,
		CreatedAt: createdAt,
	}

	if err := service.repo.Insert(context, message); err != nil {
		return "", err
	}

	service.logger.InfoContext(context, "contact_message_received",
		slog.String("id", message.ID),
		slog.String("subject", message.Subject),
	)

	return message.ID, nil
}
