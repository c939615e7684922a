package services

import (
	"context"

	"github.com/nsahli/portfolio-backend/errs"
	"github.com/nsahli/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SubmissionOutcome is the terminal state of a contact submission whose
// persist step succeeded.
type SubmissionOutcome string

const (
	// OutcomeSent: message stored and notification delivered.
	OutcomeSent SubmissionOutcome = "sent"
	// OutcomeStored: message stored but notification delivery failed. The
	// caller must report this distinctly from total failure.
	OutcomeStored SubmissionOutcome = "stored_notification_failed"
)

// ContactSubmission is the visitor-facing contact form payload. All fields
// are required.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// MessageStore persists contact messages.
type MessageStore interface {
	Add(message *models.ContactMessage) error
}

// Notifier delivers a flat key-value payload to the notification template.
type Notifier interface {
	Send(ctx context.Context, params map[string]string) error
}

// ContactPipeline validates and submits a visitor message: persist first,
// then attempt notification. The two failures are reported independently;
// a notification failure never loses the stored message.
type ContactPipeline struct {
	store          MessageStore
	notifier       Notifier
	recipientName  string
	recipientEmail string
	logger         zerolog.Logger
}

func NewContactPipeline(store MessageStore, notifier Notifier, recipientName, recipientEmail string) *ContactPipeline {
	return &ContactPipeline{
		store:          store,
		notifier:       notifier,
		recipientName:  recipientName,
		recipientEmail: recipientEmail,
		logger:         log.With().Str("service", "contactPipeline").Logger(),
	}
}

// Submit runs the pipeline. On success it returns the stored message and an
// outcome; on storage failure nothing is persisted, no notification is
// attempted, and the error is terminal. Every accepted submission inserts a
// new row; identical re-submissions are duplicates by design.
func (p *ContactPipeline) Submit(ctx context.Context, sub ContactSubmission) (SubmissionOutcome, *models.ContactMessage, error) {
	if err := validateSubmission(sub); err != nil {
		return "", nil, err
	}

	message := &models.ContactMessage{
		Name:    sub.Name,
		Email:   sub.Email,
		Subject: sub.Subject,
		Message: sub.Message,
		Status:  models.MessageStatusUnread,
		Replied: false,
	}

	if err := p.store.Add(message); err != nil {
		p.logger.Error().Err(err).Msg("Failed to store contact message")
		return "", nil, errs.NewDatabaseError("create", "contact message", err)
	}

	if p.notifier == nil {
		p.logger.Warn().Str("messageId", message.ID.String()).
			Msg("No notifier configured, contact message stored without notification")
		return OutcomeStored, message, nil
	}

	if err := p.notifier.Send(ctx, p.templateParams(sub)); err != nil {
		p.logger.Warn().Err(err).Str("messageId", message.ID.String()).
			Msg("Contact message stored but notification failed")
		return OutcomeStored, message, nil
	}

	return OutcomeSent, message, nil
}

// templateParams maps the submission onto the notification template's field
// names, adding the fixed recipient identity.
func (p *ContactPipeline) templateParams(sub ContactSubmission) map[string]string {
	return map[string]string{
		"from_name":  sub.Name,
		"from_email": sub.Email,
		"to_name":    p.recipientName,
		"to_email":   p.recipientEmail,
		"subject":    sub.Subject,
		"message":    sub.Message,
	}
}

func validateSubmission(sub ContactSubmission) error {
	switch {
	case sub.Name == "":
		return errs.NewValidationError("name", "name is required")
	case sub.Email == "":
		return errs.NewValidationError("email", "email is required")
	case sub.Subject == "":
		return errs.NewValidationError("subject", "subject is required")
	case sub.Message == "":
		return errs.NewValidationError("message", "message is required")
	}
	return nil
}
