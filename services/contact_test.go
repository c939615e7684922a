package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/nsahli/portfolio-backend/errs"
	"github.com/nsahli/portfolio-backend/models"
)

type fakeMessageStore struct {
	err   error
	added []*models.ContactMessage
}

func (s *fakeMessageStore) Add(message *models.ContactMessage) error {
	if s.err != nil {
		return s.err
	}
	message.ID = uuid.New()
	s.added = append(s.added, message)
	return nil
}

type fakeNotifier struct {
	err    error
	calls  int
	params map[string]string
}

func (n *fakeNotifier) Send(ctx context.Context, params map[string]string) error {
	n.calls++
	n.params = params
	return n.err
}

func validSubmission() ContactSubmission {
	return ContactSubmission{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "I have a project for you.",
	}
}

func TestSubmitSuccess(t *testing.T) {
	store := &fakeMessageStore{}
	notifier := &fakeNotifier{}
	pipeline := NewContactPipeline(store, notifier, "Site Owner", "owner@example.com")

	outcome, message, err := pipeline.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if outcome != OutcomeSent {
		t.Errorf("outcome = %q, want %q", outcome, OutcomeSent)
	}
	if len(store.added) != 1 {
		t.Fatalf("stored %d messages, want 1", len(store.added))
	}
	if message.Status != models.MessageStatusUnread {
		t.Errorf("status = %q, want %q", message.Status, models.MessageStatusUnread)
	}
	if message.Replied {
		t.Error("replied = true, want false")
	}
	if notifier.calls != 1 {
		t.Errorf("notifier called %d times, want 1", notifier.calls)
	}
	if got := notifier.params["to_email"]; got != "owner@example.com" {
		t.Errorf("to_email = %q, want owner@example.com", got)
	}
	if got := notifier.params["from_name"]; got != "Ada" {
		t.Errorf("from_name = %q, want Ada", got)
	}
}

func TestSubmitNotificationFailure(t *testing.T) {
	// The store succeeds but the notifier fails: exactly one message is
	// persisted and the outcome is distinct from total failure.
	store := &fakeMessageStore{}
	notifier := &fakeNotifier{err: errors.New("smtp is down")}
	pipeline := NewContactPipeline(store, notifier, "Site Owner", "owner@example.com")

	outcome, message, err := pipeline.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if outcome != OutcomeStored {
		t.Errorf("outcome = %q, want %q", outcome, OutcomeStored)
	}
	if message == nil {
		t.Fatal("message = nil, want stored message")
	}
	if len(store.added) != 1 {
		t.Errorf("stored %d messages, want 1", len(store.added))
	}
	if store.added[0].Status != models.MessageStatusUnread {
		t.Errorf("status = %q, want %q", store.added[0].Status, models.MessageStatusUnread)
	}
}

func TestSubmitStorageFailure(t *testing.T) {
	// The store fails: nothing persisted, no notification attempt, and the
	// error is terminal.
	store := &fakeMessageStore{err: errors.New("connection refused")}
	notifier := &fakeNotifier{}
	pipeline := NewContactPipeline(store, notifier, "Site Owner", "owner@example.com")

	outcome, message, err := pipeline.Submit(context.Background(), validSubmission())
	if err == nil {
		t.Fatal("Submit() error = nil, want storage error")
	}
	if outcome != "" {
		t.Errorf("outcome = %q, want empty", outcome)
	}
	if message != nil {
		t.Errorf("message = %v, want nil", message)
	}
	if len(store.added) != 0 {
		t.Errorf("stored %d messages, want 0", len(store.added))
	}
	if notifier.calls != 0 {
		t.Errorf("notifier called %d times, want 0", notifier.calls)
	}
}

func TestSubmitWithoutNotifier(t *testing.T) {
	store := &fakeMessageStore{}
	pipeline := NewContactPipeline(store, nil, "Site Owner", "owner@example.com")

	outcome, _, err := pipeline.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if outcome != OutcomeStored {
		t.Errorf("outcome = %q, want %q", outcome, OutcomeStored)
	}
	if len(store.added) != 1 {
		t.Errorf("stored %d messages, want 1", len(store.added))
	}
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ContactSubmission)
		wantField string
	}{
		{"missing name", func(s *ContactSubmission) { s.Name = "" }, "name"},
		{"missing email", func(s *ContactSubmission) { s.Email = "" }, "email"},
		{"missing subject", func(s *ContactSubmission) { s.Subject = "" }, "subject"},
		{"missing message", func(s *ContactSubmission) { s.Message = "" }, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeMessageStore{}
			notifier := &fakeNotifier{}
			pipeline := NewContactPipeline(store, notifier, "Site Owner", "owner@example.com")

			sub := validSubmission()
			tt.mutate(&sub)

			_, _, err := pipeline.Submit(context.Background(), sub)
			if err == nil {
				t.Fatal("Submit() error = nil, want validation error")
			}

			var apiErr *errs.ApiErr
			if !errors.As(err, &apiErr) {
				t.Fatalf("error is %T, want *errs.ApiErr", err)
			}
			if apiErr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", apiErr.Field, tt.wantField)
			}
			if len(store.added) != 0 {
				t.Errorf("stored %d messages, want 0", len(store.added))
			}
			if notifier.calls != 0 {
				t.Errorf("notifier called %d times, want 0", notifier.calls)
			}
		})
	}
}
