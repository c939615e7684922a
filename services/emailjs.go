package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nsahli/portfolio-backend/config"
	"github.com/rs/zerolog/log"
)

const defaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// emailJSRequest represents the request payload for the EmailJS send API
type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// EmailJS sends transactional email through the EmailJS REST API. The
// template parameter names are a fixed out-of-band agreement with the
// template; they are not validated at call time.
type EmailJS struct {
	serviceID  string
	templateID string
	publicKey  string
	endpoint   string
	client     *http.Client
}

// NewEmailJS builds a client from config. Required keys:
//   - EMAILJS_SERVICE_ID: the EmailJS service id
//   - EMAILJS_TEMPLATE_ID: the template the payload maps onto
//   - EMAILJS_PUBLIC_KEY: the account public key (user_id on the wire)
//
// EMAILJS_ENDPOINT overrides the API endpoint, mainly for tests.
func NewEmailJS(cfg map[string]string) (*EmailJS, error) {
	serviceID := config.GetString(cfg, "EMAILJS_SERVICE_ID", "")
	if serviceID == "" {
		return nil, fmt.Errorf("EMAILJS_SERVICE_ID environment variable is required")
	}

	templateID := config.GetString(cfg, "EMAILJS_TEMPLATE_ID", "")
	if templateID == "" {
		return nil, fmt.Errorf("EMAILJS_TEMPLATE_ID environment variable is required")
	}

	publicKey := config.GetString(cfg, "EMAILJS_PUBLIC_KEY", "")
	if publicKey == "" {
		return nil, fmt.Errorf("EMAILJS_PUBLIC_KEY environment variable is required")
	}

	return &EmailJS{
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		endpoint:   config.GetString(cfg, "EMAILJS_ENDPOINT", defaultEmailJSEndpoint),
		client:     &http.Client{},
	}, nil
}

// Send posts the template parameters to EmailJS. A non-200 response is an
// error carrying the response body.
func (e *EmailJS) Send(ctx context.Context, params map[string]string) error {
	payload := emailJSRequest{
		ServiceID:      e.serviceID,
		TemplateID:     e.templateID,
		UserID:         e.publicKey,
		TemplateParams: params,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create EmailJS request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to EmailJS: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read EmailJS response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("emailjs error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	log.Info().Str("templateId", e.templateID).Msg("Successfully sent email via EmailJS")
	return nil
}
