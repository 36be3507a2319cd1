package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultEmailEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailClient sends templated messages through an EmailJS-style HTTP API:
// the provider holds the templates, the client supplies a template id and a
// parameter map.
type EmailClient struct {
	serviceID  string
	userID     string
	endpoint   string
	httpClient *http.Client
}

func NewEmailClient(serviceID, userID string) *EmailClient {
	return &EmailClient{
		serviceID: serviceID,
		userID:    userID,
		endpoint:  defaultEmailEndpoint,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// WithEndpoint overrides the provider endpoint, mainly for tests.
func (c *EmailClient) WithEndpoint(endpoint string) *EmailClient {
	c.endpoint = endpoint
	return c
}

type emailRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (c *EmailClient) Send(ctx context.Context, target, templateID string, params map[string]string) error {
	merged := make(map[string]string, len(params)+1)
	for k, v := range params {
		merged[k] = v
	}
	merged["to_email"] = target

	body, err := json.Marshal(emailRequest{
		ServiceID:      c.serviceID,
		TemplateID:     templateID,
		UserID:         c.userID,
		TemplateParams: merged,
	})
	if err != nil {
		return fmt.Errorf("encode email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email API returned %d: %s", resp.StatusCode, detail)
	}

	return nil
}
