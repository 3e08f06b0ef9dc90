package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	resendDefaultEndpoint = "https://api.resend.com"
	resendSendPath        = "/emails"
)

// Resend implements the Provider interface for the Resend email API.
type Resend struct {
	apiKey   string
	endpoint string
	client   HTTPClient
}

// ResendConfig holds the settings needed to construct a Resend provider.
type ResendConfig struct {
	// APIKey is the bearer credential. It is sent in the Authorization
	// header and must never be logged.
	APIKey string
	// Endpoint overrides the default API endpoint; used in tests.
	Endpoint string
}

// NewResend creates a Resend provider from the given configuration.
func NewResend(cfg ResendConfig, client HTTPClient) *Resend {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = resendDefaultEndpoint
	}
	return &Resend{
		apiKey:   cfg.APIKey,
		endpoint: endpoint,
		client:   client,
	}
}

func (r *Resend) Name() string { return "resend" }

// resendPayload matches the Resend send-email JSON schema.
type resendPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	ReplyTo string `json:"reply_to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

// resendResponse is the success body returned by the send endpoint.
type resendResponse struct {
	ID string `json:"id"`
}

// Send delivers a message via the Resend API. A 2xx response with a parseable
// message id is a success; anything else is an error carrying the upstream
// detail.
func (r *Resend) Send(ctx context.Context, msg *Message) (*DeliveryResult, error) {
	body, err := json.Marshal(resendPayload{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("resend: marshal request: %w", err)
	}

	resp, err := r.client.Do(ctx, &HTTPRequest{
		Method: "POST",
		URL:    r.endpoint + resendSendPath,
		Headers: map[string]string{
			"Authorization": "Bearer " + r.apiKey,
			"Content-Type":  "application/json",
		},
		Body: body,
	})
	if err != nil {
		return nil, fmt.Errorf("resend: send request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderError{
			Provider:   "resend",
			StatusCode: resp.StatusCode,
			Message:    string(resp.Body),
		}
	}

	var sendResp resendResponse
	if err := json.Unmarshal(resp.Body, &sendResp); err != nil {
		return nil, fmt.Errorf("resend: parse response: %w", err)
	}
	if sendResp.ID == "" {
		return nil, fmt.Errorf("resend: response missing message id")
	}

	return &DeliveryResult{
		MessageID: sendResp.ID,
		Timestamp: time.Now(),
	}, nil
}
