package provider

import (
	"context"
	"time"
)

// Provider defines the interface for sending email through a delivery API.
type Provider interface {
	// Send delivers a message and returns a delivery result. A single
	// attempt is made; retrying is the submitter's responsibility.
	Send(ctx context.Context, msg *Message) (*DeliveryResult, error)
	// Name returns the provider's identifier (e.g., "resend").
	Name() string
}

// HTTPClient abstracts HTTP operations for testability.
type HTTPClient interface {
	Do(ctx context.Context, req *HTTPRequest) (*HTTPResponse, error)
}

// HTTPRequest represents an outgoing HTTP request.
type HTTPRequest struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// HTTPResponse represents an HTTP response from a provider API.
type HTTPResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// Message represents one rendered contact-form email to be delivered.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// DeliveryResult contains the outcome of a successful delivery attempt.
type DeliveryResult struct {
	MessageID string
	Timestamp time.Time
}
