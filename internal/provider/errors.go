package provider

import "fmt"

// ProviderError wraps a non-success response from a delivery API. The message
// carries the upstream error body for operator diagnosis; it must be logged,
// never returned to the submitter.
type ProviderError struct {
	// Provider is the name of the delivery API that returned the error.
	Provider string
	// StatusCode is the HTTP status code from the API.
	StatusCode int
	// Message is the error description from the API response body.
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Message)
}
