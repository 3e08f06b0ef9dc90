package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxMessageLength is the maximum accepted message length in characters.
const MaxMessageLength = 5000

// emailPattern is a deliberately loose shape check: something@something.something
// with no whitespace or extra @ signs. Deliverability is not our problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission is a validated contact-form payload. It lives for the duration
// of one request and is never persisted.
type Submission struct {
	Name        string
	Email       string
	Company     string
	ProjectType string
	Message     string
}

// ValidationError describes a rejected submission. The message is safe to
// return to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ParseSubmission builds a Submission from a decoded JSON object, applying
// validation checks in a fixed order and stopping at the first failure.
// The company field is optional and never validated.
func ParseSubmission(raw map[string]any) (*Submission, error) {
	name, ok := raw["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Message: "Name is required"}
	}

	email, ok := raw["email"].(string)
	if !ok || strings.TrimSpace(email) == "" {
		return nil, &ValidationError{Message: "Email is required"}
	}
	if !emailPattern.MatchString(email) {
		return nil, &ValidationError{Message: "Invalid email address"}
	}

	projectType, ok := raw["projectType"].(string)
	if !ok {
		return nil, &ValidationError{Message: "Project type is required"}
	}

	message, ok := raw["message"].(string)
	if !ok || strings.TrimSpace(message) == "" {
		return nil, &ValidationError{Message: "Message is required"}
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return nil, &ValidationError{Message: "Message is too long (max 5000 characters)"}
	}

	company, _ := raw["company"].(string)

	return &Submission{
		Name:        name,
		Email:       email,
		Company:     company,
		ProjectType: projectType,
		Message:     message,
	}, nil
}

// projectTypeLabels maps known project type codes to human-readable labels.
var projectTypeLabels = map[string]string{
	"website":     "Website Development",
	"saas":        "SaaS Platform",
	"integration": "Integration",
	"other":       "Other",
}

// ProjectTypeLabel resolves a project type code to its display label.
// Unknown codes pass through verbatim as their own label.
func ProjectTypeLabel(code string) string {
	if label, ok := projectTypeLabels[code]; ok {
		return label
	}
	return code
}
