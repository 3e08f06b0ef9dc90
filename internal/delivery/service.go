package delivery

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cybersoft-az/contact-api/internal/contact"
	"github.com/cybersoft-az/contact-api/internal/metrics"
	"github.com/cybersoft-az/contact-api/internal/provider"
)

// Outcome is the success value of a delivery attempt, consumed by the HTTP
// layer to shape the response.
type Outcome struct {
	MessageID string
}

// Service relays rendered submissions to the delivery provider. It makes a
// single synchronous attempt per submission; on failure the submitter is
// expected to resubmit.
type Service struct {
	provider provider.Provider
	from     string
	to       string
	log      zerolog.Logger
}

// NewService creates a Service sending from the fixed from-address to the
// fixed to-address.
func NewService(p provider.Provider, from, to string, log zerolog.Logger) *Service {
	return &Service{
		provider: p,
		from:     from,
		to:       to,
		log:      log,
	}
}

// Deliver sends the rendered email for a validated submission. Reply-to is
// set to the submitter's address so the recipient can answer directly. The
// full upstream error detail is logged here for operator diagnosis; callers
// must surface only a generic failure message.
func (s *Service) Deliver(ctx context.Context, sub *contact.Submission, email contact.Email) (*Outcome, error) {
	msg := &provider.Message{
		From:    s.from,
		To:      s.to,
		ReplyTo: sub.Email,
		Subject: email.Subject,
		HTML:    email.HTML,
		Text:    email.Text,
	}

	start := time.Now()
	result, err := s.provider.Send(ctx, msg)
	metrics.DeliveryDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.DeliveriesTotal.WithLabelValues("failed").Inc()
		s.log.Error().Err(err).
			Str("provider", s.provider.Name()).
			Str("reply_to", sub.Email).
			Msg("email delivery failed")
		return nil, fmt.Errorf("deliver submission: %w", err)
	}

	metrics.DeliveriesTotal.WithLabelValues("sent").Inc()
	s.log.Info().
		Str("provider", s.provider.Name()).
		Str("message_id", result.MessageID).
		Msg("email delivered")

	return &Outcome{MessageID: result.MessageID}, nil
}
