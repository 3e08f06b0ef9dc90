package api

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/cybersoft-az/contact-api/internal/contact"
	"github.com/cybersoft-az/contact-api/internal/delivery"
	"github.com/cybersoft-az/contact-api/internal/logger"
	"github.com/cybersoft-az/contact-api/internal/metrics"
)

// deliveryFailedMessage is the only failure detail the submitter ever sees;
// the upstream error is logged by the delivery service instead.
const deliveryFailedMessage = "Failed to send email. Please try again later."

// ContactHandler handles POST on the contact path: content-type check, JSON
// parse, validation, rendering, and delivery, in that order, mapping each
// failure to its response envelope.
func ContactHandler(svc *delivery.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mt != "application/json" {
			respondError(w, http.StatusBadRequest, "Content-Type must be application/json")
			return
		}

		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			log.Error().Err(err).Msg("failed to parse request body")
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		sub, err := contact.ParseSubmission(raw)
		if err != nil {
			metrics.SubmissionsTotal.WithLabelValues("rejected").Inc()

			var vErr *contact.ValidationError
			if errors.As(err, &vErr) {
				log.Warn().Str("reason", vErr.Message).Msg("submission rejected")
				respondError(w, http.StatusBadRequest, vErr.Message)
				return
			}

			log.Error().Err(err).Msg("unexpected validation failure")
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		metrics.SubmissionsTotal.WithLabelValues("accepted").Inc()

		email := contact.RenderEmail(sub)

		outcome, err := svc.Deliver(r.Context(), sub, email)
		if err != nil {
			respondError(w, http.StatusInternalServerError, deliveryFailedMessage)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{
			Success:   true,
			MessageID: outcome.MessageID,
			Message:   "Email sent successfully",
		})
	}
}
