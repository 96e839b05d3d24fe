package webhook

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/deepgram/messenger-relay/internal/domain/messenger/models"
	"github.com/deepgram/messenger-relay/internal/domain/relay"
	"github.com/deepgram/messenger-relay/internal/services/responder"
	"github.com/deepgram/messenger-relay/pkg/httpext"
	"github.com/deepgram/messenger-relay/pkg/logger"
	"github.com/go-playground/validator/v10"
)

// Acknowledgement is the body returned for every accepted event
const Acknowledgement = "Message received!"

const maxBodySize = 1 << 20

// use a single instance of Validate, it caches struct info
var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode reads and validates a webhook body, returning the first messaging event
func Decode(r *http.Request) (models.MessagingEvent, error) {
	var payload models.WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return models.MessagingEvent{}, fmt.Errorf("%w: %v", relay.ErrMalformedPayload, err)
	}

	if err := validate.Struct(payload); err != nil {
		return models.MessagingEvent{}, fmt.Errorf("%w: %v", relay.ErrMalformedPayload, err)
	}

	event, ok := payload.First()
	if !ok {
		return models.MessagingEvent{}, fmt.Errorf("%w: no messaging event", relay.ErrMalformedPayload)
	}

	return event, nil
}

// HandleReceive answers the platform's POST /webhook event delivery
func HandleReceive(responderService responder.Service, policy AckPolicy, w http.ResponseWriter, r *http.Request) {
	log := logger.For(logger.HANDLER)

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	event, err := Decode(r)
	if err != nil {
		log.Warn().Err(err).Str("client_ip", r.RemoteAddr).Msg("Client sent malformed webhook payload")
		writeError(w, policy, http.StatusBadRequest, httpext.ErrorResponse{
			Error:            "Malformed webhook payload",
			ErrorDescription: err.Error(),
		})
		return
	}

	incoming := event.Message.Content()
	log.Info().
		Str("sender_id", event.Sender.ID).
		Str("mid", incoming.MID).
		Int("text_length", len(incoming.Text)).
		Msg("Webhook received")
	log.Debug().Str("text", incoming.Text).Msg("Webhook message text")

	if err := responderService.Respond(r.Context(), event.Sender.ID, incoming); err != nil {
		if event.IsStale(policy.clock(), policy.StaleAfter) {
			log.Warn().
				Err(err).
				Str("sender_id", event.Sender.ID).
				Int64("timestamp", event.Timestamp).
				Msg("Failed to answer stale event, acknowledging to stop redelivery")
			writeAck(w)
			return
		}

		log.Error().Err(err).Str("sender_id", event.Sender.ID).Msg("Failed to answer webhook event")
		writeError(w, policy, http.StatusInternalServerError, httpext.ErrorResponse{
			Error: "Failed to relay message",
		})
		return
	}

	writeAck(w)
}

func writeAck(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(Acknowledgement))
}

func writeError(w http.ResponseWriter, policy AckPolicy, status int, resp httpext.ErrorResponse) {
	written := policy.Status(status)
	if written != status {
		log := logger.For(logger.HANDLER)
		log.Warn().
			Int("status", status).
			Int("written_status", written).
			Msg("Acknowledging failed webhook delivery")
	}
	httpext.JsonErrorWithDetails(w, written, resp)
}
