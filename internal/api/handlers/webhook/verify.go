package webhook

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"net/url"

	"github.com/deepgram/messenger-relay/internal/domain/relay"
	"github.com/deepgram/messenger-relay/pkg/httpext"
	"github.com/deepgram/messenger-relay/pkg/logger"
)

const (
	paramMode        = "hub.mode"
	paramVerifyToken = "hub.verify_token"
	paramChallenge   = "hub.challenge"

	modeSubscribe = "subscribe"
)

// Verify checks a subscription handshake and returns the challenge to echo back
func Verify(query url.Values, verifyToken string) (string, error) {
	if !query.Has(paramMode) || !query.Has(paramVerifyToken) || !query.Has(paramChallenge) {
		return "", relay.ErrMissingHandshakeParams
	}

	mode := query.Get(paramMode)
	token := query.Get(paramVerifyToken)
	if mode != modeSubscribe || subtle.ConstantTimeCompare([]byte(token), []byte(verifyToken)) != 1 {
		return "", relay.ErrVerifyTokenMismatch
	}

	return query.Get(paramChallenge), nil
}

// HandleVerify answers the platform's GET /webhook handshake
func HandleVerify(verifyToken string, w http.ResponseWriter, r *http.Request) {
	log := logger.For(logger.HANDLER)

	challenge, err := Verify(r.URL.Query(), verifyToken)
	switch {
	case errors.Is(err, relay.ErrMissingHandshakeParams):
		log.Warn().Str("client_ip", r.RemoteAddr).Msg("Webhook verification request missing parameters")
		httpext.JsonError(w, "Missing hub.mode, hub.verify_token or hub.challenge", http.StatusBadRequest)
		return
	case err != nil:
		log.Warn().
			Str("client_ip", r.RemoteAddr).
			Str("mode", r.URL.Query().Get(paramMode)).
			Msg("Webhook verification rejected")
		httpext.JsonError(w, "Forbidden", http.StatusForbidden)
		return
	}

	log.Info().Msg("Webhook verified")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(challenge)); err != nil {
		log.Error().Err(err).Msg("Failed to write verification challenge")
	}
}
