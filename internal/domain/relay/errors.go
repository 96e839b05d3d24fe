package relay

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPayload means the webhook body could not be decoded or had no message to answer
	ErrMalformedPayload = errors.New("malformed webhook payload")

	// ErrMissingHandshakeParams means one of hub.mode, hub.verify_token or hub.challenge was absent
	ErrMissingHandshakeParams = errors.New("missing webhook handshake parameters")

	// ErrVerifyTokenMismatch means the handshake mode or verify token was wrong
	ErrVerifyTokenMismatch = errors.New("webhook verification failed")

	// ErrEmptyCompletion means the completion API answered without any choices
	ErrEmptyCompletion = errors.New("completion returned no choices")
)

// UpstreamError is returned when a call to a third-party API fails at the network level or
// with a non-2xx status. StatusCode is zero for network failures.
type UpstreamError struct {
	Service    string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s returned status %d: %v", e.Service, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
