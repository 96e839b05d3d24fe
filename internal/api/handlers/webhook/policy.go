package webhook

import (
	"net/http"
	"time"

	"github.com/deepgram/messenger-relay/internal/config"
)

// DefaultStaleAfter is how old an event may be before a failed reply is no longer reported
const DefaultStaleAfter = 5 * time.Minute

// AckPolicy decides which status POST /webhook finally answers with.
//
// StaleAfter: a failed reply to an event older than this is acknowledged with 200 anyway,
// since a redelivered event could not be answered meaningfully.
//
// AlwaysAck: every status HandleReceive writes, including malformed payloads and upstream
// failures, is rewritten to 200. This stops the platform redelivering events the relay will
// never handle, and hides real failures from it. A panic is not covered: middleware.Recover
// still answers it with 500.
type AckPolicy struct {
	AlwaysAck  bool
	StaleAfter time.Duration

	// now is overridden in tests
	now func() time.Time
}

// NewAckPolicy builds the policy from the webhook configuration
func NewAckPolicy(cfg config.WebhookConfig) AckPolicy {
	policy := AckPolicy{
		AlwaysAck:  cfg.AlwaysAck,
		StaleAfter: cfg.StaleAfter,
	}
	if policy.StaleAfter <= 0 {
		policy.StaleAfter = DefaultStaleAfter
	}
	return policy
}

func (p AckPolicy) clock() time.Time {
	if p.now != nil {
		return p.now()
	}
	return time.Now()
}

// Status returns the status actually written for a handler outcome of status
func (p AckPolicy) Status(status int) int {
	if p.AlwaysAck {
		return http.StatusOK
	}
	return status
}
