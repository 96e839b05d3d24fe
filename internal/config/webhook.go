package config

import "time"

// WebhookConfig configures the inbound webhook routes.
//
// AlwaysAck forces POST /webhook to answer 200 whatever happened. The platform redelivers any
// event that is not acknowledged, including ones the relay can never handle (non-text
// messages, delivery receipts), so turning this on stops redelivery storms. The price is that
// genuine failures are no longer visible to the platform; they only show up in the logs.
type WebhookConfig struct {
	VerifyToken string        `env:"VERIFY_TOKEN,required,notEmpty"`
	StaleAfter  time.Duration `env:"WEBHOOK_STALE_AFTER" envDefault:"5m"`
	AlwaysAck   bool          `env:"WEBHOOK_ALWAYS_ACK" envDefault:"false"`
}
