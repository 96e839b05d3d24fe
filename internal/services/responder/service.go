package responder

import (
	"context"

	"github.com/deepgram/messenger-relay/internal/domain/messenger/models"
)

// Service defines the interface for answering inbound messages
type Service interface {
	// Respond generates a reply to incoming and sends it to recipientID
	Respond(ctx context.Context, recipientID string, incoming models.Message) error
}

// Completer produces reply text for a query
type Completer interface {
	Complete(ctx context.Context, query string) (string, error)
}

// Sender delivers an outbound message to the platform
type Sender interface {
	Send(ctx context.Context, msg models.OutboundMessage) error
}
