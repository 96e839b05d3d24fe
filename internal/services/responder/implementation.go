package responder

import (
	"context"
	"errors"
	"fmt"

	"github.com/deepgram/messenger-relay/internal/domain/messenger/models"
	"github.com/deepgram/messenger-relay/pkg/logger"
)

type Implementation struct {
	completer Completer
	sender    Sender
}

func NewService(completer Completer, sender Sender) (*Implementation, error) {
	if completer == nil {
		return nil, errors.New("completer is required")
	}
	if sender == nil {
		return nil, errors.New("sender is required")
	}

	return &Implementation{
		completer: completer,
		sender:    sender,
	}, nil
}

func (s *Implementation) Respond(ctx context.Context, recipientID string, incoming models.Message) error {
	log := logger.For(logger.SERVICE)

	reply, err := s.completer.Complete(ctx, incoming.Text)
	if err != nil {
		return fmt.Errorf("failed to generate reply: %w", err)
	}

	log.Debug().
		Str("recipient_id", recipientID).
		Int("reply_length", len(reply)).
		Msg("Generated reply")

	if err := s.sender.Send(ctx, models.NewResponse(recipientID, reply)); err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}

	return nil
}
