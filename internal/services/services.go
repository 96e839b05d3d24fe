package services

import (
	"fmt"
	"net/http"

	"github.com/deepgram/messenger-relay/internal/config"
	"github.com/deepgram/messenger-relay/internal/infrastructure/messenger"
	"github.com/deepgram/messenger-relay/internal/infrastructure/openai"
	"github.com/deepgram/messenger-relay/internal/services/responder"
	"github.com/deepgram/messenger-relay/pkg/httpext"
	"github.com/rs/zerolog/log"
)

type Services struct {
	openAIService    *openai.Service
	messengerService *messenger.Service
	responderService *responder.Implementation
}

// InitializeServices wires every outbound client on top of httpClient. A nil client selects
// the process-wide shared client.
func InitializeServices(cfg *config.Config, httpClient *http.Client) (*Services, error) {
	log.Info().Msg("Initializing core services")

	if httpClient == nil {
		httpClient = httpext.SharedClient()
	}

	openAIService := openai.NewService(cfg.OpenAI, httpClient)
	messengerService := messenger.NewService(cfg.Messenger, httpClient)

	responderService, err := responder.NewService(openAIService, messengerService)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize responder service - required for message processing")
		return nil, fmt.Errorf("failed to initialize responder service: %w", err)
	}

	log.Info().Msg("All services initialized successfully")

	return &Services{
		openAIService:    openAIService,
		messengerService: messengerService,
		responderService: responderService,
	}, nil
}

// GetOpenAIService returns the completion client
func (s *Services) GetOpenAIService() *openai.Service {
	return s.openAIService
}

// GetMessengerService returns the outbound sender
func (s *Services) GetMessengerService() *messenger.Service {
	return s.messengerService
}

// GetResponderService returns the responder service
func (s *Services) GetResponderService() responder.Service {
	return s.responderService
}
