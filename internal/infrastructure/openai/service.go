package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deepgram/messenger-relay/internal/config"
	"github.com/deepgram/messenger-relay/internal/domain/relay"
	"github.com/deepgram/messenger-relay/pkg/logger"
	"github.com/sashabaranov/go-openai"
)

const (
	serviceName = "completion API"

	// PingQuery is answered locally with PongReply so health checks never reach the API
	PingQuery = "ping"
	PongReply = "pong"
)

// Service turns a single user query into a reply using the chat completions API
type Service struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewService builds a completion client on top of httpClient, which is shared with the rest of the process
func NewService(cfg config.OpenAIConfig, httpClient *http.Client) *Service {
	log := logger.For(logger.SERVICE)
	log.Info().Str("model", cfg.Model).Str("base_url", cfg.BaseURL).Msg("Initialising OpenAI service")

	clientConfig := openai.DefaultConfig(cfg.Key)
	clientConfig.BaseURL = cfg.BaseURL
	clientConfig.HTTPClient = httpClient

	return &Service{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

// Complete returns the first choice's content for query
func (s *Service) Complete(ctx context.Context, query string) (string, error) {
	if query == PingQuery {
		return PongReply, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: query,
			},
		},
	})
	if err != nil {
		return "", toUpstreamError(err)
	}

	if len(resp.Choices) == 0 {
		return "", relay.ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}

func toUpstreamError(err error) error {
	upstream := &relay.UpstreamError{Service: serviceName, Err: err}

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		upstream.StatusCode = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		upstream.StatusCode = reqErr.HTTPStatusCode
	}

	return fmt.Errorf("failed to get chat completion: %w", upstream)
}
