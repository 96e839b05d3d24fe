package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/deepgram/messenger-relay/internal/config"
	"github.com/deepgram/messenger-relay/internal/domain/messenger/models"
	"github.com/deepgram/messenger-relay/internal/domain/relay"
	"github.com/deepgram/messenger-relay/pkg/logger"
)

const (
	serviceName = "send API"

	// Maximum response body size to read for error reporting
	maxErrorBodySize = 1024
)

// Service posts messages to the platform's send API
type Service struct {
	client      *http.Client
	endpoint    string
	accessToken string
	timeout     time.Duration
}

// NewService builds a send API client on top of httpClient
func NewService(cfg config.MessengerConfig, httpClient *http.Client) *Service {
	endpoint := fmt.Sprintf("%s/%s/me/messages", strings.TrimRight(cfg.GraphAPIURL, "/"), cfg.GraphAPIVersion)

	log := logger.For(logger.SERVICE)
	log.Info().Str("endpoint", endpoint).Msg("Initialising messenger send service")

	return &Service{
		client:      httpClient,
		endpoint:    endpoint,
		accessToken: cfg.PageAccessToken,
		timeout:     cfg.Timeout,
	}
}

// Send delivers msg. The response body is only read when the API reports a failure.
func (s *Service) Send(ctx context.Context, msg models.OutboundMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal outbound message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reqURL := s.endpoint + "?" + url.Values{"access_token": {s.accessToken}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		// url.Error embeds the request URL, which carries the access token
		return &relay.UpstreamError{Service: serviceName, Err: redact(err)}
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return &relay.UpstreamError{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Err:        errors.New(strings.TrimSpace(string(respBody))),
		}
	}

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
	return nil
}

func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: strings.SplitN(urlErr.URL, "?", 2)[0], Err: urlErr.Err}
	}
	return err
}
