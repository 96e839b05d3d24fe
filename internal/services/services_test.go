package services

import (
	"context"
	"testing"
	"time"

	"github.com/deepgram/messenger-relay/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		OpenAI: config.OpenAIConfig{
			Key:     "sk-test",
			Model:   "gpt-3.5-turbo",
			BaseURL: "http://127.0.0.1:1/v1",
			Timeout: time.Second,
		},
		Messenger: config.MessengerConfig{
			PageAccessToken: "page-token",
			GraphAPIURL:     "http://127.0.0.1:1",
			GraphAPIVersion: "v2.6",
			Timeout:         time.Second,
		},
	}
}

func TestInitializeServices(t *testing.T) {
	svcs, err := InitializeServices(testConfig(), nil)
	require.NoError(t, err)

	require.NotNil(t, svcs.GetOpenAIService())
	require.NotNil(t, svcs.GetMessengerService())
	require.NotNil(t, svcs.GetResponderService())

	reply, err := svcs.GetOpenAIService().Complete(context.Background(), "ping")
	require.NoError(t, err)
	assert.Equal(t, "pong", reply)
}
