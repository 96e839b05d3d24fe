package relay

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamError(t *testing.T) {
	t.Run("status error message", func(t *testing.T) {
		err := &UpstreamError{Service: "send API", StatusCode: 502, Err: errors.New("bad gateway")}
		assert.Equal(t, "send API returned status 502: bad gateway", err.Error())
	})

	t.Run("network error message", func(t *testing.T) {
		err := &UpstreamError{Service: "completion API", Err: context.DeadlineExceeded}
		assert.Equal(t, "completion API request failed: context deadline exceeded", err.Error())
	})

	t.Run("unwraps through fmt wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to send reply: %w", &UpstreamError{Service: "send API", Err: context.Canceled})

		var upstream *UpstreamError
		assert.True(t, errors.As(wrapped, &upstream))
		assert.Equal(t, "send API", upstream.Service)
		assert.ErrorIs(t, wrapped, context.Canceled)
	})
}
