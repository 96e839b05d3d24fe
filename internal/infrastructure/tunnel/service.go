package tunnel

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/deepgram/messenger-relay/pkg/logger"
	"golang.ngrok.com/ngrok"
	ngrokconfig "golang.ngrok.com/ngrok/config"
)

// ErrMissingAuthToken is returned when no ngrok auth token is given. Listen checks it
// before dialing so callers fail fast instead of waiting on the ngrok handshake.
var ErrMissingAuthToken = errors.New("ngrok auth token is required")

// Listen opens a public HTTPS endpoint on ngrok and returns it as a net.Listener together
// with its public URL. The tunnel closes when the listener is closed.
func Listen(ctx context.Context, authToken string) (net.Listener, string, error) {
	if authToken == "" {
		return nil, "", ErrMissingAuthToken
	}

	tun, err := ngrok.Listen(ctx, ngrokconfig.HTTPEndpoint(), ngrok.WithAuthtoken(authToken))
	if err != nil {
		return nil, "", fmt.Errorf("failed to start ngrok tunnel: %w", err)
	}

	log := logger.For(logger.TUNNEL)
	log.Info().Str("id", tun.ID()).Msg("Ngrok tunnel started")

	return tun, tun.URL(), nil
}
