package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deepgram/messenger-relay/internal/api/handlers"
	"github.com/deepgram/messenger-relay/internal/api/middleware"
	"github.com/deepgram/messenger-relay/internal/config"
	"github.com/deepgram/messenger-relay/internal/infrastructure/tunnel"
	"github.com/deepgram/messenger-relay/internal/services"
	"github.com/deepgram/messenger-relay/pkg/logger"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envFile := flag.String("env-file", ".env", "path to env file")
	flag.Parse()

	logger.Init("info", false)
	log := logger.For(logger.APP)

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load configuration")
	}
	logger.Init(cfg.LogLevel, cfg.IsDev())
	log = logger.For(logger.APP)

	svcs, err := services.InitializeServices(cfg, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, publicURL, err := listen(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open listener")
	}

	srv := &http.Server{
		Handler:           setupRouter(svcs, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info().
			Str("addr", ln.Addr().String()).
			Str("url", publicURL).
			Msg("Serving HTTP traffic")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		log.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
	log.Info().Msg("Server stopped")
}

// listen serves through an ngrok tunnel in dev and binds the configured port otherwise.
// The returned URL is where the platform's webhook subscription should point.
func listen(ctx context.Context, cfg *config.Config) (net.Listener, string, error) {
	if cfg.IsDev() {
		return tunnel.Listen(ctx, cfg.NgrokAuthToken)
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return nil, "", err
	}
	return ln, "http://" + ln.Addr().String(), nil
}

func setupRouter(svcs *services.Services, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.AccessLog, middleware.Recover)
	handlers.RegisterRoutes(r, svcs, cfg)
	return r
}
