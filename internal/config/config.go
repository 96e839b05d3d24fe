package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/deepgram/messenger-relay/pkg/logger"
	"github.com/joho/godotenv"
)

// EnvironmentDev serves through an ngrok tunnel instead of a local port
const EnvironmentDev = "dev"

// Config is built once at startup and shared read-only with every component
type Config struct {
	Environment    string `env:"ENVIRONMENT" envDefault:"production"`
	Port           int    `env:"PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	NgrokAuthToken string `env:"NGROK_AUTHTOKEN"`

	OpenAI    OpenAIConfig
	Messenger MessengerConfig
	Webhook   WebhookConfig
}

// Load reads an optional dotenv file into the process environment and parses it into a Config.
// A missing dotenv file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
			log := logger.For(logger.CONFIG)
			log.Debug().Str("file", envFile).Msg("No dotenv file found, relying on environment")
		}
	}

	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.IsDev() && c.NgrokAuthToken == "" {
		return errors.New("NGROK_AUTHTOKEN is required when ENVIRONMENT=dev")
	}
	if c.OpenAI.Timeout <= 0 || c.Messenger.Timeout <= 0 {
		return errors.New("UPSTREAM_TIMEOUT must be positive")
	}
	return nil
}

// IsDev reports whether the relay should be exposed through a development tunnel
func (c Config) IsDev() bool {
	return c.Environment == EnvironmentDev
}

// Addr is the local listen address used outside of dev
func (c Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}
