package config

import "time"

// MessengerConfig configures the Graph API send client
type MessengerConfig struct {
	PageAccessToken string        `env:"PAGE_ACCESS_TOKEN,required,notEmpty"`
	GraphAPIURL     string        `env:"GRAPH_API_URL" envDefault:"https://graph.facebook.com"`
	GraphAPIVersion string        `env:"GRAPH_API_VERSION" envDefault:"v2.6"`
	Timeout         time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`
}
