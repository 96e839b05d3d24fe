package config

import "time"

// OpenAIConfig configures the chat completion client
type OpenAIConfig struct {
	Key     string        `env:"OPENAI_KEY,required,notEmpty"`
	Model   string        `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	BaseURL string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`
}
