package configs

import "time"

// OpenAI configures the chat-completion provider. APIKey is optional at
// startup: a missing key is reported to the user when a generation is
// attempted, not when the server boots.
type OpenAI struct {
	APIKey string `env:"API_KEY"`
	// Model is the fixed model identifier sent with every request.
	Model string `env:"MODEL" envDefault:"gpt-4o"`
	// BaseURL overrides the provider endpoint. Empty means the SDK default.
	BaseURL string `env:"BASE_URL"`
	// Timeout bounds a single completion call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`
}
