package config

import (
	"github.com/caarlos0/env/v11"

	"post-studio/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to the logger so log lines can be told apart.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// OpenAI configures the model provider. Environment variables prefixed
	// with OPENAI_ will populate this struct, so the credential is read
	// from OPENAI_API_KEY.
	OpenAI configs.OpenAI `envPrefix:"OPENAI_"`

	// Search configures the simulated research step. Environment variables
	// prefixed with SEARCH_ will populate this struct.
	Search configs.Search `envPrefix:"SEARCH_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
