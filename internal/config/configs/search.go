package configs

import "time"

// Search configures the simulated live-search step.
type Search struct {
	// Delay models the network round trip of a research lookup.
	Delay time.Duration `env:"DELAY" envDefault:"1200ms"`
}
