package research

import (
	"context"
	"fmt"
	"time"

	"post-studio/internal/core/domain"
)

// DefaultDelay models the round trip of a real search call.
const DefaultDelay = 1200 * time.Millisecond

// Simulated is a stand-in for a live search backend. It performs no
// network access and returns a templated sentence.
type Simulated struct {
	delay time.Duration
}

// NewSimulated creates a researcher reporting delay for every lookup.
func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{delay: delay}
}

// Lookup implements port.Researcher.
func (s *Simulated) Lookup(ctx context.Context, topic string, platform domain.Platform) (domain.Research, error) {
	if err := ctx.Err(); err != nil {
		return domain.Research{}, err
	}
	return domain.Research{
		Sentence: fmt.Sprintf("Current trend data for %s on %s verified.", topic, platform),
		Delay:    s.delay,
	}, nil
}
