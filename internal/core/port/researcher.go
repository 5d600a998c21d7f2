package port

import (
	"context"

	"post-studio/internal/core/domain"
)

// Researcher produces the research-context sentence used when live search
// is enabled. The returned Delay is paid synchronously by the caller.
type Researcher interface {
	Lookup(ctx context.Context, topic string, platform domain.Platform) (domain.Research, error)
}
