package port

import (
	"context"

	"post-studio/internal/core/domain"
)

// LLMClient is the outbound port to the model provider.
type LLMClient interface {
	// Complete sends the prompt and returns the single text completion.
	Complete(ctx context.Context, prompt domain.Prompt) (string, error)
	// Configured reports whether a credential is available. Generation is
	// refused before any call when it is false.
	Configured() bool
}
