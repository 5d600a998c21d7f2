package port

import (
	"context"

	"post-studio/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the studio.
// It is the primary port into the application domain. Mock implementations
// can be generated from this interface for testing.
type CampaignUseCase interface {
	// Generate validates the request, builds the prompt, calls the model
	// once and segments the answer. Errors are one of
	// domain.ValidationError, domain.ConfigurationError or
	// domain.ProviderError.
	Generate(ctx context.Context, req domain.CampaignRequest) (*domain.GeneratedContent, error)
}
