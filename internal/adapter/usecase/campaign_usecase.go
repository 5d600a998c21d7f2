package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"post-studio/internal/core/domain"
	"post-studio/internal/core/port"
)

// CampaignUseCase provides the generation pipeline. It orchestrates the
// prompt builder, the model client and the segmenter to implement the
// port.CampaignUseCase interface.
type CampaignUseCase struct {
	llm     port.LLMClient
	prompts *PromptBuilder
	logger  *slog.Logger

	// now supplies wall-clock time for segment stamps.
	now func() time.Time
}

// NewCampaignUseCase creates a new usecase with the default length policy.
func NewCampaignUseCase(llm port.LLMClient, researcher port.Researcher, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{
		llm:     llm,
		prompts: NewPromptBuilder(domain.DefaultLengthPolicy, researcher),
		logger:  logger,
		now:     time.Now,
	}
}

// Generate runs one generation. Validation and credential checks happen
// before any external call. The model is called exactly once and any
// failure is returned as a domain.ProviderError without retry.
func (u *CampaignUseCase) Generate(ctx context.Context, req domain.CampaignRequest) (*domain.GeneratedContent, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !u.llm.Configured() {
		return nil, &domain.ConfigurationError{Err: domain.ErrMissingAPIKey}
	}

	id := uuid.NewString()
	logger := u.logger.With(
		slog.String("generation_id", id),
		slog.String("platform", string(req.Platform)),
	)

	prompt, research, err := u.prompts.Build(ctx, req)
	if err != nil {
		return nil, err
	}
	logger.Debug("prompt built", slog.Bool("live_search", req.LiveSearch), slog.String("length", string(req.Length)))

	raw, err := u.llm.Complete(ctx, prompt)
	if err != nil {
		logger.Error("model call failed", slog.Any("error", err))
		return nil, &domain.ProviderError{Err: err}
	}

	now := u.now()
	segments := Segment(raw, now)
	if len(segments) != req.VariantCount {
		logger.Info("variant count mismatch",
			slog.Int("requested", req.VariantCount),
			slog.Int("received", len(segments)))
	}
	logger.Info("generation complete", slog.Int("segments", len(segments)))

	return &domain.GeneratedContent{
		ID:          id,
		Request:     req,
		RawText:     raw,
		Segments:    segments,
		Research:    research,
		GeneratedAt: now,
	}, nil
}
