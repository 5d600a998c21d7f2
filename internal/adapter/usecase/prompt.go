package usecase

import (
	"context"
	"fmt"
	"time"

	"post-studio/internal/core/domain"
	"post-studio/internal/core/port"
)

// SystemInstruction frames the model as a content strategist.
const SystemInstruction = "You are a world-class content strategist. Output only ready-to-publish, high-conversion content."

// PromptBuilder turns a CampaignRequest into the system/user instruction
// pair. It keeps no state between calls.
type PromptBuilder struct {
	policy     domain.LengthPolicy
	researcher port.Researcher
}

// NewPromptBuilder creates a builder using policy for length instructions
// and researcher for live-search context. researcher may be nil when live
// search is never requested.
func NewPromptBuilder(policy domain.LengthPolicy, researcher port.Researcher) *PromptBuilder {
	return &PromptBuilder{policy: policy, researcher: researcher}
}

// Build returns the prompt for req. When req.LiveSearch is set the
// researcher is consulted, its delay is paid on the calling goroutine and
// the returned research is non-nil.
func (b *PromptBuilder) Build(ctx context.Context, req domain.CampaignRequest) (domain.Prompt, *domain.Research, error) {
	if req.Topic == "" {
		return domain.Prompt{}, nil, &domain.ValidationError{Field: "topic", Err: domain.ErrEmptyTopic}
	}
	lengthInstruction, err := b.policy.Instruction(req.Length)
	if err != nil {
		return domain.Prompt{}, nil, err
	}

	user := fmt.Sprintf("Create %d posts for %s about %s. Tone: %s. %s",
		req.VariantCount, req.Platform, req.Topic, req.Tone, lengthInstruction)

	var research *domain.Research
	if req.LiveSearch {
		if b.researcher == nil {
			return domain.Prompt{}, nil, &domain.ConfigurationError{Err: fmt.Errorf("live search requested but no researcher configured")}
		}
		r, err := b.researcher.Lookup(ctx, req.Topic, req.Platform)
		if err != nil {
			return domain.Prompt{}, nil, &domain.ProviderError{Err: err}
		}
		if err = pause(ctx, r.Delay); err != nil {
			return domain.Prompt{}, nil, &domain.ProviderError{Err: err}
		}
		user += " " + r.Sentence
		research = &r
	}

	return domain.Prompt{System: SystemInstruction, User: user}, research, nil
}

// pause blocks for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
