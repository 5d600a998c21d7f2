package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"post-studio/internal/core/domain"
	"post-studio/internal/core/port/mocks"
)

func TestBuildContainsLengthPolicy(t *testing.T) {
	b := NewPromptBuilder(domain.DefaultLengthPolicy, nil)
	for _, l := range domain.Lengths {
		req := validRequest()
		req.Length = l

		p, research, err := b.Build(context.Background(), req)
		require.NoError(t, err, l)
		assert.Nil(t, research)
		assert.Contains(t, p.User, domain.DefaultLengthPolicy[l], l)
		assert.Equal(t, SystemInstruction, p.System)
	}
}

func TestBuildFieldOrder(t *testing.T) {
	b := NewPromptBuilder(domain.DefaultLengthPolicy, nil)
	req := domain.CampaignRequest{
		Topic:        "eco sneakers",
		Platform:     domain.PlatformTwitter,
		Tone:         domain.ToneFunny,
		Length:       domain.LengthShort,
		VariantCount: 3,
	}

	p, _, err := b.Build(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t,
		"Create 3 posts for Twitter/X about eco sneakers. Tone: Funny. Keep it concise, punchy, and under 50 words.",
		p.User)
}

func TestBuildEmptyTopic(t *testing.T) {
	b := NewPromptBuilder(domain.DefaultLengthPolicy, nil)
	req := validRequest()
	req.Topic = ""

	_, _, err := b.Build(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmptyTopic)
}

func TestBuildUnknownLength(t *testing.T) {
	policy := domain.LengthPolicy{domain.LengthShort: "short"}
	b := NewPromptBuilder(policy, nil)

	_, _, err := b.Build(context.Background(), validRequest())
	var cerr *domain.ConfigurationError
	require.ErrorAs(t, err, &cerr)
}

func TestBuildLiveSearch(t *testing.T) {
	req := validRequest()
	sentence := "Current trend data for " + req.Topic + " on Instagram verified."

	research := mocks.NewMockResearcher(t)
	research.EXPECT().
		Lookup(mock.Anything, req.Topic, req.Platform).
		Return(domain.Research{Sentence: sentence, Delay: time.Millisecond}, nil).
		Once()

	b := NewPromptBuilder(domain.DefaultLengthPolicy, research)

	p, _, err := b.Build(context.Background(), req)
	require.NoError(t, err)
	assert.NotContains(t, p.User, "verified")

	req.LiveSearch = true
	p, r, err := b.Build(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Contains(t, p.User, req.Topic)
	assert.Contains(t, p.User, " "+sentence)
}

func TestBuildLiveSearchFailure(t *testing.T) {
	req := validRequest()
	req.LiveSearch = true

	research := mocks.NewMockResearcher(t)
	research.EXPECT().
		Lookup(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Research{}, errors.New("search backend down"))

	b := NewPromptBuilder(domain.DefaultLengthPolicy, research)
	_, _, err := b.Build(context.Background(), req)

	var perr *domain.ProviderError
	require.ErrorAs(t, err, &perr)
}

func TestPauseCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pause(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}
