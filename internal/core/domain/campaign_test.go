package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	base := CampaignRequest{
		Topic:        "spring sale",
		Platform:     PlatformPinterest,
		Tone:         ToneUrgent,
		Length:       LengthLong,
		VariantCount: 5,
	}
	require.NoError(t, base.Validate())

	tests := []struct {
		name  string
		edit  func(*CampaignRequest)
		field string
	}{
		{"empty topic", func(r *CampaignRequest) { r.Topic = "" }, "topic"},
		{"unknown platform", func(r *CampaignRequest) { r.Platform = "MySpace" }, "platform"},
		{"unknown tone", func(r *CampaignRequest) { r.Tone = "Sarcastic" }, "tone"},
		{"zero variants", func(r *CampaignRequest) { r.VariantCount = 0 }, "variant_count"},
		{"too many variants", func(r *CampaignRequest) { r.VariantCount = 6 }, "variant_count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.edit(&req)

			var verr *ValidationError
			require.True(t, errors.As(req.Validate(), &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateIgnoresLength(t *testing.T) {
	req := CampaignRequest{Topic: "t", Platform: PlatformOther, Tone: ToneFunny, Length: "Huge", VariantCount: 1}
	assert.NoError(t, req.Validate())
}

func TestWithDefaults(t *testing.T) {
	got := CampaignRequest{Topic: "t"}.WithDefaults()
	assert.Equal(t, LengthMedium, got.Length)
	assert.Equal(t, DefaultVariants, got.VariantCount)

	kept := CampaignRequest{Length: LengthShort, VariantCount: 4}.WithDefaults()
	assert.Equal(t, LengthShort, kept.Length)
	assert.Equal(t, 4, kept.VariantCount)
}

func TestLengthPolicy(t *testing.T) {
	for _, l := range Lengths {
		s, err := DefaultLengthPolicy.Instruction(l)
		require.NoError(t, err)
		assert.NotEmpty(t, s)
	}
	assert.Len(t, DefaultLengthPolicy, len(Lengths))

	_, err := DefaultLengthPolicy.Instruction("Huge")
	var cerr *ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.ErrorIs(t, err, ErrUnknownLength)
}

func TestProviderErrorIsVerbatim(t *testing.T) {
	cause := errors.New("429 Too Many Requests")
	err := &ProviderError{Err: cause}
	assert.Equal(t, "429 Too Many Requests", err.Error())
	assert.ErrorIs(t, err, cause)
}
