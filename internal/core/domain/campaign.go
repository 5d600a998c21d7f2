package domain

import "fmt"

// Platform is the publishing target of a campaign.
type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformFacebook  Platform = "Facebook"
	PlatformTwitter   Platform = "Twitter/X"
	PlatformTikTok    Platform = "TikTok"
	PlatformPinterest Platform = "Pinterest"
	PlatformThreads   Platform = "Threads"
	PlatformEducation Platform = "Education"
	PlatformOther     Platform = "Other"
)

// Platforms lists every platform in form order.
var Platforms = []Platform{
	PlatformInstagram, PlatformLinkedIn, PlatformFacebook, PlatformTwitter,
	PlatformTikTok, PlatformPinterest, PlatformThreads, PlatformEducation,
	PlatformOther,
}

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// Tone is the narrative voice requested for the posts.
type Tone string

const (
	ToneViral        Tone = "Viral"
	ToneProfessional Tone = "Professional"
	ToneFunny        Tone = "Funny"
	ToneStorytelling Tone = "Storytelling"
	ToneEducational  Tone = "Educational"
	ToneUrgent       Tone = "Urgent"
)

// Tones lists every tone in form order.
var Tones = []Tone{
	ToneViral, ToneProfessional, ToneFunny, ToneStorytelling, ToneEducational, ToneUrgent,
}

// Valid reports whether t is one of the known tones.
func (t Tone) Valid() bool {
	for _, known := range Tones {
		if t == known {
			return true
		}
	}
	return false
}

// Variant count bounds accepted by the form.
const (
	MinVariants     = 1
	MaxVariants     = 5
	DefaultVariants = 2
)

// CampaignRequest is a submitted brief. It is passed by value and never
// modified after submission.
type CampaignRequest struct {
	Topic        string   `json:"topic"`
	Platform     Platform `json:"platform"`
	Tone         Tone     `json:"tone"`
	Length       Length   `json:"length"`
	VariantCount int      `json:"variant_count"`
	LiveSearch   bool     `json:"live_search"`
}

// Validate checks the user-controlled fields. The length tier is not
// checked here: an unmapped tier is a configuration problem and surfaces
// from LengthPolicy.Instruction instead.
func (r CampaignRequest) Validate() error {
	if r.Topic == "" {
		return &ValidationError{Field: "topic", Err: ErrEmptyTopic}
	}
	if !r.Platform.Valid() {
		return &ValidationError{Field: "platform", Err: fmt.Errorf("unknown platform %q", r.Platform)}
	}
	if !r.Tone.Valid() {
		return &ValidationError{Field: "tone", Err: fmt.Errorf("unknown tone %q", r.Tone)}
	}
	if r.VariantCount < MinVariants || r.VariantCount > MaxVariants {
		return &ValidationError{
			Field: "variant_count",
			Err:   fmt.Errorf("variant count must be between %d and %d, got %d", MinVariants, MaxVariants, r.VariantCount),
		}
	}
	return nil
}

// WithDefaults fills zero-valued optional fields with the form defaults:
// Medium length and two variants.
func (r CampaignRequest) WithDefaults() CampaignRequest {
	if r.Length == "" {
		r.Length = LengthMedium
	}
	if r.VariantCount == 0 {
		r.VariantCount = DefaultVariants
	}
	return r
}
