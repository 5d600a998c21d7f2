package domain

import "fmt"

// Length is the size tier of each generated post.
type Length string

const (
	LengthShort  Length = "Short"
	LengthMedium Length = "Medium"
	LengthLong   Length = "Long"
)

// Lengths lists every tier in form order.
var Lengths = []Length{LengthShort, LengthMedium, LengthLong}

// LengthPolicy maps a tier to the instruction appended to the prompt.
type LengthPolicy map[Length]string

// DefaultLengthPolicy covers exactly the three tiers.
var DefaultLengthPolicy = LengthPolicy{
	LengthShort:  "Keep it concise, punchy, and under 50 words.",
	LengthMedium: "Standard social media length, approximately 100-150 words.",
	LengthLong:   "Detailed, long-form content with in-depth explanations, over 250 words.",
}

// Instruction returns the instruction for l. There is no fallback tier.
func (p LengthPolicy) Instruction(l Length) (string, error) {
	s, ok := p[l]
	if !ok {
		return "", &ConfigurationError{Err: fmt.Errorf("%w: %q", ErrUnknownLength, l)}
	}
	return s, nil
}
