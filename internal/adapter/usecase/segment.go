package usecase

import (
	"strings"
	"time"

	"post-studio/internal/core/domain"
)

// VariantDelimiter is the keyword the model is expected to put in front of
// each draft. Matching is case-sensitive.
const VariantDelimiter = "Variant"

// SplitVariants splits raw on VariantDelimiter. Text before the first
// delimiter is discarded. When the delimiter is absent the whole input is
// returned as the only piece. Pieces are not trimmed.
func SplitVariants(raw string) []string {
	pieces := strings.Split(raw, VariantDelimiter)
	if len(pieces) > 1 {
		return pieces[1:]
	}
	return []string{raw}
}

// Segment numbers the pieces of raw from 1 and stamps each with capturedAt.
// The number of segments is whatever the model produced; it is not
// reconciled with the requested variant count.
func Segment(raw string, capturedAt time.Time) []domain.Segment {
	pieces := SplitVariants(raw)
	segments := make([]domain.Segment, len(pieces))
	for i, p := range pieces {
		segments[i] = domain.Segment{Index: i + 1, CapturedAt: capturedAt, Text: p}
	}
	return segments
}
