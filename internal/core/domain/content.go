package domain

import "time"

// Prompt is the instruction pair sent to the model.
type Prompt struct {
	System string
	User   string
}

// Research is the result of a live-search lookup. Delay is how long the
// lookup takes; Sentence is appended to the user instruction.
type Research struct {
	Sentence string        `json:"sentence"`
	Delay    time.Duration `json:"-"`
}

// Segment is one rendered slice of the model output.
type Segment struct {
	Index      int       `json:"index"`
	CapturedAt time.Time `json:"captured_at"`
	Text       string    `json:"text"`
}

// GeneratedContent is the outcome of one generation. It is derived per
// request and never stored.
type GeneratedContent struct {
	ID          string          `json:"id"`
	Request     CampaignRequest `json:"request"`
	RawText     string          `json:"raw_text"`
	Segments    []Segment       `json:"segments"`
	Research    *Research       `json:"research,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
}
