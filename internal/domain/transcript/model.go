package transcript

import (
	"context"
	"errors"
	"time"
)

// Config controls which caption tracks are requested.
type Config struct {
	Languages []string
	Timeout   time.Duration
}

// Segment is a single caption fragment as returned by the provider.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Provider fetches caption segments for a video. Languages are tried in
// order and the first language with captions wins.
type Provider interface {
	Segments(ctx context.Context, videoID string, languages []string) ([]Segment, error)
}

// Failure signals a Provider may return. Anything else is treated as an
// unexpected provider error.
var (
	ErrTranscriptsDisabled   = errors.New("transcripts are disabled for this video")
	ErrNoTranscriptFound     = errors.New("no transcript found in the requested languages")
	ErrNoTranscriptAvailable = errors.New("no transcript available")
)
