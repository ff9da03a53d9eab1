package youtube

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript"
	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"

	"github.com/yanqian/yt-summarizer/internal/domain/transcript"
)

// captionClient is the subset of the transcript library used here.
type captionClient interface {
	GetTranscripts(videoID string, languages []string) ([]yt_transcript_models.Transcript, error)
}

// Client fetches YouTube captions and maps library failures onto the
// transcript domain's failure signals.
type Client struct {
	captions captionClient
}

// NewClient builds a client backed by the YouTube transcript library.
func NewClient() *Client {
	return &Client{captions: yt_transcript.NewClient()}
}

// Segments tries each language in order and returns the first non-empty
// caption track. The library call does not take a context, so it runs in a
// goroutine and the wait is bounded by ctx.
func (c *Client) Segments(ctx context.Context, videoID string, languages []string) ([]transcript.Segment, error) {
	for _, lang := range languages {
		tracks, err := c.fetch(ctx, videoID, lang)
		if err != nil {
			kind := classify(err)
			if kind == errLanguageMiss {
				continue
			}
			if kind != nil {
				return nil, fmt.Errorf("video %s (%s): %w: %v", videoID, lang, kind, err)
			}
			return nil, fmt.Errorf("fetch captions for video %s (%s): %w", videoID, lang, err)
		}
		if segments := toSegments(tracks); len(segments) > 0 {
			return segments, nil
		}
	}
	return nil, fmt.Errorf("video %s, languages %v: %w", videoID, languages, transcript.ErrNoTranscriptFound)
}

type result struct {
	tracks []yt_transcript_models.Transcript
	err    error
}

func (c *Client) fetch(ctx context.Context, videoID, lang string) ([]yt_transcript_models.Transcript, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// Buffered so an abandoned call can still finish; the goroutine lives as
	// long as the library's own HTTP request.
	done := make(chan result, 1)
	go func() {
		tracks, err := c.captions.GetTranscripts(videoID, []string{lang})
		done <- result{tracks: tracks, err: err}
	}()
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("transcript request aborted: %w", ctx.Err())
	case res := <-done:
		return res.tracks, res.err
	}
}

func toSegments(tracks []yt_transcript_models.Transcript) []transcript.Segment {
	if len(tracks) == 0 {
		return nil
	}
	lines := tracks[0].Lines
	segments := make([]transcript.Segment, 0, len(lines))
	for _, line := range lines {
		segments = append(segments, transcript.Segment{
			Text:     line.Text,
			Start:    line.Start,
			Duration: line.Duration,
		})
	}
	return segments
}

// errLanguageMiss marks a failure that only concerns the current language.
var errLanguageMiss = errors.New("captions not found for language")

// classify inspects library error text; the library does not export typed errors.
func classify(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "disabled"):
		return transcript.ErrTranscriptsDisabled
	case strings.Contains(msg, "no transcripts available"), strings.Contains(msg, "no captions available"):
		return transcript.ErrNoTranscriptAvailable
	case strings.Contains(msg, "captions not found"), strings.Contains(msg, "no transcript"), strings.Contains(msg, "not found"):
		return errLanguageMiss
	default:
		return nil
	}
}
