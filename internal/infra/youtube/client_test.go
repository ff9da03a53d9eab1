package youtube

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/yt-summarizer/internal/domain/transcript"
)

func TestSegmentsFallsBackThroughLanguages(t *testing.T) {
	stub := &stubCaptions{
		errs: map[string]error{
			"en": errors.New("captions not found for video abc123"),
		},
		tracks: map[string][]yt_transcript_models.Transcript{
			"id": {{Lines: []yt_transcript_models.TranscriptLine{
				{Text: "Halo", Start: 0, Duration: 1.5},
				{Text: "dunia", Start: 1.5, Duration: 1},
			}}},
			"en-GB": {{Lines: []yt_transcript_models.TranscriptLine{{Text: "unused"}}}},
		},
	}
	client := &Client{captions: stub}

	segments, err := client.Segments(context.Background(), "abc123", []string{"en", "id", "en-GB"})
	require.NoError(t, err)
	require.Equal(t, []transcript.Segment{
		{Text: "Halo", Start: 0, Duration: 1.5},
		{Text: "dunia", Start: 1.5, Duration: 1},
	}, segments)
	require.Equal(t, []string{"en", "id"}, stub.calls)
}

func TestSegmentsNoLanguageMatches(t *testing.T) {
	stub := &stubCaptions{
		errs: map[string]error{"en": errors.New("captions not found")},
		tracks: map[string][]yt_transcript_models.Transcript{
			"id": {{Lines: nil}},
		},
	}
	client := &Client{captions: stub}

	_, err := client.Segments(context.Background(), "abc123", []string{"en", "id"})
	require.ErrorIs(t, err, transcript.ErrNoTranscriptFound)
}

func TestSegmentsStopsOnTerminalErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "disabled", err: errors.New("Subtitles are disabled for this video"), wantErr: transcript.ErrTranscriptsDisabled},
		{name: "nothing available", err: errors.New("no transcripts available for video"), wantErr: transcript.ErrNoTranscriptAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubCaptions{errs: map[string]error{"en": tt.err}}
			client := &Client{captions: stub}

			_, err := client.Segments(context.Background(), "abc123", []string{"en", "id"})
			require.ErrorIs(t, err, tt.wantErr)
			require.Equal(t, []string{"en"}, stub.calls)
		})
	}
}

func TestSegmentsUnexpectedErrorIsWrapped(t *testing.T) {
	cause := errors.New("unexpected status code 429")
	client := &Client{captions: &stubCaptions{errs: map[string]error{"en": cause}}}

	_, err := client.Segments(context.Background(), "abc123", []string{"en"})
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, transcript.ErrNoTranscriptFound)
}

func TestSegmentsRespectsContextDeadline(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	client := &Client{captions: &stubCaptions{block: release}}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Segments(ctx, "abc123", []string{"en"})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

type stubCaptions struct {
	tracks map[string][]yt_transcript_models.Transcript
	errs   map[string]error
	block  chan struct{}
	calls  []string
}

func (s *stubCaptions) GetTranscripts(videoID string, languages []string) ([]yt_transcript_models.Transcript, error) {
	if s.block != nil {
		<-s.block
		return nil, nil
	}
	lang := languages[0]
	s.calls = append(s.calls, lang)
	if err, ok := s.errs[lang]; ok {
		return nil, err
	}
	return s.tracks[lang], nil
}
