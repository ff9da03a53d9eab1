package transcript

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/yt-summarizer/pkg/errors"
)

func TestFetchJoinsSegmentsInOrder(t *testing.T) {
	provider := &stubProvider{segments: []Segment{{Text: "Hello"}, {Text: "world"}, {Text: "again"}}}
	svc := NewService(testConfig(), provider, newTestLogger())

	got, err := svc.Fetch(context.Background(), "abc123")
	require.NoError(t, err)
	require.Equal(t, "Hello world again", got)
	require.Equal(t, "abc123", provider.videoID)
	require.Equal(t, []string{"en", "id", "en-GB"}, provider.languages)
}

func TestFetchAppliesTimeout(t *testing.T) {
	provider := &stubProvider{segments: []Segment{{Text: "x"}}}
	svc := NewService(testConfig(), provider, newTestLogger())

	_, err := svc.Fetch(context.Background(), "abc123")
	require.NoError(t, err)
	require.True(t, provider.hadDeadline)
}

func TestFetchClassifiesProviderErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantMsg  string
	}{
		{
			name:     "disabled",
			err:      fmt.Errorf("video abc123: %w", ErrTranscriptsDisabled),
			wantCode: apperrors.CodeTranscriptsDisabled,
			wantMsg:  "Transcripts are disabled for this video.",
		},
		{
			name:     "no language match",
			err:      ErrNoTranscriptFound,
			wantCode: apperrors.CodeTranscriptNotFound,
			wantMsg:  "No transcript found for this video in the requested languages.",
		},
		{
			name:     "nothing available",
			err:      ErrNoTranscriptAvailable,
			wantCode: apperrors.CodeTranscriptUnavailable,
			wantMsg:  "No transcript is available for this video.",
		},
		{
			name:     "unexpected",
			err:      errors.New("connection reset by peer"),
			wantCode: apperrors.CodeTranscriptError,
			wantMsg:  "Failed to fetch transcript.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(testConfig(), &stubProvider{err: tt.err}, newTestLogger())

			_, err := svc.Fetch(context.Background(), "abc123")
			require.Error(t, err)
			require.ErrorIs(t, err, tt.err)
			require.Equal(t, tt.wantCode, apperrors.CodeOf(err))
			require.Equal(t, tt.wantMsg, apperrors.MessageOf(err))
		})
	}
}

func TestFetchEmptySegmentsIsUnavailable(t *testing.T) {
	svc := NewService(testConfig(), &stubProvider{}, newTestLogger())

	_, err := svc.Fetch(context.Background(), "abc123")
	require.True(t, apperrors.IsCode(err, apperrors.CodeTranscriptUnavailable))
	require.ErrorIs(t, err, ErrNoTranscriptAvailable)
}

func TestJoin(t *testing.T) {
	require.Equal(t, "", Join(nil))
	require.Equal(t, "one", Join([]Segment{{Text: "one"}}))
	require.Equal(t, "a  b", Join([]Segment{{Text: "a "}, {Text: "b"}}))
}

func TestPreview(t *testing.T) {
	short := "short text"
	require.Equal(t, short, preview(short))

	long := strings.Repeat("é", 150)
	got := preview(long)
	require.True(t, strings.HasSuffix(got, "..."))
	require.Len(t, []rune(strings.TrimSuffix(got, "...")), 100)
}

func testConfig() Config {
	return Config{Languages: []string{"en", "id", "en-GB"}, Timeout: time.Second}
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubProvider struct {
	segments []Segment
	err      error

	videoID     string
	languages   []string
	hadDeadline bool
}

func (s *stubProvider) Segments(ctx context.Context, videoID string, languages []string) ([]Segment, error) {
	s.videoID = videoID
	s.languages = languages
	_, s.hadDeadline = ctx.Deadline()
	return s.segments, s.err
}
