package transcript

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/yt-summarizer/pkg/errors"
)

const previewLen = 100

// Service exposes transcript retrieval.
type Service interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}

type service struct {
	cfg      Config
	provider Provider
	logger   *slog.Logger
}

// NewService is a wire provider for the transcript domain.
func NewService(cfg Config, provider Provider, logger *slog.Logger) Service {
	return &service{cfg: cfg, provider: provider, logger: logger.With("component", "transcript.service")}
}

// Fetch returns the video's caption text joined with single spaces.
func (s *service) Fetch(ctx context.Context, videoID string) (string, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	segments, err := s.provider.Segments(ctx, videoID, s.cfg.Languages)
	if err != nil {
		return "", s.classify(videoID, err)
	}
	if len(segments) == 0 {
		s.logger.Error("provider returned no caption segments", "video_id", videoID)
		return "", apperrors.Wrap(apperrors.CodeTranscriptUnavailable, "No transcript is available for this video.", ErrNoTranscriptAvailable)
	}

	text := Join(segments)
	s.logger.Info("fetched transcript", "video_id", videoID, "segments", len(segments), "preview", preview(text))
	return text, nil
}

func (s *service) classify(videoID string, err error) error {
	switch {
	case errors.Is(err, ErrTranscriptsDisabled):
		s.logger.Error("transcripts are disabled", "video_id", videoID)
		return apperrors.Wrap(apperrors.CodeTranscriptsDisabled, "Transcripts are disabled for this video.", err)
	case errors.Is(err, ErrNoTranscriptFound):
		s.logger.Error("no transcript found", "video_id", videoID, "languages", s.cfg.Languages)
		return apperrors.Wrap(apperrors.CodeTranscriptNotFound, "No transcript found for this video in the requested languages.", err)
	case errors.Is(err, ErrNoTranscriptAvailable):
		s.logger.Error("no transcript available", "video_id", videoID)
		return apperrors.Wrap(apperrors.CodeTranscriptUnavailable, "No transcript is available for this video.", err)
	default:
		s.logger.Error("unexpected error fetching transcript", "video_id", videoID, "error", err)
		return apperrors.Wrap(apperrors.CodeTranscriptError, "Failed to fetch transcript.", err)
	}
}

// Join concatenates segment texts in provider order, separated by one space.
func Join(segments []Segment) string {
	parts := make([]string, len(segments))
	for i, seg := range segments {
		parts[i] = seg.Text
	}
	return strings.Join(parts, " ")
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLen {
		return text
	}
	return string(runes[:previewLen]) + "..."
}
