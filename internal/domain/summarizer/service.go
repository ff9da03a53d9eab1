package summarizer

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/yanqian/yt-summarizer/internal/infra/llm/gemini"
	apperrors "github.com/yanqian/yt-summarizer/pkg/errors"
)

const (
	msgSafety        = "Summarization was stopped due to safety concerns."
	msgUnknownReason = "Summarization was stopped for an unknown reason."
	msgRequestFailed = "Failed to summarize transcript."
	msgInvalidResp   = "Invalid response from summarization service."

	finishReasonSafety  = "SAFETY"
	finishReasonUnknown = "UNKNOWN"
)

// Service exposes summarization capabilities.
type Service interface {
	Summarize(ctx context.Context, transcript string, style Style) (string, error)
}

type GenerativeClient interface {
	GenerateContent(ctx context.Context, req gemini.GenerateContentRequest) (gemini.GenerateContentResponse, error)
}

type service struct {
	cfg    Config
	client GenerativeClient
	logger *slog.Logger
}

// NewService is a wire provider for the summarizer domain.
func NewService(cfg Config, client GenerativeClient, logger *slog.Logger) Service {
	if !cfg.DefaultStyle.Valid() {
		cfg.DefaultStyle = StyleComplete
	}
	return &service{cfg: cfg, client: client, logger: logger.With("component", "summarizer.service")}
}

// Summarize sends the transcript to Gemini and extracts the first candidate.
// An empty style uses the configured default.
func (s *service) Summarize(ctx context.Context, transcript string, style Style) (string, error) {
	if style == "" {
		style = s.cfg.DefaultStyle
	}

	resp, err := s.client.GenerateContent(ctx, s.buildRequest(transcript, style))
	if err != nil {
		if errors.Is(err, gemini.ErrMalformedResponse) {
			s.logger.Error("error parsing gemini response", "error", err)
			return "", apperrors.Wrap(apperrors.CodeSummarizationFailed, msgInvalidResp, err)
		}
		s.logger.Error("gemini request failed", "error", err)
		return "", apperrors.Wrap(apperrors.CodeSummarizationFailed, msgRequestFailed, err)
	}
	s.logger.Debug("gemini response received", "candidates", len(resp.Candidates))

	if len(resp.Candidates) == 0 {
		s.logger.Warn("summarization blocked, no candidates returned")
		return "", apperrors.Wrap(apperrors.CodeSafetyBlocked, msgSafety, nil)
	}

	summary, err := s.extract(resp.Candidates[0])
	if err != nil {
		return "", err
	}

	attrs := []any{"style", string(style), "preview", preview(summary)}
	if resp.UsageMetadata != nil {
		if usage := resp.UsageMetadata.TokenUsage(); !usage.IsZero() {
			attrs = append(attrs, usage.LogAttrs()...)
		}
	}
	s.logger.Info("generated summary", attrs...)
	return summary, nil
}

func (s *service) buildRequest(transcript string, style Style) gemini.GenerateContentRequest {
	req := gemini.GenerateContentRequest{
		Contents: []gemini.Content{{Parts: []gemini.Part{gemini.Text(BuildPrompt(transcript, style))}}},
	}
	if s.cfg.Temperature > 0 {
		temperature := s.cfg.Temperature
		req.GenerationConfig = &gemini.GenerationConfig{Temperature: &temperature}
	}
	return req
}

func (s *service) extract(candidate gemini.Candidate) (string, error) {
	if candidate.Content != nil && candidate.Content.Parts != nil {
		parts := candidate.Content.Parts
		if len(parts) == 0 || parts[0].Text == nil {
			s.logger.Error("gemini candidate content has no text part")
			return "", apperrors.Wrap(apperrors.CodeSummarizationFailed, msgInvalidResp, errors.New("candidate parts missing text"))
		}
		return strings.TrimSpace(*parts[0].Text), nil
	}

	reason := candidate.FinishReason
	if reason == "" {
		reason = finishReasonUnknown
	}
	if reason == finishReasonSafety {
		s.logger.Warn("summarization stopped due to safety concerns", "finish_reason", reason)
		return "", apperrors.Wrap(apperrors.CodeSafetyBlocked, msgSafety, nil)
	}
	s.logger.Warn("summarization stopped for an unknown reason", "finish_reason", reason)
	return "", apperrors.Wrap(apperrors.CodeSummarizationFailed, msgUnknownReason, nil)
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= 100 {
		return text
	}
	return string(runes[:100]) + "..."
}
