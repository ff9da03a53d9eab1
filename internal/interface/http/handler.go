package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/yt-summarizer/internal/domain/summarizer"
	"github.com/yanqian/yt-summarizer/internal/domain/transcript"
	apperrors "github.com/yanqian/yt-summarizer/pkg/errors"
)

// SummaryHandler wires the HTTP transport to the transcript and summarizer services.
type SummaryHandler struct {
	transcripts transcript.Service
	sanitizer   *transcript.Sanitizer
	summarizer  summarizer.Service
	logger      *slog.Logger
}

// NewSummaryHandler constructs the summarize endpoint handler.
func NewSummaryHandler(transcripts transcript.Service, sanitizer *transcript.Sanitizer, summarySvc summarizer.Service, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{
		transcripts: transcripts,
		sanitizer:   sanitizer,
		summarizer:  summarySvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// Summarize fetches, sanitizes and summarizes the transcript of req.VideoID.
func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req summarizer.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.Wrap(apperrors.CodeBadRequest, "Bad Request", err))
		return
	}

	videoID := strings.TrimSpace(req.VideoID)
	if videoID == "" {
		abortWithError(c, apperrors.Wrap(apperrors.CodeInvalidInput, "No video_id provided.", nil))
		return
	}

	ctx := c.Request.Context()
	text, err := h.transcripts.Fetch(ctx, videoID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	text = h.sanitizer.Sanitize(text)

	summary, err := h.summarizer.Summarize(ctx, text, req.Style)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.logger.Info("summary generated", "video_id", videoID, "request_id", c.GetString(requestIDKey))
	c.JSON(http.StatusOK, summarizer.Response{Summary: summary})
}

// Health reports liveness.
func (h *SummaryHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
