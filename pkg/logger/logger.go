package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/yanqian/yt-summarizer/internal/infra/config"
)

// New constructs a JSON slog logger. When cfg.Log.File is set, records are
// teed to a size-rotated file next to stdout.
func New(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.Log.Level)
	handler := slog.NewJSONHandler(output(cfg.Log), &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("service", "yt-summarizer")
}

func output(cfg config.LogConfig) io.Writer {
	path := strings.TrimSpace(cfg.File)
	if path == "" {
		return os.Stdout
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return os.Stdout
	}
	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
	return io.MultiWriter(os.Stdout, file)
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
