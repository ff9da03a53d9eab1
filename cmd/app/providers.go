package main

import (
	"log/slog"

	"github.com/yanqian/yt-summarizer/internal/domain/summarizer"
	"github.com/yanqian/yt-summarizer/internal/domain/transcript"
	"github.com/yanqian/yt-summarizer/internal/infra/config"
	"github.com/yanqian/yt-summarizer/internal/infra/llm/gemini"
)

func provideSummaryConfig(cfg *config.Config) summarizer.Config {
	return summarizer.Config{
		DefaultStyle: summarizer.Style(cfg.Summary.DefaultStyle),
		Temperature:  cfg.LLM.Temperature,
	}
}

func provideGeminiClient(cfg *config.Config) (*gemini.Client, error) {
	return gemini.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.Timeout)
}

func provideTranscriptConfig(cfg *config.Config) transcript.Config {
	return transcript.Config{
		Languages: cfg.Transcript.Languages,
		Timeout:   cfg.Transcript.Timeout,
	}
}

func provideSanitizer(cfg *config.Config, logger *slog.Logger) *transcript.Sanitizer {
	words := cfg.Sanitizer.Blocklist
	if len(words) == 0 {
		words = transcript.DefaultBlocklist
	} else {
		logger.Info("using configured sanitizer blocklist", "words", len(words))
	}
	return transcript.NewSanitizer(words)
}
