//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/yt-summarizer/internal/bootstrap"
	"github.com/yanqian/yt-summarizer/internal/domain/summarizer"
	"github.com/yanqian/yt-summarizer/internal/domain/transcript"
	"github.com/yanqian/yt-summarizer/internal/infra/config"
	"github.com/yanqian/yt-summarizer/internal/infra/llm/gemini"
	"github.com/yanqian/yt-summarizer/internal/infra/youtube"
	httpiface "github.com/yanqian/yt-summarizer/internal/interface/http"
	"github.com/yanqian/yt-summarizer/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideSummaryConfig,
		provideTranscriptConfig,
		provideGeminiClient,
		provideSanitizer,
		youtube.NewClient,
		transcript.NewService,
		summarizer.NewService,
		wire.Bind(new(transcript.Provider), new(*youtube.Client)),
		wire.Bind(new(summarizer.GenerativeClient), new(*gemini.Client)),
		httpiface.NewErrorTable,
		httpiface.NewSummaryHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
