package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The configured logger is built inside the injector, so wiring failures
	// go to a bare JSON handler on stderr.
	bootLog := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With("service", "yt-summarizer")

	app, err := initializeApp()
	if err != nil {
		bootLog.Error("failed to wire application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		stop()
		bootLog.Error("application stopped with error", "error", err)
		os.Exit(1)
	}
}
