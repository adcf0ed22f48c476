// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command kiosk shows the homepage hero banner and notice board on the lobby
// screen, reading content from the masjid content API.
//
//	kiosk --api-url http://masjid.local:8080 --log-file /var/log/kiosk.log
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/masjid/internal/kiosk"
	"github.com/taibuivan/masjid/internal/platform/constants"
	"github.com/taibuivan/masjid/internal/rotation"
)

type flags struct {
	apiURL   string
	viewport string
	interval time.Duration
	refresh  time.Duration
	logFile  string
	debug    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	options := &flags{}

	command := &cobra.Command{
		Use:   "kiosk",
		Short: "Lobby display for the masjid homepage rotation",
		Long: `Runs the hero banner and the notice board in the terminal.

Keys: 1-9 select a slide, left/right browse, q quits.
Moving the mouse over the notice board pauses it.`,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, _ []string) error {
			return run(command.Context(), options)
		},
	}

	command.Flags().StringVar(&options.apiURL, "api-url", "http://localhost:8080", "base URL of the content API")
	command.Flags().StringVar(&options.viewport, "viewport", string(rotation.ViewportDesktop), "layout: desktop or mobile")
	command.Flags().DurationVar(&options.interval, "interval", constants.HeroInterval, "time between hero slides")
	command.Flags().DurationVar(&options.refresh, "refresh", constants.KioskRefreshInterval, "how often content is re-fetched")
	command.Flags().StringVar(&options.logFile, "log-file", "", "write JSON logs to this file (the terminal belongs to the display)")
	command.Flags().BoolVar(&options.debug, "debug", false, "log at debug level")

	return command
}

func run(ctx context.Context, options *flags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var output io.Writer = io.Discard
	if options.logFile != "" {
		file, err := os.OpenFile(options.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer file.Close()
		output = file
	}

	level := slog.LevelInfo
	if options.debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", "masjid-kiosk"))
	slog.SetDefault(log)

	log.Info("kiosk_starting",
		slog.String("api_url", options.apiURL),
		slog.String("viewport", options.viewport),
		slog.Duration("interval", options.interval),
	)

	return kiosk.Run(ctx, kiosk.NewClient(options.apiURL, nil), kiosk.Options{
		Viewport: rotation.ParseViewport(options.viewport),
		Interval: options.interval,
		Refresh:  options.refresh,
		Logger:   log,
	})
}
