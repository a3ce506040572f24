// Package main is the entry point for termwordle.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/samdwyer/termwordle/internal/config"
	"github.com/samdwyer/termwordle/internal/game"
	"github.com/samdwyer/termwordle/internal/logging"
	"github.com/samdwyer/termwordle/internal/telemetry"
	"github.com/samdwyer/termwordle/internal/ui"
	"github.com/samdwyer/termwordle/internal/words"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	summaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func main() {
	// Load .env file for local development. Not fatal: variables may be set directly.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "termwordle",
		Short:         "Guess the five-letter word in six tries",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), farewell(stats))
			return nil
		},
	}
}

// run plays one session. The terminal is restored before it returns, on
// every path including panics.
func run(ctx context.Context) (game.Stats, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return game.Stats{}, err
	}

	log, closeLog, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return game.Stats{}, err
	}
	defer func() { _ = closeLog() }()

	if cfg.Telemetry {
		setupHoneycombEnv()
		shutdown, err := telemetry.Setup(ctx, log)
		if err != nil {
			log.Warn().Err(err).Msg("telemetry setup failed, continuing without it")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Warn().Err(err).Msg("telemetry shutdown failed")
				}
			}()
		}
	}

	repo, err := words.Load(words.Sources{AnswersFile: cfg.AnswersFile, AllowedFile: cfg.AllowedFile})
	if err != nil {
		return game.Stats{}, err
	}
	policy, err := game.ParseMergePolicy(cfg.KeyboardPolicy)
	if err != nil {
		return game.Stats{}, err
	}
	log.Info().
		Int("secrets", repo.SecretCount()).
		Int("acceptable", repo.AcceptableCount()).
		Msg("word lists loaded")

	screen, err := ui.NewScreen()
	if err != nil {
		return game.Stats{}, err
	}
	defer func() {
		if p := recover(); p != nil {
			screen.Close()
			panic(p)
		}
		screen.Close()
	}()

	renderer := ui.NewRenderer(screen, ui.Flash{Frames: cfg.FlashFrames, Delay: cfg.FlashDelay})
	session := game.NewSession(repo, screen, renderer,
		game.Config{Seed: cfg.Seed, KeyboardPolicy: policy},
		game.WithLogger(log),
		game.WithTracer(telemetry.Tracer("game")),
	)

	stats, err := session.Run(ctx)
	if err != nil {
		logFailure(log, err)
		return stats, fmt.Errorf("session: %w", err)
	}
	return stats, nil
}

func logFailure(log zerolog.Logger, err error) {
	if errors.Is(err, game.ErrInputClosed) {
		log.Error().Err(err).Msg("terminal input closed")
		return
	}
	log.Error().Err(err).Msg("session failed")
}

// farewell summarises the session for the plain terminal.
func farewell(s game.Stats) string {
	if s.Played == 0 {
		return subtleStyle.Render("No rounds finished. Bye!")
	}
	return summaryStyle.Render(fmt.Sprintf("Won %d of %d (%d%%), best streak %d.",
		s.Won, s.Played, s.WinRate(), s.MaxStreak))
}

// setupHoneycombEnv fills the OTEL exporter variables from Honeycomb
// settings when the standard ones are not set.
func setupHoneycombEnv() {
	apiKey := os.Getenv("HONEYCOMB_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-honeycomb-team="+apiKey)
	}
}
