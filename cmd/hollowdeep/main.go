// Package main is the entry point for Hollowdeep.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/hollowdeep/internal/config"
	"github.com/samdwyer/hollowdeep/internal/game"
	"github.com/samdwyer/hollowdeep/internal/persist"
	"github.com/samdwyer/hollowdeep/internal/telemetry"
	"github.com/samdwyer/hollowdeep/internal/ui"
)

func main() {
	// Load .env for local development. Not fatal, env vars might be set
	// directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := telemetry.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	if cfg.Telemetry.Enabled {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Continue without telemetry, the game still works.
			logger.Warn("telemetry setup failed", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error("shutting down telemetry", zap.Error(err))
				}
			}()
		}
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("session ended with error", zap.Error(err))
		log.Fatalf("Game error: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Close()

	for {
		choice := ui.MainMenu(screen)
		if choice == ui.MenuQuit {
			return nil
		}

		app := ui.NewApp(screen, logger, cfg.Save.Path)

		var engine *game.Engine
		opts := game.Options{
			Width:    cfg.Map.Width,
			Height:   cfg.Map.Height,
			Seed:     cfg.Map.Seed,
			Logger:   logger,
			Targeter: app,
		}
		switch choice {
		case ui.MenuNewGame:
			engine, err = game.New(ctx, opts)
			if err != nil {
				return fmt.Errorf("starting new game: %w", err)
			}
		case ui.MenuContinue:
			sg, err := persist.Load(cfg.Save.Path)
			if errors.Is(err, persist.ErrNoSavedGame) {
				logger.Info("no saved game to continue", zap.Error(err))
				continue
			}
			if err != nil {
				return fmt.Errorf("loading saved game: %w", err)
			}
			engine, err = game.Resume(ctx, sg.Entities, sg.PlayerID, sg.Game, opts)
			if err != nil {
				return fmt.Errorf("resuming saved game: %w", err)
			}
		}

		app.SetEngine(engine)
		if err := app.Run(ctx); err != nil {
			// The session already ended; surface the save failure without
			// losing the terminal.
			logger.Error("session ended with save failure", zap.Error(err))
		}
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env
// vars so the exporter points at Honeycomb.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_HOLLOWDEEP_API_KEY")
	dataset := os.Getenv("HONEYCOMB_HOLLOWDEEP_DATASET")
	if dataset == "" {
		dataset = "hollowdeep"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
