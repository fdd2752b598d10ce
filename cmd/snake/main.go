// Package main is the entry point for The Snake.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/AkesSpur/the-snake/internal/game"
	"github.com/AkesSpur/the-snake/internal/gamedata"
	"github.com/AkesSpur/the-snake/internal/grid"
	"github.com/AkesSpur/the-snake/internal/telemetry"
	"github.com/AkesSpur/the-snake/internal/ui"
)

func main() {
	var cfg game.Config
	flag.IntVar(&cfg.Width, "width", game.DefaultWidth, "board width in cells")
	flag.IntVar(&cfg.Height, "height", game.DefaultHeight, "board height in cells")
	flag.IntVar(&cfg.TickRate, "rate", game.DefaultTickRate, "simulation ticks per second")
	flag.Int64Var(&cfg.Seed, "seed", 0, "random seed (0 = time-derived)")
	flag.Parse()

	// Load .env file for local development
	// This makes HONEYCOMB_SNAKE_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	theme := gamedata.MustLoadTheme()

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Close()

	board := grid.Board{Width: cfg.Width, Height: cfg.Height}
	renderer := ui.NewRenderer(screen, theme, board)

	events := make(chan game.Event, 16)
	go ui.Pump(screen, events)

	pacer := game.NewTickerPacer(cfg.TickRate)
	defer pacer.Stop()

	g := game.New(cfg, renderer, pacer, events)
	if err := g.Run(ctx); err != nil {
		screen.Close()
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_SNAKE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_SNAKE_DATASET")
	if dataset == "" {
		dataset = "the-snake" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
