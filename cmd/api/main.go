// Command api serves the trivia question bank over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/trivia-api/internal/app"
	"github.com/gokatarajesh/trivia-api/internal/config"
)

const configTimeout = 10 * time.Second

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Str("app", "trivia-api").Logger()

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("trivia api stopped")
	}
}

func run() error {
	// configs/.env is a local convenience; production injects the environment directly.
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load("configs/.env"); err != nil {
			log.Warn().Err(err).Msg("could not load .env file")
		}
	}

	loadCtx, cancel := context.WithTimeout(context.Background(), configTimeout)
	defer cancel()
	cfg, err := config.Load(loadCtx)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	instance, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	return instance.Run(ctx)
}
