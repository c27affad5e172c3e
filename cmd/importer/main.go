// Command importer seeds the question bank from Open Trivia DB or The Trivia API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/trivia-api/internal/app"
	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/importer"
	"github.com/gokatarajesh/trivia-api/internal/logging"
)

func main() {
	var (
		source = flag.String("source", "", "Question source: opentdb or triviaapi (defaults to IMPORT_SOURCE)")
		amount = flag.Int("amount", 0, "Number of questions to fetch (defaults to IMPORT_AMOUNT)")
	)
	flag.Parse()

	if err := run(*source, *amount); err != nil {
		log.Error().Err(err).Msg("import failed")
		os.Exit(1)
	}
}

// run owns every deferred cleanup so main can exit non-zero without skipping them.
func run(source string, amount int) error {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load("configs/.env"); err != nil {
			log.Warn().Err(err).Msg("could not load .env file")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if source != "" {
		cfg.Import.Source = source
	}
	if amount > 0 {
		cfg.Import.Amount = amount
	}

	logger := logging.New(cfg.Name+"-importer", cfg.Env)

	provider, err := importer.NewProvider(cfg.Import)
	if err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, cfg.Postgres.ConnString())
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	svc := app.NewTriviaService(cfg, pool, nil, logger)
	report, err := importer.New(svc, logger).Run(ctx, provider, cfg.Import.Amount)
	if err != nil {
		return fmt.Errorf("imported %d before failing: %w", report.Imported, err)
	}
	return nil
}
