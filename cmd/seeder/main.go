package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/triviaworks/trivia-api/internal/config"
	"github.com/triviaworks/trivia-api/internal/db/repository"
	"github.com/triviaworks/trivia-api/internal/importer"
	"github.com/triviaworks/trivia-api/internal/logging"
	"github.com/triviaworks/trivia-api/internal/trivia"
)

func main() {
	var (
		perDifficulty = flag.Int("per-difficulty", 20, "Questions to fetch per difficulty level")
		timeout       = flag.Duration("timeout", 60*time.Second, "Overall import timeout")
	)
	flag.Parse()

	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load("configs/.env"); err != nil {
			log.Printf("Warning: could not load .env file: %v", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := logging.New(cfg.Name, cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Postgres.DSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	questionRepo := repository.NewQuestionRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	svc := trivia.NewService(questionRepo, categoryRepo, trivia.ServiceOptions{}, logger)

	client := importer.NewOpenTDBClient("", nil)
	imp := importer.New(client, svc, categoryRepo, logger)

	inserted, err := imp.Run(ctx, *perDifficulty)
	if err != nil {
		logger.Fatal().Err(err).Int("inserted", inserted).Msg("import failed")
	}
	logger.Info().Int("inserted", inserted).Msg("import complete")
}
