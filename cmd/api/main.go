package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/talentbase/recruiting-api/internal/api"
	"github.com/talentbase/recruiting-api/internal/core/ports"
	"github.com/talentbase/recruiting-api/internal/infrastructure/ai"
	"github.com/talentbase/recruiting-api/internal/infrastructure/db/postgres"
	"github.com/talentbase/recruiting-api/internal/pkg/config"
	"github.com/talentbase/recruiting-api/pkg/logger"
)

func main() {
	// A missing .env file is fine; the environment itself may carry everything.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, cfg.DB.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	var generator ports.TextGenerator
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGemini(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Fatal().Err(err).Msg("generative client initialization failed")
		}
		generator = gemini
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set; AI-assist endpoints will report the generator as unavailable")
	}

	e := api.NewRouter(pool, generator, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
