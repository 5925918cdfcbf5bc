package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/model"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/repo"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/core"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/httpapi"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/travel/flights"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/travel/hotels"
	logx "github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/pkg/logger"
	pkgredis "github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/pkg/redis"
)

// AppConfig defines all configurable parameters for the API server, sourced
// from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	Addr        string `envconfig:"HTTP_ADDR" default:":8080"`

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Assistant configs
	Classifier model.ClassifierModelConfig
	Chat       model.ChatModelConfig
	Session    model.SessionConfig

	// Search providers
	Flights flights.Config
	Hotels  hotels.Config

	// Transcript archival; leave REDIS_URL empty to disable
	Redis pkgredis.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}
	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(cfg.Environment)})

	orch, err := assistant.New(ctx, assistant.Config{
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		Classifier: cfg.Classifier,
		Chat:       cfg.Chat,
		Flights:    cfg.Flights,
		Hotels:     cfg.Hotels,
	})
	if err != nil {
		log.Fatalf("Failed to build assistant: %v", err)
	}

	var store model.TranscriptStore
	if cfg.Redis.URL != "" {
		rdb, err := cfg.Redis.New()
		if err != nil {
			log.Fatalf("Failed to initialise Redis client: %v", err)
		}
		defer rdb.Close()

		ttl, err := time.ParseDuration(cfg.Session.TTL)
		if err != nil {
			log.Fatalf("Invalid SESSION_TTL '%s': %v", cfg.Session.TTL, err)
		}
		store = repo.NewRedisTranscriptStore(rdb, ttl)
		logx.Info().Str("ttl", cfg.Session.TTL).Msg("transcript archival enabled")
	}

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: httpapi.NewServer(orch, store).Routes(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logx.Info().Str("addr", cfg.Addr).Msg("starting NaviBlu API server")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
