package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/model"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/core"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/travel/flights"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/travel/hotels"
	logx "github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/pkg/logger"
)

// DemoConfig defines the parameters for the scripted demo, sourced from
// environment variables (loaded from .env for local runs).
type DemoConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Assistant configs
	Classifier model.ClassifierModelConfig
	Chat       model.ChatModelConfig

	// Search providers
	Flights flights.Config
	Hotels  hotels.Config
}

func main() {
	fmt.Println("NaviBlu Travel Assistant demo...")
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var cfg DemoConfig
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

	testQueries := []struct {
		description string
		query       string
	}{
		{
			description: "Greeting and capability inquiry",
			query:       "Hi! What can you help me with?",
		},
		{
			description: "One-way flight search",
			query:       "Find me a flight from Boston to Miami on October 12 for 2 adults",
		},
		{
			description: "Hotel search in the same conversation",
			query:       "I also need a hotel in Miami from October 12 to October 15 for 2 guests",
		},
		{
			description: "Location knowledge question",
			query:       "What are the best neighborhoods to stay in Miami?",
		},
	}

	conv := assistant.NewSession()

	for i, test := range testQueries {
		fmt.Printf("\nTest %d: %s\n", i+1, test.description)
		fmt.Printf("Query: %q\n", test.query)
		fmt.Println("Processing...")

		response, err := orch.ProcessInput(ctx, conv, test.query)
		if err != nil {
			log.Fatalf("Failed to process test %d: %v", i+1, err)
		}

		fmt.Printf("Response %d:\n%s\n", i+1, response)
		fmt.Println("────────────────────────────────────────")

		// slight delay between turns for readability
		time.Sleep(500 * time.Millisecond)
	}

	fmt.Println("All demo turns completed successfully.")
}
