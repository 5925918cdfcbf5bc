package gateway

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/model"
	errx "github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/core/error"
	logx "github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/pkg/logger"
)

// Config holds the configuration for gateway creation.
type Config struct {
	APIKey           string
	BaseURL          string
	ClassifierConfig *model.ClassifierModelConfig
	ChatConfig       *model.ChatModelConfig
}

// Gateway is the stateless wrapper over the language-model backend. It holds
// two chat models built from one client: a temperature-0 model for intent
// classification and a default-temperature model for everything else. Any
// failure surfaces as a gateway error via errx.
type Gateway struct {
	classifier *gemini.ChatModel
	chat       *gemini.ChatModel

	ClassifierModelName string
	ChatModelName       string
}

// New creates both chat models with the given configuration.
func New(ctx context.Context, cfg Config) (*Gateway, error) {
	if cfg.ClassifierConfig == nil || cfg.ChatConfig == nil {
		return nil, fmt.Errorf("gateway: model configs are nil")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	classifierModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.ClassifierConfig.Model,
		Temperature: &cfg.ClassifierConfig.Temperature,
		MaxTokens:   &cfg.ClassifierConfig.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating classifier model")
		return nil, fmt.Errorf("error creating classifier model: %w", err)
	}

	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.ChatConfig.Model,
		Temperature: &cfg.ChatConfig.Temperature,
		MaxTokens:   &cfg.ChatConfig.MaxTokens,
		ThinkingConfig: &genai.ThinkingConfig{
			IncludeThoughts: true,
			ThinkingBudget:  genai.Ptr(int32(2000)),
		},
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating chat model")
		return nil, fmt.Errorf("error creating chat model: %w", err)
	}

	return &Gateway{
		classifier:          classifierModel,
		chat:                chatModel,
		ClassifierModelName: cfg.ClassifierConfig.Model,
		ChatModelName:       cfg.ChatConfig.Model,
	}, nil
}

// Classify issues a completion on the deterministic classification model.
func (g *Gateway) Classify(ctx context.Context, msgs []*schema.Message) (string, error) {
	return g.generate(ctx, g.classifier, g.ClassifierModelName, msgs)
}

// Complete issues a completion on the default chat model.
func (g *Gateway) Complete(ctx context.Context, msgs []*schema.Message) (string, error) {
	return g.generate(ctx, g.chat, g.ChatModelName, msgs)
}

func (g *Gateway) generate(ctx context.Context, cm *gemini.ChatModel, name string, msgs []*schema.Message) (string, error) {
	out, err := cm.Generate(ctx, msgs)
	if err != nil {
		logx.Error().Err(err).Str("model", name).Msg("LLM request failed")
		return "", errx.WrapGateway(err)
	}
	if out == nil {
		return "", errx.WrapGateway(fmt.Errorf("model %s returned empty completion", name))
	}
	logx.Debug().Str("model", name).Int("messages", len(msgs)).Msg("LLM completion")
	return out.Content, nil
}
