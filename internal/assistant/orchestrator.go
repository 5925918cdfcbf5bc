package assistant

import (
	"context"
	"strings"
	"sync"

	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/agents"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/extract"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/gateway"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/model"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/prompts"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/travel/flights"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/travel/hotels"
	logx "github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/pkg/logger"
)

// SubAgent is one intent-specialized component producing a formatted text
// contribution for the current turn. An error return is reserved for gateway
// failures; every search failure is already rendered as text by the agent.
type SubAgent interface {
	Run(ctx context.Context, conv *model.Conversation) (string, error)
}

// Classifier produces the intent set and raw trace for the newest user turn.
type Classifier interface {
	Classify(ctx context.Context, conv *model.Conversation) (model.IntentSet, string, error)
}

// Orchestrator routes each user message through classification to the
// applicable sub-agents and aggregates their outputs. It holds no per-session
// state: callers own a Conversation per session and pass it in each turn, so
// one Orchestrator can serve many sessions. Turns within one session must be
// processed sequentially.
type Orchestrator struct {
	classifier Classifier
	subAgents  map[model.Intent]SubAgent
}

// Config holds everything needed to compose the assistant end-to-end.
type Config struct {
	APIKey     string
	BaseURL    string
	Classifier model.ClassifierModelConfig
	Chat       model.ChatModelConfig
	Flights    flights.Config
	Hotels     hotels.Config
}

// New composes the gateway, extractor, search clients, and all four
// sub-agents from configuration.
func New(ctx context.Context, cfg Config) (*Orchestrator, error) {
	gw, err := gateway.New(ctx, gateway.Config{
		APIKey:           cfg.APIKey,
		BaseURL:          cfg.BaseURL,
		ClassifierConfig: &cfg.Classifier,
		ChatConfig:       &cfg.Chat,
	})
	if err != nil {
		return nil, err
	}

	extractor := extract.New(gw)
	return NewOrchestrator(
		NewIntentClassifier(gw),
		agents.NewFlightAgent(extractor, flights.NewClient(cfg.Flights)),
		agents.NewHotelAgent(extractor, hotels.NewClient(cfg.Hotels)),
		agents.NewLocationAgent(gw),
		agents.NewGeneralAgent(gw),
	), nil
}

// NewOrchestrator wires an orchestrator from already-built components.
func NewOrchestrator(classifier Classifier, flight, hotel, location, general SubAgent) *Orchestrator {
	return &Orchestrator{
		classifier: classifier,
		subAgents: map[model.Intent]SubAgent{
			model.IntentFlight:   flight,
			model.IntentHotel:    hotel,
			model.IntentLocation: location,
			model.IntentGeneral:  general,
		},
	}
}

// NewSession creates a Conversation seeded with the assistant persona.
func NewSession() *model.Conversation {
	return model.NewConversation(prompts.AssistantSystem())
}

// ProcessInput runs one turn: classify the message, run the selected
// sub-agents, and aggregate their outputs into the assistant response.
//
// The response always carries the four agent slots in the fixed order
// flight, hotel, location, general, joined with line breaks, with an empty
// segment for every agent that did not run. Selected agents run
// concurrently; the fixed slot layout keeps the output independent of
// completion order, and the conversation is mutated only here, before and
// after the fan-out.
func (o *Orchestrator) ProcessInput(ctx context.Context, conv *model.Conversation, input string) (string, error) {
	conv.AppendUser(input)

	set, trace, err := o.classifier.Classify(ctx, conv)
	if err != nil {
		return "", err
	}
	conv.RecordIntentTrace(trace)

	var (
		wg    sync.WaitGroup
		slots [len(model.AllIntents)]string
		errs  [len(model.AllIntents)]error
	)
	for i, intent := range model.AllIntents {
		if !set.Has(intent) {
			continue
		}
		logx.Debug().Str("agent", string(intent)).Msg("running sub-agent")
		wg.Add(1)
		go func(i int, agent SubAgent) {
			defer wg.Done()
			slots[i], errs[i] = agent.Run(ctx, conv)
		}(i, o.subAgents[intent])
	}
	wg.Wait()

	// gateway failures in the selected agents terminate the turn; report
	// them in the same fixed order the slots use
	for i, intent := range model.AllIntents {
		if errs[i] != nil {
			logx.Error().Err(errs[i]).Str("agent", string(intent)).Msg("sub-agent failed")
			return "", errs[i]
		}
	}

	response := strings.Join(slots[:], "\n")
	conv.AppendAssistant(response)
	return response, nil
}
