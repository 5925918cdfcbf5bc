package assistant

import (
	"context"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/model"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/parsers"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/prompts"
	logx "github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/pkg/logger"
)

// classifyClient is the slice of the gateway the classifier uses: the
// temperature-0 model, so the same message classifies the same way.
type classifyClient interface {
	Classify(ctx context.Context, msgs []*schema.Message) (string, error)
}

// IntentClassifier maps a user message, in the context of the full
// conversation, to the set of intents that should handle it.
type IntentClassifier struct {
	llm classifyClient
}

func NewIntentClassifier(llm classifyClient) *IntentClassifier {
	return &IntentClassifier{llm: llm}
}

// Classify returns the intent set for the newest user turn together with the
// classifier's raw output, which the orchestrator records as the turn's
// trace in the user history view.
func (c *IntentClassifier) Classify(ctx context.Context, conv *model.Conversation) (model.IntentSet, string, error) {
	msgs := make([]*schema.Message, 0, len(conv.Full)+1)
	msgs = append(msgs, schema.SystemMessage(prompts.ClassifierSystem()))
	msgs = append(msgs, conv.Full...)

	raw, err := c.llm.Classify(ctx, msgs)
	if err != nil {
		return nil, "", err
	}

	raw = strings.ToLower(strings.TrimSpace(raw))
	set := parsers.ParseIntentSet(raw)
	logx.Debug().Str("categories", raw).Msg("classified user query")
	return set, raw, nil
}
