package agents

import (
	"context"

	"github.com/cloudwego/eino/schema"

	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/model"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/prompts"
)

// LocationAgent answers questions about tourist attractions and activities
// with a single model call around the raw current user message. It calls no
// external API; a gateway failure propagates unchanged.
type LocationAgent struct {
	llm Completer
}

func NewLocationAgent(llm Completer) *LocationAgent {
	return &LocationAgent{llm: llm}
}

func (a *LocationAgent) Run(ctx context.Context, conv *model.Conversation) (string, error) {
	prompt, err := prompts.RenderLocation(ctx, conv.LastUserMessage())
	if err != nil {
		return "", err
	}
	return a.llm.Complete(ctx, []*schema.Message{schema.UserMessage(prompt)})
}

// GeneralAgent answers general travel questions the other agents don't
// cover, including meta-questions about the assistant itself.
type GeneralAgent struct {
	llm Completer
}

func NewGeneralAgent(llm Completer) *GeneralAgent {
	return &GeneralAgent{llm: llm}
}

func (a *GeneralAgent) Run(ctx context.Context, conv *model.Conversation) (string, error) {
	prompt, err := prompts.RenderGeneral(ctx, conv.LastUserMessage())
	if err != nil {
		return "", err
	}
	return a.llm.Complete(ctx, []*schema.Message{schema.UserMessage(prompt)})
}
