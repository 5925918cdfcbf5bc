package prompts

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

//go:embed template/assistant_system_prompt.txt
var assistantSystemPrompt string

//go:embed template/classifier_prompt.txt
var classifierSystemPrompt string

//go:embed template/flight_extract_prompt.txt
var flightExtractPrompt string

//go:embed template/hotel_extract_prompt.txt
var hotelExtractPrompt string

//go:embed template/location_prompt.txt
var locationPrompt string

//go:embed template/general_prompt.txt
var generalPrompt string

// AssistantSystem is the persona prompt seeding every conversation.
func AssistantSystem() string {
	return assistantSystemPrompt
}

// ClassifierSystem is the fixed few-shot system prompt for intent
// classification. It constrains the model to the four known labels.
func ClassifierSystem() string {
	return classifierSystemPrompt
}

// RenderFlightExtraction renders the flight parameter extraction prompt with
// the user-message history and today's date.
func RenderFlightExtraction(ctx context.Context, history, date string) (string, error) {
	return render(ctx, flightExtractPrompt, map[string]any{
		"History": history,
		"Date":    date,
	})
}

// RenderHotelExtraction renders the hotel parameter extraction prompt with
// the user-message history and today's date.
func RenderHotelExtraction(ctx context.Context, history, date string) (string, error) {
	return render(ctx, hotelExtractPrompt, map[string]any{
		"History": history,
		"Date":    date,
	})
}

// RenderLocation renders the attractions/activities prompt around the raw
// current user message.
func RenderLocation(ctx context.Context, query string) (string, error) {
	return render(ctx, locationPrompt, map[string]any{"Query": query})
}

// RenderGeneral renders the general travel Q&A prompt around the raw current
// user message.
func RenderGeneral(ctx context.Context, query string) (string, error) {
	return render(ctx, generalPrompt, map[string]any{"Query": query})
}

// render formats one template via the Eino prompt component. Go template
// syntax is used so the literal JSON braces in the extraction schemas pass
// through untouched.
func render(ctx context.Context, tpl string, vars map[string]any) (string, error) {
	t := prompt.FromMessages(schema.GoTemplate, schema.UserMessage(tpl))
	msgs, err := t.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("prompt render: empty result")
	}
	return msgs[0].Content, nil
}
