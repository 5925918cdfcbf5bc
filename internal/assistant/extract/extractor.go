package extract

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"

	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/model"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/prompts"
	errx "github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/core/error"
	logx "github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/pkg/logger"
)

// Completer is the slice of the language-model gateway the extractor uses.
type Completer interface {
	Complete(ctx context.Context, msgs []*schema.Message) (string, error)
}

// Extractor turns a free-text conversation excerpt into a structured query
// record via a single model call. The prompt tells the model to make an
// educated guess for unrecoverable fields, so a returned query may be a
// low-confidence guess; a malformed or constraint-violating response is an
// extraction error. Exactly one attempt per invocation, no retry.
type Extractor struct {
	llm Completer
	now func() time.Time
}

func New(llm Completer) *Extractor {
	return &Extractor{llm: llm, now: time.Now}
}

// FlightQuery extracts the flight search parameters from the user-message
// history view.
func (e *Extractor) FlightQuery(ctx context.Context, userHistory []*schema.Message) (model.FlightQuery, error) {
	var q model.FlightQuery

	prompt, err := prompts.RenderFlightExtraction(ctx, historyContext(userHistory), e.today())
	if err != nil {
		return q, errx.WrapExtraction(err)
	}

	raw, err := e.llm.Complete(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		return q, err
	}

	if err := decodeStrict(raw, &q); err != nil {
		logx.Warn().Err(err).Str("component", "extractor").Msg("flight extraction did not parse")
		return model.FlightQuery{}, errx.WrapExtraction(err)
	}
	q.Normalize()
	if err := q.Validate(); err != nil {
		logx.Warn().Err(err).Str("component", "extractor").Msg("flight extraction failed validation")
		return model.FlightQuery{}, errx.WrapExtraction(err)
	}
	return q, nil
}

// HotelQuery extracts the hotel search parameters from the user-message
// history view.
func (e *Extractor) HotelQuery(ctx context.Context, userHistory []*schema.Message) (model.HotelQuery, error) {
	var q model.HotelQuery

	prompt, err := prompts.RenderHotelExtraction(ctx, historyContext(userHistory), e.today())
	if err != nil {
		return q, errx.WrapExtraction(err)
	}

	raw, err := e.llm.Complete(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		return q, err
	}

	if err := decodeStrict(raw, &q); err != nil {
		logx.Warn().Err(err).Str("component", "extractor").Msg("hotel extraction did not parse")
		return model.HotelQuery{}, errx.WrapExtraction(err)
	}
	q.Normalize()
	if err := q.Validate(); err != nil {
		logx.Warn().Err(err).Str("component", "extractor").Msg("hotel extraction failed validation")
		return model.HotelQuery{}, errx.WrapExtraction(err)
	}
	return q, nil
}

func (e *Extractor) today() string {
	return e.now().UTC().Format("2006-01-02")
}

// historyContext renders the user-message history view as plain lines the
// extraction prompt embeds.
func historyContext(messages []*schema.Message) string {
	var b strings.Builder
	for _, msg := range messages {
		if msg == nil || msg.Content == "" {
			continue
		}
		switch msg.Role {
		case schema.User:
			b.WriteString("UserMessage(" + msg.Content + ")\n")
		case schema.Assistant:
			b.WriteString("AssistantMessage(" + msg.Content + ")\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// decodeStrict parses the model's raw text as one JSON object. Markdown code
// fences around the object are tolerated; anything else non-JSON is an error.
func decodeStrict(raw string, out any) error {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
		raw = strings.TrimSpace(raw)
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}
