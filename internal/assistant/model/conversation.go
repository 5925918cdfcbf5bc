package model

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

// Conversation holds the two history views for one chat session.
//
// Full is the complete dialogue (system, user, assistant turns) and is the
// context sent to the language model for classification. User carries only
// the user's messages plus the classifier's raw category decision per turn,
// and is the context used for parameter extraction.
//
// Both views are append-only for the lifetime of a session, and a user
// message is always appended to both before any sub-agent runs. A
// Conversation is mutated only by the orchestrator; sub-agents get read-only
// access, so it needs no internal locking as long as turns within one
// session are processed sequentially.
type Conversation struct {
	Full []*schema.Message
	User []*schema.Message
}

// NewConversation creates a session seeded with the assistant system prompt.
func NewConversation(systemPrompt string) *Conversation {
	return &Conversation{
		Full: []*schema.Message{schema.SystemMessage(systemPrompt)},
		User: []*schema.Message{},
	}
}

// AppendUser records a user message in both history views.
func (c *Conversation) AppendUser(content string) {
	msg := schema.UserMessage(content)
	c.Full = append(c.Full, msg)
	c.User = append(c.User, msg)
}

// AppendAssistant records the final assistant response in the full view.
func (c *Conversation) AppendAssistant(content string) {
	c.Full = append(c.Full, schema.AssistantMessage(content, nil))
}

// RecordIntentTrace records the classifier's raw category output into the
// user view, so parameter extraction later sees which agents handled each
// turn. It is distinct from the user-facing assistant response.
func (c *Conversation) RecordIntentTrace(categories string) {
	c.User = append(c.User, schema.AssistantMessage(categories, nil))
}

// LastUserMessage returns the content of the most recent user turn, or ""
// for an empty conversation.
func (c *Conversation) LastUserMessage() string {
	for i := len(c.User) - 1; i >= 0; i-- {
		if c.User[i] != nil && c.User[i].Role == schema.User {
			return c.User[i].Content
		}
	}
	return ""
}

// TranscriptStore archives finished turns outside the core. The conversation
// state itself lives in memory for the lifetime of a session; the store is
// write-behind and never read on the hot path.
type TranscriptStore interface {
	// AppendTurn appends one turn to the stored transcript for the session.
	AppendTurn(ctx context.Context, sessionID string, turn *schema.Message) error

	// LoadTranscript retrieves the archived transcript for a session.
	LoadTranscript(ctx context.Context, sessionID string) ([]*schema.Message, error)

	// ClearTranscript removes the archived transcript for a session.
	ClearTranscript(ctx context.Context, sessionID string) error
}
