package agents

import (
	"context"
	"strings"

	"github.com/cloudwego/eino/schema"
)

// Completer is the slice of the language-model gateway the knowledge agents
// use directly.
type Completer interface {
	Complete(ctx context.Context, msgs []*schema.Message) (string, error)
}

// joinLines renders report lines as markdown, terminating every line with a
// hard break so chat UIs keep the layout. The output format is fixed; the
// orchestrator concatenates these blocks verbatim.
func joinLines(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("  \n")
	}
	return b.String()
}
