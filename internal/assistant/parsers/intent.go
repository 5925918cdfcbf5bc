package parsers

import (
	"strings"

	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/model"
	logx "github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/pkg/logger"
)

// basic safety limit to avoid pathological classifier output
const maxLabelTokens = 32

// ParseIntentSet maps the classifier's raw comma-separated output to the
// closed intent set. Tokens are trimmed and lowercased before comparison.
// A token outside the four known labels maps to the general intent so
// garbled model output still produces an answer, and an empty label set
// falls back to general for the same reason. The returned set is never
// empty.
func ParseIntentSet(raw string) model.IntentSet {
	set := model.IntentSet{}

	tokens := strings.Split(raw, ",")
	if len(tokens) > maxLabelTokens {
		logx.Warn().
			Str("component", "intent_parser").
			Int("tokens", len(tokens)).
			Msg("classifier output token count capped")
		tokens = tokens[:maxLabelTokens]
	}

	for _, tok := range tokens {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		if model.KnownIntent(tok) {
			set.Add(model.Intent(tok))
			continue
		}
		logx.Warn().
			Str("component", "intent_parser").
			Str("token", tok).
			Msg("unknown classifier label, falling back to general")
		set.Add(model.IntentGeneral)
	}

	if len(set) == 0 {
		set.Add(model.IntentGeneral)
	}
	return set
}
