package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/model"
)

func TestParseIntentSet(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []model.Intent
	}{
		{
			name: "single label",
			raw:  "flight",
			want: []model.Intent{model.IntentFlight},
		},
		{
			name: "multiple labels with spaces",
			raw:  "flight, hotel, location",
			want: []model.Intent{model.IntentFlight, model.IntentHotel, model.IntentLocation},
		},
		{
			name: "mixed case",
			raw:  "Flight, HOTEL",
			want: []model.Intent{model.IntentFlight, model.IntentHotel},
		},
		{
			name: "empty output falls back to general",
			raw:  "",
			want: []model.Intent{model.IntentGeneral},
		},
		{
			name: "whitespace only falls back to general",
			raw:  "  , ,  ",
			want: []model.Intent{model.IntentGeneral},
		},
		{
			name: "unknown token maps to general",
			raw:  "weather",
			want: []model.Intent{model.IntentGeneral},
		},
		{
			name: "unknown token alongside known label",
			raw:  "flight, weather",
			want: []model.Intent{model.IntentFlight, model.IntentGeneral},
		},
		{
			name: "duplicate labels collapse",
			raw:  "hotel, hotel",
			want: []model.Intent{model.IntentHotel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseIntentSet(tt.raw)
			assert.Len(t, got, len(tt.want))
			for _, intent := range tt.want {
				assert.True(t, got.Has(intent), "expected intent %s", intent)
			}
		})
	}
}

func TestParseIntentSetDeterministic(t *testing.T) {
	first := ParseIntentSet("flight, hotel")
	second := ParseIntentSet("flight, hotel")
	assert.Equal(t, first, second)
}

func TestParseIntentSetNeverEmpty(t *testing.T) {
	for _, raw := range []string{"", "???", "flight hotel", ",,,"} {
		assert.NotEmpty(t, ParseIntentSet(raw), "raw=%q", raw)
	}
}
