package model

// Intent is one of the closed set of categories a user message can be
// classified into.
type Intent string

const (
	IntentFlight   Intent = "flight"
	IntentHotel    Intent = "hotel"
	IntentLocation Intent = "location"
	IntentGeneral  Intent = "general"
)

// AllIntents lists every intent in the fixed order sub-agent outputs are
// aggregated in. The response format depends on this order.
var AllIntents = [4]Intent{IntentFlight, IntentHotel, IntentLocation, IntentGeneral}

// KnownIntent reports whether s is one of the four defined labels.
func KnownIntent(s string) bool {
	switch Intent(s) {
	case IntentFlight, IntentHotel, IntentLocation, IntentGeneral:
		return true
	}
	return false
}

// IntentSet is the set of categories one user message was classified into.
// It is derived per turn and not retained beyond the turn that produced it.
type IntentSet map[Intent]bool

func (s IntentSet) Add(i Intent) {
	s[i] = true
}

func (s IntentSet) Has(i Intent) bool {
	return s[i]
}
