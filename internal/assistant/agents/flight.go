package agents

import (
	"context"
	"fmt"

	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/extract"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/model"
	errx "github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/core/error"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/travel/flights"
	logx "github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/pkg/logger"
)

// FlightSearcher is the slice of the flight search client the agent uses.
type FlightSearcher interface {
	SearchOneWay(ctx context.Context, q flights.Query) (*flights.Result, error)
}

// FlightAgent extracts a flight query from the conversation and searches the
// outbound leg, plus the return leg for round trips. The upstream API has no
// round-trip mode, so the return leg is a second one-way search with the
// airports swapped. Search failures never leave this agent; they become
// advisory text.
type FlightAgent struct {
	extractor *extract.Extractor
	search    FlightSearcher
}

func NewFlightAgent(extractor *extract.Extractor, search FlightSearcher) *FlightAgent {
	return &FlightAgent{extractor: extractor, search: search}
}

const flightExtractionApology = "⚠️ **I couldn't work out the flight details from your request.**"

func (a *FlightAgent) Run(ctx context.Context, conv *model.Conversation) (string, error) {
	q, err := a.extractor.FlightQuery(ctx, conv.User)
	if err != nil {
		if errx.IsKind(err, errx.KindExtraction) {
			logx.Warn().Err(err).Str("agent", "flight").Msg("extraction failed, asking user to rephrase")
			return joinLines([]string{
				flightExtractionApology,
				"",
				"Please mention the origin, destination, and travel date and I'll try again.",
			}), nil
		}
		return "", err
	}

	lines := flightParamLines(q)

	outbound, err := a.search.SearchOneWay(ctx, legQuery(q, q.OriginAirport, q.DestinationAirport, q.DepartureDate))
	if err != nil {
		logx.Error().Err(err).Str("agent", "flight").Msg("outbound flight search failed")
		lines = append(lines,
			"",
			"⚠️ **Unable to retrieve flight information at this time.**",
			"",
			"The flight search service may be temporarily unavailable.",
			"Please try again later or search directly on [Google Flights](https://www.google.com/travel/flights).",
		)
		return joinLines(lines), nil
	}

	lines = append(lines, legLines("### Outbound Flights", outbound)...)

	if q.TripType == model.TripRoundTrip {
		inbound, err := a.search.SearchOneWay(ctx, legQuery(q, q.DestinationAirport, q.OriginAirport, q.ArrivalDate))
		if err != nil {
			logx.Error().Err(err).Str("agent", "flight").Msg("inbound flight search failed")
			lines = append(lines, "", "⚠️ *Unable to retrieve inbound flight information.*")
		} else {
			lines = append(lines, legLines("### Inbound Flights", inbound)...)
		}
	}

	return joinLines(lines), nil
}

func legQuery(q model.FlightQuery, from, to, date string) flights.Query {
	return flights.Query{
		Date:        date,
		FromAirport: from,
		ToAirport:   to,
		Trip:        "one-way",
		Seat:        string(q.Seat),
		Passengers: flights.Passengers{
			Adults:        q.NumAdults,
			Children:      q.NumChildren,
			InfantsInSeat: 0,
			InfantsOnLap:  0,
		},
		FetchMode: "fallback",
	}
}

func flightParamLines(q model.FlightQuery) []string {
	lines := []string{
		"### Flight Search Parameters",
		fmt.Sprintf("**Trip Type:** %s | **Seat:** %s", q.TripType, q.Seat),
		fmt.Sprintf("**Origin:** %s (%s) → **Destination:** %s (%s)",
			q.OriginCity, q.OriginAirport, q.DestinationCity, q.DestinationAirport),
	}
	if q.TripType == model.TripOneWay {
		lines = append(lines, fmt.Sprintf("**Departure:** %s", q.DepartureDate))
	} else {
		lines = append(lines, fmt.Sprintf("**Departure:** %s | **Return:** %s", q.DepartureDate, q.ArrivalDate))
	}
	lines = append(lines,
		fmt.Sprintf("**Passengers:** %d Adult(s), %d Children", q.NumAdults, q.NumChildren),
		"",
		"---",
	)
	return lines
}

// legLines renders one leg's result set, surfacing only offers the upstream
// API flagged as best.
func legLines(header string, result *flights.Result) []string {
	lines := []string{
		header,
		fmt.Sprintf("*Price Level: %s*", result.CurrentPrice),
		"",
	}
	for _, flight := range result.Flights {
		if !flight.IsBest {
			continue
		}
		lines = append(lines,
			fmt.Sprintf("**%s** - $%s", flight.Name, flight.Price),
			fmt.Sprintf("🛫 %s → 🛬 %s", flight.Departure, flight.Arrival),
			fmt.Sprintf("⏱️ %s | 🔄 %d stop(s)", flight.Duration, flight.Stops),
			"",
		)
	}
	return lines
}
