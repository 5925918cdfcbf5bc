package agents

import (
	"context"
	"fmt"

	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/extract"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/model"
	errx "github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/core/error"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/travel/hotels"
	logx "github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/pkg/logger"
)

// HotelSearcher is the slice of the hotel search client the agent uses.
type HotelSearcher interface {
	HotelsByCity(ctx context.Context, cityCode string) ([]hotels.Hotel, error)
	SearchOffers(ctx context.Context, req hotels.OffersRequest) ([]hotels.HotelOffers, error)
}

// HotelAgent extracts a hotel query from the conversation, resolves the city
// to properties, and reports offers for up to 5 of them. Zero matching
// offers is a successful empty result with its own message, not a failure.
type HotelAgent struct {
	extractor *extract.Extractor
	search    HotelSearcher
}

func NewHotelAgent(extractor *extract.Extractor, search HotelSearcher) *HotelAgent {
	return &HotelAgent{extractor: extractor, search: search}
}

const (
	// maxHotelIDs caps how many resolved properties are sent to the offer search.
	maxHotelIDs = 30
	// maxHotelsDisplayed caps how many hotels appear in the report.
	maxHotelsDisplayed = 5

	// NoMatchMessage is the literal empty-result reply, distinct from any
	// error advisory.
	NoMatchMessage = "Unable to find hotels that match the search criteria."

	hotelExtractionApology = "⚠️ **I couldn't work out the hotel details from your request.**"
)

func (a *HotelAgent) Run(ctx context.Context, conv *model.Conversation) (string, error) {
	q, err := a.extractor.HotelQuery(ctx, conv.User)
	if err != nil {
		if errx.IsKind(err, errx.KindExtraction) {
			logx.Warn().Err(err).Str("agent", "hotel").Msg("extraction failed, asking user to rephrase")
			return joinLines([]string{
				hotelExtractionApology,
				"",
				"Please mention the city and your check-in and check-out dates and I'll try again.",
			}), nil
		}
		return "", err
	}

	properties, err := a.search.HotelsByCity(ctx, q.City)
	if err != nil {
		logx.Error().Err(err).Str("agent", "hotel").Str("city", q.City).Msg("hotel city lookup failed")
		return joinLines(hotelAdvisoryLines(q)), nil
	}

	ids := make([]string, 0, maxHotelIDs)
	for _, property := range properties {
		if len(ids) == maxHotelIDs {
			break
		}
		ids = append(ids, property.HotelID)
	}

	offers, err := a.search.SearchOffers(ctx, hotels.OffersRequest{
		HotelIDs:     ids,
		CheckInDate:  q.CheckInDate,
		CheckOutDate: q.CheckOutDate,
		Adults:       q.NumGuests,
	})
	if err != nil {
		logx.Error().Err(err).Str("agent", "hotel").Str("city", q.City).Msg("hotel offer search failed")
		return joinLines(hotelAdvisoryLines(q)), nil
	}

	if len(offers) == 0 {
		return NoMatchMessage, nil
	}
	display := offers
	if len(display) > maxHotelsDisplayed {
		display = display[:maxHotelsDisplayed]
	}

	lines := hotelHeaderLines(q, display[0])
	for _, hotel := range display {
		hotelLines, err := hotelLines(hotel)
		if err != nil {
			// one bad record never aborts the whole report
			logx.Warn().Err(err).Str("agent", "hotel").Str("hotel_id", hotel.Hotel.HotelID).
				Msg("skipping hotel with unrenderable offers")
			continue
		}
		lines = append(lines, hotelLines...)
	}
	lines = append(lines, "")

	return joinLines(lines), nil
}

// hotelAdvisoryLines echoes the requested parameters followed by the fixed
// search-failure advisory.
func hotelAdvisoryLines(q model.HotelQuery) []string {
	return []string{
		"### Hotel Search Parameters",
		fmt.Sprintf("**Check-In:** %s | **Check-Out:** %s", q.CheckInDate, q.CheckOutDate),
		fmt.Sprintf("**City:** %s", q.City),
		fmt.Sprintf("**Guests:** %d", q.NumGuests),
		"",
		"⚠️ **Unable to retrieve hotel information at this time.**",
		"",
		"The hotel search service may be temporarily unavailable or the API credentials need to be verified.",
		"Please try again later or search on [Booking.com](https://www.booking.com) or [Hotels.com](https://www.hotels.com).",
		"",
		"---",
	}
}

func hotelHeaderLines(q model.HotelQuery, first hotels.HotelOffers) []string {
	checkIn, checkOut := q.CheckInDate, q.CheckOutDate
	guests := q.NumGuests
	if len(first.Offers) > 0 {
		checkIn = first.Offers[0].CheckInDate
		checkOut = first.Offers[0].CheckOutDate
		guests = first.Offers[0].Guests.Adults
	}
	return []string{
		"### Hotel Search Parameters",
		fmt.Sprintf("**Check-In:** %s | **Check-Out:** %s", checkIn, checkOut),
		fmt.Sprintf("**City:** %s", q.City),
		"---",
		fmt.Sprintf("**Guests:** adults: %d", guests),
		"",
	}
}

func hotelLines(hotel hotels.HotelOffers) ([]string, error) {
	if hotel.Hotel.Name == "" {
		return nil, fmt.Errorf("hotel record has no name")
	}

	availability := "❌ Not Available"
	if hotel.Available {
		availability = "✅ Available"
	}

	lines := []string{
		"---",
		fmt.Sprintf("### 🏨 %s", hotel.Hotel.Name),
		fmt.Sprintf("**%s**", availability),
	}
	for _, offer := range hotel.Offers {
		room := offer.Room.TypeEstimated
		if room.Category == "" {
			return nil, fmt.Errorf("offer has no room category")
		}
		lines = append(lines,
			fmt.Sprintf("**Room:** %s", room.Category),
			fmt.Sprintf("**Beds:** %d %s", room.Beds, room.BedType),
			fmt.Sprintf("**Price:** %s $%s total ($%s/night)",
				offer.Price.Currency, offer.Price.Total, offer.Price.Variations.Average.Base),
			fmt.Sprintf("*%s*", offer.Room.Description.Text),
		)
	}
	lines = append(lines, "")
	return lines, nil
}
