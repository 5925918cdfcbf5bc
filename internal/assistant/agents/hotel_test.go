package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/assistant/extract"
	"github.com/ITCS-6112-Group-5/NaviBlu-Travel-Assistant/internal/travel/hotels"
)

type fakeHotelSearcher struct {
	properties []hotels.Hotel
	offers     []hotels.HotelOffers
	lookupErr  error
	searchErr  error

	lookupCalls  int
	searchCalls  int
	gotOffersReq hotels.OffersRequest
}

func (f *fakeHotelSearcher) HotelsByCity(_ context.Context, _ string) ([]hotels.Hotel, error) {
	f.lookupCalls++
	return f.properties, f.lookupErr
}

func (f *fakeHotelSearcher) SearchOffers(_ context.Context, req hotels.OffersRequest) ([]hotels.HotelOffers, error) {
	f.searchCalls++
	f.gotOffersReq = req
	return f.offers, f.searchErr
}

const hotelExtraction = `{"city":"YVR","checkInDate":"2026-09-05","checkOutDate":"2026-09-07","numGuests":2}`

func properties(n int) []hotels.Hotel {
	out := make([]hotels.Hotel, n)
	for i := range out {
		out[i] = hotels.Hotel{HotelID: fmt.Sprintf("HT%03d", i), Name: fmt.Sprintf("Hotel %d", i)}
	}
	return out
}

func offer(category string) hotels.Offer {
	return hotels.Offer{
		CheckInDate:  "2026-09-05",
		CheckOutDate: "2026-09-07",
		Guests:       hotels.Guests{Adults: 2},
		Room: hotels.Room{
			TypeEstimated: hotels.TypeEstimated{Category: category, Beds: 1, BedType: "KING"},
			Description:   hotels.RoomDescription{Text: "Deluxe room with city view"},
		},
		Price: hotels.Price{
			Currency:   "USD",
			Total:      "418.00",
			Variations: hotels.PriceVariations{Average: hotels.AveragePrice{Base: "209.00"}},
		},
	}
}

func hotelOffers(n int) []hotels.HotelOffers {
	out := make([]hotels.HotelOffers, n)
	for i := range out {
		out[i] = hotels.HotelOffers{
			Hotel:     hotels.Hotel{HotelID: fmt.Sprintf("HT%03d", i), Name: fmt.Sprintf("Hotel %d", i)},
			Available: true,
			Offers:    []hotels.Offer{offer("DELUXE_ROOM")},
		}
	}
	return out
}

func newHotelAgent(reply string, search HotelSearcher) *HotelAgent {
	return NewHotelAgent(extract.New(&fakeCompleter{reply: reply}), search)
}

func TestHotelAgentDisplayCount(t *testing.T) {
	tests := []struct {
		name      string
		retrieved int
		displayed int
	}{
		{name: "more than five shows five", retrieved: 8, displayed: 5},
		{name: "exactly five shows five", retrieved: 5, displayed: 5},
		{name: "fewer than five shows all", retrieved: 3, displayed: 3},
		{name: "single offer", retrieved: 1, displayed: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			search := &fakeHotelSearcher{properties: properties(10), offers: hotelOffers(tt.retrieved)}
			out, err := newHotelAgent(hotelExtraction, search).Run(context.Background(), testConversation("hotels in vancouver"))
			require.NoError(t, err)

			assert.Equal(t, tt.displayed, strings.Count(out, "### 🏨"))
			assert.NotContains(t, out, NoMatchMessage)
			assert.NotContains(t, out, "Unable to retrieve hotel information")
		})
	}
}

func TestHotelAgentNoMatches(t *testing.T) {
	search := &fakeHotelSearcher{properties: properties(4), offers: nil}
	out, err := newHotelAgent(hotelExtraction, search).Run(context.Background(), testConversation("hotels in vancouver"))
	require.NoError(t, err)

	assert.Equal(t, NoMatchMessage, out, "zero offers is the literal no-match reply and nothing else")
}

func TestHotelAgentCapsHotelIDs(t *testing.T) {
	search := &fakeHotelSearcher{properties: properties(45), offers: hotelOffers(2)}
	_, err := newHotelAgent(hotelExtraction, search).Run(context.Background(), testConversation("hotels in vancouver"))
	require.NoError(t, err)

	assert.Len(t, search.gotOffersReq.HotelIDs, 30, "only the first 30 ids go to the offer search")
	assert.Equal(t, "HT000", search.gotOffersReq.HotelIDs[0])
	assert.Equal(t, "2026-09-05", search.gotOffersReq.CheckInDate)
	assert.Equal(t, 2, search.gotOffersReq.Adults)
}

func TestHotelAgentLookupFailure(t *testing.T) {
	search := &fakeHotelSearcher{lookupErr: errors.New("hotels: token endpoint returned status 401")}
	out, err := newHotelAgent(hotelExtraction, search).Run(context.Background(), testConversation("hotels in vancouver"))
	require.NoError(t, err, "search failures never leave the agent")

	assert.Zero(t, search.searchCalls, "no offer search after a lookup failure")
	assert.Contains(t, out, "⚠️ **Unable to retrieve hotel information at this time.**")
	assert.Contains(t, out, "[Booking.com](https://www.booking.com)")
	assert.Contains(t, out, "**City:** YVR", "requested parameters are echoed back")
	assert.Contains(t, out, "**Check-In:** 2026-09-05 | **Check-Out:** 2026-09-07")
	assert.Contains(t, out, "**Guests:** 2")
}

func TestHotelAgentOfferSearchFailure(t *testing.T) {
	search := &fakeHotelSearcher{properties: properties(3), searchErr: errors.New("upstream 500")}
	out, err := newHotelAgent(hotelExtraction, search).Run(context.Background(), testConversation("hotels in vancouver"))
	require.NoError(t, err)

	assert.Contains(t, out, "⚠️ **Unable to retrieve hotel information at this time.**")
	assert.NotContains(t, out, "### 🏨")
}

func TestHotelAgentSkipsUnrenderableHotel(t *testing.T) {
	offers := hotelOffers(3)
	offers[1].Offers = []hotels.Offer{offer("")} // missing room category

	search := &fakeHotelSearcher{properties: properties(3), offers: offers}
	out, err := newHotelAgent(hotelExtraction, search).Run(context.Background(), testConversation("hotels in vancouver"))
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "### 🏨"), "the bad record is skipped, the rest render")
	assert.Contains(t, out, "Hotel 0")
	assert.NotContains(t, out, "Hotel 1")
	assert.Contains(t, out, "Hotel 2")
}

func TestHotelAgentRendersOfferDetails(t *testing.T) {
	search := &fakeHotelSearcher{properties: properties(1), offers: hotelOffers(1)}
	out, err := newHotelAgent(hotelExtraction, search).Run(context.Background(), testConversation("hotels in vancouver"))
	require.NoError(t, err)

	assert.Contains(t, out, "### Hotel Search Parameters")
	assert.Contains(t, out, "**✅ Available**")
	assert.Contains(t, out, "**Room:** DELUXE_ROOM")
	assert.Contains(t, out, "**Beds:** 1 KING")
	assert.Contains(t, out, "**Price:** USD $418.00 total ($209.00/night)")
	assert.Contains(t, out, "*Deluxe room with city view*")
}

func TestHotelAgentExtractionFailure(t *testing.T) {
	search := &fakeHotelSearcher{}
	out, err := newHotelAgent("not json", search).Run(context.Background(), testConversation("hotels"))
	require.NoError(t, err)

	assert.Zero(t, search.lookupCalls)
	assert.Contains(t, out, hotelExtractionApology)
}
