package hotels

// Hotel identifies one property in a city lookup result.
type Hotel struct {
	HotelID string `json:"hotelId"`
	Name    string `json:"name"`
}

// OffersRequest asks for bookable offers at a set of properties.
type OffersRequest struct {
	HotelIDs     []string
	CheckInDate  string
	CheckOutDate string
	Adults       int
}

// HotelOffers is one hotel record in an offer search response, carrying the
// property, its availability flag, and every offer returned for it.
type HotelOffers struct {
	Hotel     Hotel   `json:"hotel"`
	Available bool    `json:"available"`
	Offers    []Offer `json:"offers"`
}

type Offer struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Guests       Guests `json:"guests"`
	Room         Room   `json:"room"`
	Price        Price  `json:"price"`
}

type Guests struct {
	Adults int `json:"adults"`
}

type Room struct {
	TypeEstimated TypeEstimated   `json:"typeEstimated"`
	Description   RoomDescription `json:"description"`
}

type TypeEstimated struct {
	Category string `json:"category"`
	Beds     int    `json:"beds"`
	BedType  string `json:"bedType"`
}

type RoomDescription struct {
	Text string `json:"text"`
}

type Price struct {
	Currency   string          `json:"currency"`
	Total      string          `json:"total"`
	Variations PriceVariations `json:"variations"`
}

type PriceVariations struct {
	Average AveragePrice `json:"average"`
}

type AveragePrice struct {
	Base string `json:"base"`
}
