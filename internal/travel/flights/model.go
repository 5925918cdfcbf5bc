package flights

// Passengers mirrors the passenger counts accepted by the search API.
type Passengers struct {
	Adults        int `json:"adults"`
	Children      int `json:"children"`
	InfantsInSeat int `json:"infants_in_seat"`
	InfantsOnLap  int `json:"infants_on_lap"`
}

// Query is a single one-way search request. The upstream API has no native
// round-trip mode; callers issue two one-way queries for round trips.
type Query struct {
	Date        string     `json:"date"`
	FromAirport string     `json:"from"`
	ToAirport   string     `json:"to"`
	Trip        string     `json:"trip"`
	Seat        string     `json:"seat"`
	Passengers  Passengers `json:"passengers"`
	FetchMode   string     `json:"fetch_mode"`
}

// Flight is one offer in a result set. IsBest is the upstream API's own
// ranking marker; only best-flagged offers are surfaced to the user.
type Flight struct {
	IsBest    bool   `json:"is_best"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Duration  string `json:"duration"`
	Stops     int    `json:"stops"`
}

// Result is the response to one one-way query.
type Result struct {
	CurrentPrice string   `json:"current_price"`
	Flights      []Flight `json:"flights"`
}
