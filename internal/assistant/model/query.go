package model

import (
	"fmt"
	"strings"
	"time"
)

type TripType string

const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
)

type SeatClass string

const (
	SeatEconomy        SeatClass = "economy"
	SeatPremiumEconomy SeatClass = "premium-economy"
	SeatBusiness       SeatClass = "business"
	SeatFirst          SeatClass = "first"
)

// FlightQuery is the structured flight search record extracted from the
// user-message history. Field names mirror the JSON schema the extraction
// prompt asks the model to fill.
type FlightQuery struct {
	TripType           TripType  `json:"tripType"`
	OriginCity         string    `json:"originCity"`
	DestinationCity    string    `json:"destinationCity"`
	OriginAirport      string    `json:"originAirport"`
	DestinationAirport string    `json:"destinationAirport"`
	DepartureDate      string    `json:"departureDate"`
	ArrivalDate        string    `json:"arrivalDate"`
	NumAdults          int       `json:"numAdults"`
	NumChildren        int       `json:"numChildren"`
	Seat               SeatClass `json:"seat"`
}

// Normalize cleans up model output before validation: codes are uppercased,
// enums lowercased, and the "None" placeholder the prompt allows for
// one-way arrival dates becomes the empty string.
func (q *FlightQuery) Normalize() {
	q.TripType = TripType(strings.ToLower(strings.TrimSpace(string(q.TripType))))
	q.Seat = SeatClass(strings.ToLower(strings.TrimSpace(string(q.Seat))))
	q.OriginCity = strings.ToUpper(strings.TrimSpace(q.OriginCity))
	q.DestinationCity = strings.ToUpper(strings.TrimSpace(q.DestinationCity))
	q.OriginAirport = strings.ToUpper(strings.TrimSpace(q.OriginAirport))
	q.DestinationAirport = strings.ToUpper(strings.TrimSpace(q.DestinationAirport))
	q.DepartureDate = strings.TrimSpace(q.DepartureDate)
	q.ArrivalDate = strings.TrimSpace(q.ArrivalDate)
	if strings.EqualFold(q.ArrivalDate, "none") {
		q.ArrivalDate = ""
	}
	if q.Seat == "" {
		q.Seat = SeatEconomy
	}
}

// Validate checks the extracted record against the field constraints. A
// violation means the model produced an unusable guess, not that the user
// request was invalid.
func (q *FlightQuery) Validate() error {
	switch q.TripType {
	case TripOneWay, TripRoundTrip:
	default:
		return fmt.Errorf("invalid trip type %q", q.TripType)
	}
	switch q.Seat {
	case SeatEconomy, SeatPremiumEconomy, SeatBusiness, SeatFirst:
	default:
		return fmt.Errorf("invalid seat class %q", q.Seat)
	}
	for name, code := range map[string]string{
		"originCity":         q.OriginCity,
		"destinationCity":    q.DestinationCity,
		"originAirport":      q.OriginAirport,
		"destinationAirport": q.DestinationAirport,
	} {
		if !isIATACode(code) {
			return fmt.Errorf("%s %q is not a 3-letter code", name, code)
		}
	}
	if err := validDate(q.DepartureDate, "departureDate"); err != nil {
		return err
	}
	if q.TripType == TripRoundTrip {
		if err := validDate(q.ArrivalDate, "arrivalDate"); err != nil {
			return err
		}
	}
	if q.NumAdults < 0 {
		return fmt.Errorf("numAdults %d is negative", q.NumAdults)
	}
	if q.NumChildren < 0 {
		return fmt.Errorf("numChildren %d is negative", q.NumChildren)
	}
	return nil
}

// HotelQuery is the structured hotel search record extracted from the
// user-message history.
type HotelQuery struct {
	City         string `json:"city"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	NumGuests    int    `json:"numGuests"`
}

func (q *HotelQuery) Normalize() {
	q.City = strings.ToUpper(strings.TrimSpace(q.City))
	q.CheckInDate = strings.TrimSpace(q.CheckInDate)
	q.CheckOutDate = strings.TrimSpace(q.CheckOutDate)
}

func (q *HotelQuery) Validate() error {
	if !isIATACode(q.City) {
		return fmt.Errorf("city %q is not a 3-letter code", q.City)
	}
	if err := validDate(q.CheckInDate, "checkInDate"); err != nil {
		return err
	}
	if err := validDate(q.CheckOutDate, "checkOutDate"); err != nil {
		return err
	}
	if q.NumGuests < 1 {
		return fmt.Errorf("numGuests %d must be at least 1", q.NumGuests)
	}
	return nil
}

const dateLayout = "2006-01-02"

func validDate(s, name string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("%s %q is not a valid date: %w", name, s, err)
	}
	return nil
}

func isIATACode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		c := code[i]
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}
