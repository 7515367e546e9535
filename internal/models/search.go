package models

// SearchRequest represents a traveler's search query
type SearchRequest struct {
	Origin      string `json:"origin" form:"origin"`
	Destination string `json:"destination" form:"destination"`
	TravelDate  string `json:"travel_date" form:"travel_date"`
	Passengers  int    `json:"passengers" form:"passengers"`
}

// Validate validates the search request
func (r *SearchRequest) Validate() error {
	if r.Origin == "" {
		return ErrInvalidInput("origin is required")
	}
	if r.Destination == "" {
		return ErrInvalidInput("destination is required")
	}
	if r.TravelDate == "" {
		return ErrInvalidInput("travel_date is required")
	}
	if _, err := ParseTravelDate(r.TravelDate); err != nil {
		return err
	}
	if r.Passengers < MinPassengersPerBooking || r.Passengers > MaxPassengersPerBooking {
		return ErrInvalidInput("number of passengers must be between 1 and 6")
	}
	return nil
}

// SearchResult represents a bookable schedule in search results.
// EstimatedArrival is departure plus route duration wrapped modulo 24h,
// display-only.
type SearchResult struct {
	Schedule         Schedule `json:"schedule"`
	Route            Route    `json:"route"`
	Bus              Bus      `json:"bus"`
	TravelDate       string   `json:"travel_date"`
	AvailableSeats   int      `json:"available_seats"`
	EstimatedArrival string   `json:"estimated_arrival"`
}

// ScheduleDetail is a schedule denormalized with its route, bus and the
// seat availability for a travel date
type ScheduleDetail struct {
	Schedule       Schedule       `json:"schedule"`
	Route          Route          `json:"route"`
	Bus            Bus            `json:"bus"`
	TravelDate     string         `json:"travel_date"`
	SeatMap        []SeatMapEntry `json:"seat_map"`
	BookedSeats    []string       `json:"booked_seats"`
	AvailableSeats int            `json:"available_seats"`
}
