package models

import (
	"fmt"
	"regexp"
	"time"
)

// Frequency represents how often a schedule runs. Recurrence expansion is
// not implemented; every active schedule is treated as running on any
// requested travel date and the tag is carried for display.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencySpecific Frequency = "specific"
)

// IsValid checks whether the frequency is a known tag
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencySpecific:
		return true
	}
	return false
}

// timeOfDayRegex matches zero-padded 24h HH:MM strings
var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsTimeOfDay reports whether s is a valid zero-padded 24h HH:MM string
func IsTimeOfDay(s string) bool {
	return timeOfDayRegex.MatchString(s)
}

// TravelDateLayout is the wire format for travel dates
const TravelDateLayout = "2006-01-02"

// ParseTravelDate validates a YYYY-MM-DD travel date string
func ParseTravelDate(s string) (time.Time, error) {
	d, err := time.Parse(TravelDateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidInput("travel_date must be in YYYY-MM-DD format")
	}
	return d, nil
}

// Schedule represents a bus running a route at a fixed time of day
type Schedule struct {
	ID            string    `json:"id" db:"id"`
	RouteID       string    `json:"route_id" db:"route_id"`
	BusID         string    `json:"bus_id" db:"bus_id"`
	DepartureTime string    `json:"departure_time" db:"departure_time"`
	ArrivalTime   string    `json:"arrival_time" db:"arrival_time"`
	Frequency     Frequency `json:"frequency" db:"frequency"`
	PricePerSeat  float64   `json:"price_per_seat" db:"price_per_seat"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// CreateScheduleRequest represents the request to create a schedule
type CreateScheduleRequest struct {
	RouteID       string    `json:"route_id" binding:"required"`
	BusID         string    `json:"bus_id" binding:"required"`
	DepartureTime string    `json:"departure_time" binding:"required"`
	ArrivalTime   string    `json:"arrival_time" binding:"required"`
	Frequency     Frequency `json:"frequency" binding:"required"`
	PricePerSeat  float64   `json:"price_per_seat" binding:"required"`
}

// Validate validates the create schedule request
func (r *CreateScheduleRequest) Validate() error {
	if r.RouteID == "" {
		return ErrInvalidInput("route_id is required")
	}
	if r.BusID == "" {
		return ErrInvalidInput("bus_id is required")
	}
	if !IsTimeOfDay(r.DepartureTime) {
		return ErrInvalidInput("departure_time must be in HH:MM format")
	}
	if !IsTimeOfDay(r.ArrivalTime) {
		return ErrInvalidInput("arrival_time must be in HH:MM format")
	}
	if !r.Frequency.IsValid() {
		return ErrInvalidInput("frequency must be one of: daily, weekly, specific")
	}
	if r.PricePerSeat <= 0 {
		return ErrInvalidInput("price_per_seat must be positive")
	}
	return nil
}

// AddMinutesToTime adds minutes to an HH:MM time of day, wrapping past
// midnight. The calendar date never advances; overnight arrivals are a
// display-only approximation.
func AddMinutesToTime(hhmm string, minutes int) (string, error) {
	if !IsTimeOfDay(hhmm) {
		return "", fmt.Errorf("invalid time of day: %q", hhmm)
	}
	var h, m int
	fmt.Sscanf(hhmm, "%d:%d", &h, &m)
	total := (h*60 + m + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}
