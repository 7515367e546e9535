package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusPending   BookingStatus = "pending"
)

// PaymentStatus represents the payment status of a booking
type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Gender represents a passenger's declared gender
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// IsValid checks whether the gender is a known value
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Passenger holds the details of one traveler on a booking. Passengers are
// embedded in the booking record, not stored as standalone entities.
type Passenger struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Gender Gender  `json:"gender"`
	Phone  *string `json:"phone,omitempty"`
	Email  *string `json:"email,omitempty"`
}

// PassengerList is stored as a JSONB column alongside the booking
type PassengerList []Passenger

// Value implements the driver.Valuer interface
func (p PassengerList) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface
func (p *PassengerList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = nil
		return nil
	}
	return fmt.Errorf("unsupported type for PassengerList: %T", src)
}

// Booking represents a committed reservation of seats on a schedule for a
// travel date. Bookings are append-only; the core never mutates a booking
// after creation.
type Booking struct {
	ID               string        `json:"id" db:"id"`
	BookingReference string        `json:"booking_reference" db:"booking_reference"`
	UserID           string        `json:"user_id" db:"user_id"`
	ScheduleID       string        `json:"schedule_id" db:"schedule_id"`
	TravelDate       string        `json:"travel_date" db:"travel_date"`
	Passengers       PassengerList `json:"passengers" db:"passengers"`
	SeatNumbers      StringArray   `json:"seat_numbers" db:"seat_numbers"`
	TotalAmount      float64       `json:"total_amount" db:"total_amount"`
	Status           BookingStatus `json:"status" db:"status"`
	PaymentStatus    PaymentStatus `json:"payment_status" db:"payment_status"`
	PaymentReference *string       `json:"payment_reference,omitempty" db:"payment_reference"`
	BookingDate      time.Time     `json:"booking_date" db:"booking_date"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
}

// BookingDetail is a booking denormalized with its schedule, route, bus and
// user for display
type BookingDetail struct {
	Booking
	Schedule *Schedule `json:"schedule,omitempty"`
	Route    *Route    `json:"route,omitempty"`
	Bus      *Bus      `json:"bus,omitempty"`
	User     *User     `json:"user,omitempty"`
}

// Passenger-count bounds mirror the search bound
const (
	MinPassengersPerBooking = 1
	MaxPassengersPerBooking = 6
)

// CreateBookingRequest represents the request to create a booking
type CreateBookingRequest struct {
	ScheduleID  string      `json:"schedule_id" binding:"required"`
	TravelDate  string      `json:"travel_date" binding:"required"`
	SeatNumbers []string    `json:"seat_numbers" binding:"required"`
	Passengers  []Passenger `json:"passengers" binding:"required"`
}

// ValidateCounts checks seat/passenger count equality and bounds. This is
// the first validation step and runs before any catalog lookup.
func (r *CreateBookingRequest) ValidateCounts() error {
	if len(r.SeatNumbers) != len(r.Passengers) {
		return ErrInvalidInput("seat_numbers and passengers must have the same length")
	}
	if len(r.Passengers) < MinPassengersPerBooking || len(r.Passengers) > MaxPassengersPerBooking {
		return ErrInvalidInput(fmt.Sprintf("number of passengers must be between %d and %d",
			MinPassengersPerBooking, MaxPassengersPerBooking))
	}
	if _, err := ParseTravelDate(r.TravelDate); err != nil {
		return err
	}
	return nil
}

// ValidatePassenger checks one passenger's fields. Errors identify the
// passenger by 1-based index so the caller can point at the offending form
// entry. Phone and email are optional but must be well-formed if present.
func ValidatePassenger(p Passenger, index int, phoneValid, emailValid func(string) bool) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidInput(fmt.Sprintf("passenger %d: name is required", index))
	}
	if p.Age < 1 || p.Age > 120 {
		return ErrInvalidInput(fmt.Sprintf("passenger %d: age must be between 1 and 120", index))
	}
	if !p.Gender.IsValid() {
		return ErrInvalidInput(fmt.Sprintf("passenger %d: gender must be one of: male, female, other", index))
	}
	if p.Phone != nil && *p.Phone != "" && !phoneValid(*p.Phone) {
		return ErrInvalidInput(fmt.Sprintf("passenger %d: invalid phone number", index))
	}
	if p.Email != nil && *p.Email != "" && !emailValid(*p.Email) {
		return ErrInvalidInput(fmt.Sprintf("passenger %d: invalid email address", index))
	}
	return nil
}
