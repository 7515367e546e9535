package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/swifttransit/bus-ticket-backend/internal/models"
	"github.com/swifttransit/bus-ticket-backend/pkg/validator"
)

// ScheduleGetter fetches a schedule by ID
type ScheduleGetter interface {
	GetByID(scheduleID string) (*models.Schedule, error)
}

// RouteGetter fetches a route by ID
type RouteGetter interface {
	GetByID(routeID string) (*models.Route, error)
}

// BusGetter fetches a bus by ID
type BusGetter interface {
	GetByID(busID string) (*models.Bus, error)
}

// UserGetter fetches a user by ID
type UserGetter interface {
	GetByID(userID string) (*models.User, error)
}

// BookingStore persists bookings append-only and reads them back
type BookingStore interface {
	Create(booking *models.Booking) error
	GetByID(bookingID string) (*models.Booking, error)
	GetByUserID(userID string) ([]models.Booking, error)
}

// SeatReserver is the availability index as seen by the booking manager
type SeatReserver interface {
	Reserve(scheduleID, travelDate string, seatNumbers []string) error
	Release(scheduleID, travelDate string, seatNumbers []string) error
}

// BookingService validates candidate reservations and commits them
// atomically. All validation happens before any mutation: either the full
// booking commits (seats reserved and record persisted) or nothing changes.
type BookingService struct {
	schedules    ScheduleGetter
	routes       RouteGetter
	buses        BusGetter
	users        UserGetter
	bookings     BookingStore
	availability SeatReserver
	contacts     *validator.ContactValidator
	logger       *logrus.Logger
}

// NewBookingService creates a new booking service
func NewBookingService(
	schedules ScheduleGetter,
	routes RouteGetter,
	buses BusGetter,
	users UserGetter,
	bookings BookingStore,
	availability SeatReserver,
	contacts *validator.ContactValidator,
	logger *logrus.Logger,
) *BookingService {
	return &BookingService{
		schedules:    schedules,
		routes:       routes,
		buses:        buses,
		users:        users,
		bookings:     bookings,
		availability: availability,
		contacts:     contacts,
		logger:       logger,
	}
}

// CreateBooking validates and atomically commits a booking. Validation is
// fail-fast in a fixed order: counts, catalog resolution, passenger data,
// seat identity, then the availability reservation. A Conflict from the
// reservation rejects the whole booking; a persist failure rolls the
// reserved seats back.
func (s *BookingService) CreateBooking(req *models.CreateBookingRequest, userID string) (*models.BookingDetail, error) {
	if err := req.ValidateCounts(); err != nil {
		return nil, err
	}

	schedule, err := s.schedules.GetByID(req.ScheduleID)
	if err != nil {
		return nil, err
	}
	if !schedule.IsActive {
		return nil, models.ErrNotFound("schedule", req.ScheduleID)
	}

	route, err := s.routes.GetByID(schedule.RouteID)
	if err != nil {
		return nil, err
	}
	if !route.IsActive {
		return nil, models.ErrNotFound("route", schedule.RouteID)
	}

	bus, err := s.buses.GetByID(schedule.BusID)
	if err != nil {
		return nil, err
	}
	if !bus.IsActive {
		return nil, models.ErrNotFound("bus", schedule.BusID)
	}

	for i, passenger := range req.Passengers {
		if err := models.ValidatePassenger(passenger, i+1, s.contacts.IsValidPhone, s.contacts.IsValidEmail); err != nil {
			return nil, err
		}
	}

	if err := s.validateSeatSelection(bus, req.SeatNumbers); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if err := s.availability.Reserve(req.ScheduleID, req.TravelDate, req.SeatNumbers); err != nil {
		return nil, err
	}

	// Payment is simulated and always succeeds
	paymentRef := fmt.Sprintf("pay-%s", uuid.New().String()[:8])
	booking := &models.Booking{
		BookingReference: newBookingReference(),
		UserID:           user.ID,
		ScheduleID:       schedule.ID,
		TravelDate:       req.TravelDate,
		Passengers:       models.PassengerList(req.Passengers),
		SeatNumbers:      models.StringArray(req.SeatNumbers),
		TotalAmount:      schedule.PricePerSeat * float64(len(req.Passengers)),
		Status:           models.BookingStatusConfirmed,
		PaymentStatus:    models.PaymentStatusPaid,
		PaymentReference: &paymentRef,
		BookingDate:      time.Now(),
	}

	if err := s.bookings.Create(booking); err != nil {
		if releaseErr := s.availability.Release(req.ScheduleID, req.TravelDate, req.SeatNumbers); releaseErr != nil {
			s.logger.WithError(releaseErr).WithFields(logrus.Fields{
				"schedule_id": req.ScheduleID,
				"travel_date": req.TravelDate,
				"seats":       req.SeatNumbers,
			}).Error("Failed to release seats after booking persist failure")
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id":  booking.ID,
		"reference":   booking.BookingReference,
		"schedule_id": schedule.ID,
		"travel_date": booking.TravelDate,
		"seats":       req.SeatNumbers,
		"amount":      booking.TotalAmount,
	}).Info("Booking confirmed")

	return &models.BookingDetail{
		Booking:  *booking,
		Schedule: schedule,
		Route:    route,
		Bus:      bus,
		User:     user,
	}, nil
}

// validateSeatSelection checks that requested seats exist on the bus layout
// and contain no duplicates
func (s *BookingService) validateSeatSelection(bus *models.Bus, seatNumbers []string) error {
	valid := make(map[string]bool, bus.TotalSeats)
	for _, pos := range EnumerateSeats(bus) {
		valid[pos.SeatNumber] = true
	}

	seen := make(map[string]bool, len(seatNumbers))
	for _, seat := range seatNumbers {
		if seen[seat] {
			return models.ErrInvalidInput(fmt.Sprintf("duplicate seat number %s", seat))
		}
		seen[seat] = true
		if !valid[seat] {
			return models.ErrInvalidInput(fmt.Sprintf("seat %s does not exist on this bus", seat))
		}
	}

	return nil
}

// GetBooking retrieves a booking visible to the requester. Customers can
// only see their own bookings; others resolve to not-found rather than
// revealing the booking exists.
func (s *BookingService) GetBooking(bookingID, requesterID string, requesterRole models.UserRole) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != requesterID && requesterRole != models.RoleAdmin {
		return nil, models.ErrNotFound("booking", bookingID)
	}
	return booking, nil
}

// ListUserBookings retrieves the requester's booking history, newest first
func (s *BookingService) ListUserBookings(userID string) ([]models.Booking, error) {
	return s.bookings.GetByUserID(userID)
}

// newBookingReference generates a short human-readable booking reference
func newBookingReference() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "BKG-" + token[:9]
}
