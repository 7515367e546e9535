package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/swifttransit/bus-ticket-backend/internal/models"
)

// BookingRepository handles database operations for the bookings table.
// Bookings are append-only: committed bookings are never updated.
type BookingRepository struct {
	db DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a new booking
func (r *BookingRepository) Create(booking *models.Booking) error {
	query := `
		INSERT INTO bookings (
			id, booking_reference, user_id, schedule_id, travel_date,
			passengers, seat_numbers, total_amount, status, payment_status,
			payment_reference, booking_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		RETURNING created_at
	`

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}

	err := r.db.QueryRow(
		query,
		booking.ID, booking.BookingReference, booking.UserID,
		booking.ScheduleID, booking.TravelDate,
		booking.Passengers, booking.SeatNumbers, booking.TotalAmount,
		booking.Status, booking.PaymentStatus, booking.PaymentReference,
		booking.BookingDate,
	).Scan(&booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

// GetByID retrieves a booking by ID
func (r *BookingRepository) GetByID(bookingID string) (*models.Booking, error) {
	query := `
		SELECT id, booking_reference, user_id, schedule_id, travel_date,
			   passengers, seat_numbers, total_amount, status, payment_status,
			   payment_reference, booking_date, created_at
		FROM bookings
		WHERE id = $1
	`

	booking := &models.Booking{}
	err := r.db.QueryRow(query, bookingID).Scan(
		&booking.ID, &booking.BookingReference, &booking.UserID,
		&booking.ScheduleID, &booking.TravelDate,
		&booking.Passengers, &booking.SeatNumbers, &booking.TotalAmount,
		&booking.Status, &booking.PaymentStatus, &booking.PaymentReference,
		&booking.BookingDate, &booking.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound("booking", bookingID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}

	return booking, nil
}

// GetByUserID retrieves all bookings for a user, newest first
func (r *BookingRepository) GetByUserID(userID string) ([]models.Booking, error) {
	query := `
		SELECT id, booking_reference, user_id, schedule_id, travel_date,
			   passengers, seat_numbers, total_amount, status, payment_status,
			   payment_reference, booking_date, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var booking models.Booking
		if err := rows.Scan(
			&booking.ID, &booking.BookingReference, &booking.UserID,
			&booking.ScheduleID, &booking.TravelDate,
			&booking.Passengers, &booking.SeatNumbers, &booking.TotalAmount,
			&booking.Status, &booking.PaymentStatus, &booking.PaymentReference,
			&booking.BookingDate, &booking.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}
