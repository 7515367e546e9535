package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/swifttransit/bus-ticket-backend/internal/models"
)

// ErrVersionMismatch is returned when a compare-and-swap loses a race:
// the stored seat set changed since it was read
var ErrVersionMismatch = errors.New("seat inventory version mismatch")

// SeatInventoryRepository persists the booked-seat set per availability key
// (schedule_id, travel_date). Writes are version-guarded so a check-and-set
// stays atomic even across multiple server instances.
type SeatInventoryRepository struct {
	db DB
}

// NewSeatInventoryRepository creates a new SeatInventoryRepository
func NewSeatInventoryRepository(db DB) *SeatInventoryRepository {
	return &SeatInventoryRepository{db: db}
}

// Get retrieves the booked seats and version for an availability key.
// A key with no bookings yet yields an empty set at version 0.
func (r *SeatInventoryRepository) Get(scheduleID, travelDate string) ([]string, int64, error) {
	query := `
		SELECT booked_seats, version
		FROM seat_inventory
		WHERE schedule_id = $1 AND travel_date = $2
	`

	var seats models.StringArray
	var version int64
	err := r.db.QueryRow(query, scheduleID, travelDate).Scan(&seats, &version)
	if err == sql.ErrNoRows {
		return []string{}, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch seat inventory: %w", err)
	}

	return seats, version, nil
}

// CompareAndSwap replaces the booked-seat set for a key if the stored
// version still matches. Version 0 means the caller observed no row; the
// swap then inserts one. Returns ErrVersionMismatch when another writer got
// there first.
func (r *SeatInventoryRepository) CompareAndSwap(scheduleID, travelDate string, seats []string, version int64) error {
	if version == 0 {
		query := `
			INSERT INTO seat_inventory (schedule_id, travel_date, booked_seats, version)
			VALUES ($1, $2, $3, 1)
			ON CONFLICT (schedule_id, travel_date) DO NOTHING
		`
		result, err := r.db.Exec(query, scheduleID, travelDate, models.StringArray(seats))
		if err != nil {
			return fmt.Errorf("failed to insert seat inventory: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read insert result: %w", err)
		}
		if affected == 0 {
			return ErrVersionMismatch
		}
		return nil
	}

	query := `
		UPDATE seat_inventory
		SET booked_seats = $3, version = version + 1, updated_at = NOW()
		WHERE schedule_id = $1 AND travel_date = $2 AND version = $4
	`
	result, err := r.db.Exec(query, scheduleID, travelDate, models.StringArray(seats), version)
	if err != nil {
		return fmt.Errorf("failed to update seat inventory: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return ErrVersionMismatch
	}

	return nil
}
