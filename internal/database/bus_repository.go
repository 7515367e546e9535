package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/swifttransit/bus-ticket-backend/internal/models"
)

// BusRepository handles database operations for the buses table
type BusRepository struct {
	db DB
}

// NewBusRepository creates a new BusRepository
func NewBusRepository(db DB) *BusRepository {
	return &BusRepository{db: db}
}

// Create inserts a new bus
func (r *BusRepository) Create(bus *models.Bus) error {
	query := `
		INSERT INTO buses (id, bus_number, type, total_seats, amenities, seat_layout, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	if bus.ID == "" {
		bus.ID = uuid.New().String()
	}

	err := r.db.QueryRow(
		query,
		bus.ID, bus.BusNumber, bus.Type, bus.TotalSeats,
		bus.Amenities, bus.SeatLayout, bus.IsActive,
	).Scan(&bus.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create bus: %w", err)
	}

	return nil
}

// GetByID retrieves a bus by ID
func (r *BusRepository) GetByID(busID string) (*models.Bus, error) {
	query := `
		SELECT id, bus_number, type, total_seats, amenities, seat_layout, is_active, created_at
		FROM buses
		WHERE id = $1
	`

	bus := &models.Bus{}
	err := r.db.QueryRow(query, busID).Scan(
		&bus.ID, &bus.BusNumber, &bus.Type, &bus.TotalSeats,
		&bus.Amenities, &bus.SeatLayout, &bus.IsActive, &bus.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound("bus", busID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bus: %w", err)
	}

	return bus, nil
}

// List retrieves all buses ordered by bus number
func (r *BusRepository) List() ([]models.Bus, error) {
	query := `
		SELECT id, bus_number, type, total_seats, amenities, seat_layout, is_active, created_at
		FROM buses
		ORDER BY bus_number
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list buses: %w", err)
	}
	defer rows.Close()

	buses := []models.Bus{}
	for rows.Next() {
		var bus models.Bus
		if err := rows.Scan(
			&bus.ID, &bus.BusNumber, &bus.Type, &bus.TotalSeats,
			&bus.Amenities, &bus.SeatLayout, &bus.IsActive, &bus.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan bus: %w", err)
		}
		buses = append(buses, bus)
	}

	return buses, rows.Err()
}
