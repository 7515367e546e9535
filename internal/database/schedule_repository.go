package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/swifttransit/bus-ticket-backend/internal/models"
)

// ScheduleRepository handles database operations for the schedules table
type ScheduleRepository struct {
	db DB
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create inserts a new schedule
func (r *ScheduleRepository) Create(schedule *models.Schedule) error {
	query := `
		INSERT INTO schedules (id, route_id, bus_id, departure_time, arrival_time, frequency, price_per_seat, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	if schedule.ID == "" {
		schedule.ID = uuid.New().String()
	}

	err := r.db.QueryRow(
		query,
		schedule.ID, schedule.RouteID, schedule.BusID,
		schedule.DepartureTime, schedule.ArrivalTime, schedule.Frequency,
		schedule.PricePerSeat, schedule.IsActive,
	).Scan(&schedule.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}

	return nil
}

// GetByID retrieves a schedule by ID
func (r *ScheduleRepository) GetByID(scheduleID string) (*models.Schedule, error) {
	query := `
		SELECT id, route_id, bus_id, departure_time, arrival_time, frequency, price_per_seat, is_active, created_at
		FROM schedules
		WHERE id = $1
	`

	schedule := &models.Schedule{}
	err := r.db.QueryRow(query, scheduleID).Scan(
		&schedule.ID, &schedule.RouteID, &schedule.BusID,
		&schedule.DepartureTime, &schedule.ArrivalTime, &schedule.Frequency,
		&schedule.PricePerSeat, &schedule.IsActive, &schedule.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound("schedule", scheduleID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}

	return schedule, nil
}

// List retrieves all schedules ordered by departure time
func (r *ScheduleRepository) List() ([]models.Schedule, error) {
	query := `
		SELECT id, route_id, bus_id, departure_time, arrival_time, frequency, price_per_seat, is_active, created_at
		FROM schedules
		ORDER BY departure_time
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

// FindActiveByRoute retrieves active schedules referencing a route
func (r *ScheduleRepository) FindActiveByRoute(routeID string) ([]models.Schedule, error) {
	query := `
		SELECT id, route_id, bus_id, departure_time, arrival_time, frequency, price_per_seat, is_active, created_at
		FROM schedules
		WHERE route_id = $1
		  AND is_active = true
		ORDER BY departure_time
	`

	rows, err := r.db.Query(query, routeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find schedules: %w", err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

func (r *ScheduleRepository) scanSchedules(rows *sql.Rows) ([]models.Schedule, error) {
	schedules := []models.Schedule{}
	for rows.Next() {
		var schedule models.Schedule
		if err := rows.Scan(
			&schedule.ID, &schedule.RouteID, &schedule.BusID,
			&schedule.DepartureTime, &schedule.ArrivalTime, &schedule.Frequency,
			&schedule.PricePerSeat, &schedule.IsActive, &schedule.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, schedule)
	}
	return schedules, rows.Err()
}
