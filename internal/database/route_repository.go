package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/swifttransit/bus-ticket-backend/internal/models"
)

// RouteRepository handles database operations for the routes table
type RouteRepository struct {
	db DB
}

// NewRouteRepository creates a new RouteRepository
func NewRouteRepository(db DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// Create inserts a new route
func (r *RouteRepository) Create(route *models.Route) error {
	query := `
		INSERT INTO routes (id, origin, destination, distance_km, duration_minutes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	if route.ID == "" {
		route.ID = uuid.New().String()
	}

	err := r.db.QueryRow(
		query,
		route.ID, route.Origin, route.Destination,
		route.DistanceKM, route.DurationMinutes, route.IsActive,
	).Scan(&route.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create route: %w", err)
	}

	return nil
}

// GetByID retrieves a route by ID
func (r *RouteRepository) GetByID(routeID string) (*models.Route, error) {
	query := `
		SELECT id, origin, destination, distance_km, duration_minutes, is_active, created_at
		FROM routes
		WHERE id = $1
	`

	route := &models.Route{}
	err := r.db.QueryRow(query, routeID).Scan(
		&route.ID, &route.Origin, &route.Destination,
		&route.DistanceKM, &route.DurationMinutes, &route.IsActive, &route.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound("route", routeID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch route: %w", err)
	}

	return route, nil
}

// List retrieves all routes ordered by origin then destination
func (r *RouteRepository) List() ([]models.Route, error) {
	query := `
		SELECT id, origin, destination, distance_km, duration_minutes, is_active, created_at
		FROM routes
		ORDER BY origin, destination
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	defer rows.Close()

	return r.scanRoutes(rows)
}

// FindActiveByCities retrieves active routes matching origin and destination
// case-insensitively
func (r *RouteRepository) FindActiveByCities(origin, destination string) ([]models.Route, error) {
	query := `
		SELECT id, origin, destination, distance_km, duration_minutes, is_active, created_at
		FROM routes
		WHERE LOWER(origin) = LOWER($1)
		  AND LOWER(destination) = LOWER($2)
		  AND is_active = true
	`

	rows, err := r.db.Query(query, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("failed to find routes: %w", err)
	}
	defer rows.Close()

	return r.scanRoutes(rows)
}

func (r *RouteRepository) scanRoutes(rows *sql.Rows) ([]models.Route, error) {
	routes := []models.Route{}
	for rows.Next() {
		var route models.Route
		if err := rows.Scan(
			&route.ID, &route.Origin, &route.Destination,
			&route.DistanceKM, &route.DurationMinutes, &route.IsActive, &route.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan route: %w", err)
		}
		routes = append(routes, route)
	}
	return routes, rows.Err()
}
