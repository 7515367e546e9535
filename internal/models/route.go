package models

import (
	"strings"
	"time"
)

// Route represents a fixed origin-destination pair served by the operator.
// Routes are immutable reference data once created.
type Route struct {
	ID              string    `json:"id" db:"id"`
	Origin          string    `json:"origin" db:"origin"`
	Destination     string    `json:"destination" db:"destination"`
	DistanceKM      float64   `json:"distance_km" db:"distance_km"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	IsActive        bool      `json:"is_active" db:"is_active"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// CreateRouteRequest represents the request to create a route
type CreateRouteRequest struct {
	Origin          string  `json:"origin" binding:"required"`
	Destination     string  `json:"destination" binding:"required"`
	DistanceKM      float64 `json:"distance_km" binding:"required"`
	DurationMinutes int     `json:"duration_minutes" binding:"required"`
}

// Validate validates the create route request
func (r *CreateRouteRequest) Validate() error {
	if strings.TrimSpace(r.Origin) == "" {
		return ErrInvalidInput("origin is required")
	}
	if strings.TrimSpace(r.Destination) == "" {
		return ErrInvalidInput("destination is required")
	}
	if strings.EqualFold(strings.TrimSpace(r.Origin), strings.TrimSpace(r.Destination)) {
		return ErrInvalidInput("origin and destination cannot be the same")
	}
	if r.DistanceKM <= 0 {
		return ErrInvalidInput("distance_km must be positive")
	}
	if r.DurationMinutes <= 0 {
		return ErrInvalidInput("duration_minutes must be positive")
	}
	return nil
}
