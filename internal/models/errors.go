package models

import (
	"fmt"
	"strings"
)

// ValidationError represents a client input error. The request can be
// retried after the caller corrects the input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrInvalidInput creates a validation error
func ErrInvalidInput(message string) error {
	return &ValidationError{Message: message}
}

// NotFoundError indicates a referenced resource does not exist or is inactive
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ErrNotFound creates a not-found error for a resource
func ErrNotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError indicates the request lost a race for a shared resource.
// For seat reservations TakenSeats names the seats already held by other
// bookings; the attempt is terminal and the caller must re-select seats.
type ConflictError struct {
	Message    string
	TakenSeats []string
}

func (e *ConflictError) Error() string {
	if len(e.TakenSeats) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.TakenSeats, ", "))
	}
	return e.Message
}

// ErrSeatsTaken creates a conflict error naming the seats already booked
func ErrSeatsTaken(seats []string) error {
	return &ConflictError{
		Message:    "seats already booked",
		TakenSeats: seats,
	}
}

// ErrConflict creates a conflict error without seat details
func ErrConflict(message string) error {
	return &ConflictError{Message: message}
}
