package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

// BusType represents the category of a bus
type BusType string

const (
	BusTypeSleeper     BusType = "sleeper"
	BusTypeSemiSleeper BusType = "semi_sleeper"
	BusTypeAC          BusType = "ac"
	BusTypeNonAC       BusType = "non_ac"
)

// IsValid checks whether the bus type is one of the known categories
func (t BusType) IsValid() bool {
	switch t {
	case BusTypeSleeper, BusTypeSemiSleeper, BusTypeAC, BusTypeNonAC:
		return true
	}
	return false
}

// SeatCell tags a single cell in a bus layout grid
type SeatCell string

const (
	CellSeat  SeatCell = "seat"
	CellAisle SeatCell = "aisle"
	CellEmpty SeatCell = "empty"
)

// SeatLayout describes the physical arrangement of a bus interior as a
// grid of rows. Rows may have different widths; seat ordinals are derived
// by scanning the grid row-major and skipping non-seat cells.
type SeatLayout struct {
	Rows   int          `json:"rows"`
	Layout [][]SeatCell `json:"layout"`
}

// SeatCount returns the number of seat-tagged cells in the grid
func (l SeatLayout) SeatCount() int {
	count := 0
	for _, row := range l.Layout {
		for _, cell := range row {
			if cell == CellSeat {
				count++
			}
		}
	}
	return count
}

// Value implements the driver.Valuer interface for JSONB storage
func (l SeatLayout) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *SeatLayout) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = SeatLayout{}
		return nil
	}
	return fmt.Errorf("unsupported type for SeatLayout: %T", src)
}

// StringArray is a custom type for handling TEXT[] arrays in PostgreSQL
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return pq.Array(a).Value()
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = nil
		return nil
	}
	slice := (*[]string)(a)
	return pq.Array(slice).Scan(src)
}

// Bus represents a vehicle in the fleet
type Bus struct {
	ID         string      `json:"id" db:"id"`
	BusNumber  string      `json:"bus_number" db:"bus_number"`
	Type       BusType     `json:"type" db:"type"`
	TotalSeats int         `json:"total_seats" db:"total_seats"`
	Amenities  StringArray `json:"amenities" db:"amenities"`
	SeatLayout SeatLayout  `json:"seat_layout" db:"seat_layout"`
	IsActive   bool        `json:"is_active" db:"is_active"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
}

// MaxBusSeats caps fleet size so seat ordinals stay short and unambiguous
const MaxBusSeats = 120

// CreateBusRequest represents the request to register a bus
type CreateBusRequest struct {
	BusNumber  string     `json:"bus_number" binding:"required"`
	Type       BusType    `json:"type" binding:"required"`
	TotalSeats int        `json:"total_seats" binding:"required"`
	Amenities  []string   `json:"amenities"`
	SeatLayout SeatLayout `json:"seat_layout" binding:"required"`
}

// Validate validates the create bus request. The layout grid is the source
// of truth for seat identity, so the seat cell count must match total_seats.
func (r *CreateBusRequest) Validate() error {
	if strings.TrimSpace(r.BusNumber) == "" {
		return ErrInvalidInput("bus_number is required")
	}
	if !r.Type.IsValid() {
		return ErrInvalidInput("type must be one of: sleeper, semi_sleeper, ac, non_ac")
	}
	if r.TotalSeats <= 0 {
		return ErrInvalidInput("total_seats must be positive")
	}
	if r.TotalSeats > MaxBusSeats {
		return ErrInvalidInput(fmt.Sprintf("total_seats cannot exceed %d", MaxBusSeats))
	}
	if len(r.SeatLayout.Layout) == 0 {
		return ErrInvalidInput("seat_layout is required")
	}
	if r.SeatLayout.Rows != len(r.SeatLayout.Layout) {
		return ErrInvalidInput("seat_layout rows does not match the number of layout rows")
	}
	for i, row := range r.SeatLayout.Layout {
		if len(row) == 0 {
			return ErrInvalidInput(fmt.Sprintf("seat_layout row %d is empty", i+1))
		}
		for _, cell := range row {
			switch cell {
			case CellSeat, CellAisle, CellEmpty:
			default:
				return ErrInvalidInput(fmt.Sprintf("seat_layout row %d contains invalid cell %q", i+1, cell))
			}
		}
	}
	if got := r.SeatLayout.SeatCount(); got != r.TotalSeats {
		return ErrInvalidInput(fmt.Sprintf("seat_layout has %d seat cells but total_seats is %d", got, r.TotalSeats))
	}
	return nil
}
