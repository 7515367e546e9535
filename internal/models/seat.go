package models

// SeatClass classifies a seat by its position in the row
type SeatClass string

const (
	SeatClassWindow SeatClass = "window"
	SeatClassAisle  SeatClass = "aisle"
	SeatClassMiddle SeatClass = "middle"
)

// SeatPosition identifies a physical seat derived from a bus layout grid.
// SeatNumber is the 1-based ordinal assigned by the row-major grid scan,
// zero-padded to at least two digits. Row and Column are 1-based grid
// coordinates.
type SeatPosition struct {
	SeatNumber string    `json:"seat_number"`
	Row        int       `json:"row"`
	Column     int       `json:"column"`
	Class      SeatClass `json:"class"`
}

// SeatMapEntry is a seat position annotated with its booking state for a
// specific (schedule, travel date) availability key
type SeatMapEntry struct {
	SeatPosition
	IsBooked bool `json:"is_booked"`
}
