package services

import (
	"fmt"

	"github.com/swifttransit/bus-ticket-backend/internal/models"
)

// EnumerateSeats derives the ordered seat positions from a bus's layout
// grid. The grid is scanned row-major; each seat cell receives the next
// 1-based ordinal, zero-padded to two digits (three digits past 99, so
// ordinals never collide). A seat is a window seat when it occupies the
// first or last non-empty column of its row, an aisle seat when it sits
// next to an aisle cell, and a middle seat otherwise.
//
// The function is pure and deterministic. The seat-map rendering path and
// the booking validation path must both use it so seat identifiers agree.
func EnumerateSeats(bus *models.Bus) []models.SeatPosition {
	seats := make([]models.SeatPosition, 0, bus.TotalSeats)
	ordinal := 0

	for rowIdx, row := range bus.SeatLayout.Layout {
		first, last := -1, -1
		for colIdx, cell := range row {
			if cell != models.CellEmpty {
				if first == -1 {
					first = colIdx
				}
				last = colIdx
			}
		}

		for colIdx, cell := range row {
			if cell != models.CellSeat {
				continue
			}
			ordinal++
			seats = append(seats, models.SeatPosition{
				SeatNumber: FormatSeatNumber(ordinal),
				Row:        rowIdx + 1,
				Column:     colIdx + 1,
				Class:      classifySeat(row, colIdx, first, last),
			})
		}
	}

	return seats
}

// FormatSeatNumber formats a 1-based seat ordinal as a zero-padded string
func FormatSeatNumber(ordinal int) string {
	return fmt.Sprintf("%02d", ordinal)
}

func classifySeat(row []models.SeatCell, col, first, last int) models.SeatClass {
	if col == first || col == last {
		return models.SeatClassWindow
	}
	if (col > 0 && row[col-1] == models.CellAisle) || (col < len(row)-1 && row[col+1] == models.CellAisle) {
		return models.SeatClassAisle
	}
	return models.SeatClassMiddle
}

// BuildSeatMap annotates the enumerated seats of a bus with their booking
// state for one availability key
func BuildSeatMap(bus *models.Bus, bookedSeats []string) []models.SeatMapEntry {
	booked := make(map[string]bool, len(bookedSeats))
	for _, seat := range bookedSeats {
		booked[seat] = true
	}

	positions := EnumerateSeats(bus)
	entries := make([]models.SeatMapEntry, 0, len(positions))
	for _, pos := range positions {
		entries = append(entries, models.SeatMapEntry{
			SeatPosition: pos,
			IsBooked:     booked[pos.SeatNumber],
		})
	}

	return entries
}
