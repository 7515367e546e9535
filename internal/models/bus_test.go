package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBusRequest() *CreateBusRequest {
	return &CreateBusRequest{
		BusNumber:  "ST-101",
		Type:       BusTypeAC,
		TotalSeats: 4,
		SeatLayout: SeatLayout{
			Rows: 2,
			Layout: [][]SeatCell{
				{CellSeat, CellAisle, CellSeat},
				{CellSeat, CellAisle, CellSeat},
			},
		},
	}
}

func TestCreateBusRequestValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validBusRequest().Validate())
	})

	t.Run("Seat Count Mismatch", func(t *testing.T) {
		req := validBusRequest()
		req.TotalSeats = 5

		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "seat cells")
	})

	t.Run("Rows Mismatch", func(t *testing.T) {
		req := validBusRequest()
		req.SeatLayout.Rows = 3

		assert.Error(t, req.Validate())
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		req := validBusRequest()
		req.SeatLayout.Layout[0][1] = SeatCell("window")

		assert.Error(t, req.Validate())
	})

	t.Run("Invalid Type", func(t *testing.T) {
		req := validBusRequest()
		req.Type = "luxury"

		assert.Error(t, req.Validate())
	})

	t.Run("Too Many Seats", func(t *testing.T) {
		row := make([]SeatCell, MaxBusSeats+1)
		for i := range row {
			row[i] = CellSeat
		}
		req := &CreateBusRequest{
			BusNumber:  "ST-900",
			Type:       BusTypeAC,
			TotalSeats: MaxBusSeats + 1,
			SeatLayout: SeatLayout{Rows: 1, Layout: [][]SeatCell{row}},
		}

		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("Ragged Rows Allowed", func(t *testing.T) {
		req := validBusRequest()
		req.SeatLayout.Layout[1] = []SeatCell{CellSeat, CellSeat, CellSeat}
		req.TotalSeats = 5

		assert.NoError(t, req.Validate())
	})
}

func TestSeatLayoutSeatCount(t *testing.T) {
	layout := SeatLayout{
		Rows: 2,
		Layout: [][]SeatCell{
			{CellSeat, CellAisle, CellSeat, CellEmpty},
			{CellSeat, CellSeat, CellSeat},
		},
	}
	assert.Equal(t, 5, layout.SeatCount())
}
