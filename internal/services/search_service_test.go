package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swifttransit/bus-ticket-backend/internal/models"
)

type searchFixture struct {
	service      *SearchService
	availability *AvailabilityService
	routes       map[string]*models.Route
	buses        map[string]*models.Bus
	schedules    map[string]*models.Schedule
}

func newSearchFixture(t *testing.T) *searchFixture {
	t.Helper()

	routes := map[string]*models.Route{
		"route-1": {
			ID: "route-1", Origin: "New York", Destination: "Boston",
			DistanceKM: 346, DurationMinutes: 255, IsActive: true,
		},
	}
	buses := map[string]*models.Bus{
		"bus-1": coachBus("bus-1"),
	}
	schedules := map[string]*models.Schedule{
		"sched-pm": {
			ID: "sched-pm", RouteID: "route-1", BusID: "bus-1",
			DepartureTime: "14:30", ArrivalTime: "18:45",
			Frequency: models.FrequencyDaily, PricePerSeat: 60, IsActive: true,
		},
		"sched-am": {
			ID: "sched-am", RouteID: "route-1", BusID: "bus-1",
			DepartureTime: "08:00", ArrivalTime: "12:15",
			Frequency: models.FrequencyDaily, PricePerSeat: 45, IsActive: true,
		},
	}

	routeStore := &fakeRouteStore{routes: routes}
	availability := NewAvailabilityService(newMemInventoryStore(), testLogger())

	service := NewSearchService(
		routeStore,
		routeStore,
		&fakeScheduleStore{schedules: schedules},
		&fakeBusStore{buses: buses},
		availability,
		testLogger(),
	)

	return &searchFixture{
		service:      service,
		availability: availability,
		routes:       routes,
		buses:        buses,
		schedules:    schedules,
	}
}

func searchRequest() *models.SearchRequest {
	return &models.SearchRequest{
		Origin:      "New York",
		Destination: "Boston",
		TravelDate:  "2026-10-01",
		Passengers:  2,
	}
}

func TestSearch(t *testing.T) {
	t.Run("Results Sorted By Departure Time", func(t *testing.T) {
		fx := newSearchFixture(t)

		results, err := fx.service.Search(searchRequest())
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "08:00", results[0].Schedule.DepartureTime)
		assert.Equal(t, "14:30", results[1].Schedule.DepartureTime)
	})

	t.Run("Availability Arithmetic", func(t *testing.T) {
		fx := newSearchFixture(t)
		require.NoError(t, fx.availability.Reserve("sched-am", "2026-10-01", []string{"01", "02", "03"}))

		results, err := fx.service.Search(searchRequest())
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, 42, results[0].AvailableSeats)
		assert.Equal(t, 45, results[1].AvailableSeats)
	})

	t.Run("Estimated Arrival Is Departure Plus Duration", func(t *testing.T) {
		fx := newSearchFixture(t)

		results, err := fx.service.Search(searchRequest())
		require.NoError(t, err)
		// 08:00 + 255 minutes
		assert.Equal(t, "12:15", results[0].EstimatedArrival)
	})

	t.Run("Overnight Arrival Wraps Past Midnight", func(t *testing.T) {
		fx := newSearchFixture(t)
		fx.schedules["sched-am"].DepartureTime = "22:30"

		results, err := fx.service.Search(searchRequest())
		require.NoError(t, err)
		require.Len(t, results, 2)
		// 22:30 + 255 minutes wraps to 02:45 next day
		assert.Equal(t, "02:45", results[1].EstimatedArrival)
	})

	t.Run("Filters Out Schedules Without Enough Seats", func(t *testing.T) {
		fx := newSearchFixture(t)

		seats := make([]string, 0, 44)
		for i := 1; i <= 44; i++ {
			seats = append(seats, FormatSeatNumber(i))
		}
		require.NoError(t, fx.availability.Reserve("sched-am", "2026-10-01", seats))

		results, err := fx.service.Search(searchRequest())
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "sched-pm", results[0].Schedule.ID)

		// A single traveler still fits on the nearly full schedule
		req := searchRequest()
		req.Passengers = 1
		results, err = fx.service.Search(req)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("Search Is Read Only", func(t *testing.T) {
		fx := newSearchFixture(t)

		first, err := fx.service.Search(searchRequest())
		require.NoError(t, err)
		second, err := fx.service.Search(searchRequest())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("No Matching Route Yields Empty Result", func(t *testing.T) {
		fx := newSearchFixture(t)

		req := searchRequest()
		req.Destination = "Chicago"

		results, err := fx.service.Search(req)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("Origin Matching Is Case Insensitive", func(t *testing.T) {
		fx := newSearchFixture(t)

		req := searchRequest()
		req.Origin = "new york"
		req.Destination = "BOSTON"

		results, err := fx.service.Search(req)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("Skips Inactive Bus", func(t *testing.T) {
		fx := newSearchFixture(t)
		fx.buses["bus-1"].IsActive = false

		results, err := fx.service.Search(searchRequest())
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("Invalid Request", func(t *testing.T) {
		fx := newSearchFixture(t)

		req := searchRequest()
		req.TravelDate = "10/01/2026"

		_, err := fx.service.Search(req)
		var validationErr *models.ValidationError
		require.True(t, errors.As(err, &validationErr))
	})
}

func TestScheduleDetail(t *testing.T) {
	t.Run("Includes Seat Map And Availability", func(t *testing.T) {
		fx := newSearchFixture(t)
		require.NoError(t, fx.availability.Reserve("sched-am", "2026-10-01", []string{"01", "07"}))

		detail, err := fx.service.ScheduleDetail("sched-am", "2026-10-01")
		require.NoError(t, err)
		assert.Equal(t, "sched-am", detail.Schedule.ID)
		assert.Equal(t, 43, detail.AvailableSeats)
		assert.Equal(t, []string{"01", "07"}, detail.BookedSeats)
		require.Len(t, detail.SeatMap, 45)
		assert.True(t, detail.SeatMap[0].IsBooked)
		assert.False(t, detail.SeatMap[1].IsBooked)
	})

	t.Run("Unknown Schedule", func(t *testing.T) {
		fx := newSearchFixture(t)

		_, err := fx.service.ScheduleDetail("sched-missing", "2026-10-01")
		var notFound *models.NotFoundError
		require.True(t, errors.As(err, &notFound))
	})

	t.Run("Inactive Schedule Resolves To Not Found", func(t *testing.T) {
		fx := newSearchFixture(t)
		fx.schedules["sched-am"].IsActive = false

		_, err := fx.service.ScheduleDetail("sched-am", "2026-10-01")
		var notFound *models.NotFoundError
		require.True(t, errors.As(err, &notFound))
	})

	t.Run("Invalid Travel Date", func(t *testing.T) {
		fx := newSearchFixture(t)

		_, err := fx.service.ScheduleDetail("sched-am", "not-a-date")
		var validationErr *models.ValidationError
		require.True(t, errors.As(err, &validationErr))
	})
}
