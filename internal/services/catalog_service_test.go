package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swifttransit/bus-ticket-backend/internal/models"
)

type memRouteStore struct {
	fakeRouteStore
	order []string
}

func (m *memRouteStore) Create(route *models.Route) error {
	route.ID = uuid.New().String()
	m.routes[route.ID] = route
	m.order = append(m.order, route.ID)
	return nil
}

func (m *memRouteStore) List() ([]models.Route, error) {
	routes := make([]models.Route, 0, len(m.order))
	for _, id := range m.order {
		routes = append(routes, *m.routes[id])
	}
	return routes, nil
}

type memBusStore struct {
	fakeBusStore
	order []string
}

func (m *memBusStore) Create(bus *models.Bus) error {
	bus.ID = uuid.New().String()
	m.buses[bus.ID] = bus
	m.order = append(m.order, bus.ID)
	return nil
}

func (m *memBusStore) List() ([]models.Bus, error) {
	buses := make([]models.Bus, 0, len(m.order))
	for _, id := range m.order {
		buses = append(buses, *m.buses[id])
	}
	return buses, nil
}

type memScheduleStore struct {
	fakeScheduleStore
	order []string
}

func (m *memScheduleStore) Create(schedule *models.Schedule) error {
	schedule.ID = uuid.New().String()
	m.schedules[schedule.ID] = schedule
	m.order = append(m.order, schedule.ID)
	return nil
}

func (m *memScheduleStore) List() ([]models.Schedule, error) {
	schedules := make([]models.Schedule, 0, len(m.order))
	for _, id := range m.order {
		schedules = append(schedules, *m.schedules[id])
	}
	return schedules, nil
}

func newCatalogFixture() (*CatalogService, *memRouteStore, *memBusStore, *memScheduleStore) {
	routes := &memRouteStore{fakeRouteStore: fakeRouteStore{routes: map[string]*models.Route{}}}
	buses := &memBusStore{fakeBusStore: fakeBusStore{buses: map[string]*models.Bus{}}}
	schedules := &memScheduleStore{fakeScheduleStore: fakeScheduleStore{schedules: map[string]*models.Schedule{}}}
	return NewCatalogService(routes, buses, schedules, testLogger()), routes, buses, schedules
}

func TestCreateRoute(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, _, _, _ := newCatalogFixture()

		route, err := svc.CreateRoute(&models.CreateRouteRequest{
			Origin:          "New York",
			Destination:     "Boston",
			DistanceKM:      346,
			DurationMinutes: 255,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, route.ID)
		assert.True(t, route.IsActive)
	})

	t.Run("Same Origin And Destination", func(t *testing.T) {
		svc, _, _, _ := newCatalogFixture()

		_, err := svc.CreateRoute(&models.CreateRouteRequest{
			Origin:          "Boston",
			Destination:     "boston",
			DistanceKM:      10,
			DurationMinutes: 30,
		})
		var validationErr *models.ValidationError
		require.True(t, errors.As(err, &validationErr))
	})
}

func TestCreateBus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, _, _, _ := newCatalogFixture()

		bus, err := svc.CreateBus(&models.CreateBusRequest{
			BusNumber:  "ST-101",
			Type:       models.BusTypeAC,
			TotalSeats: 4,
			Amenities:  []string{"wifi"},
			SeatLayout: models.SeatLayout{
				Rows: 2,
				Layout: [][]models.SeatCell{
					{models.CellSeat, models.CellAisle, models.CellSeat},
					{models.CellSeat, models.CellAisle, models.CellSeat},
				},
			},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, bus.ID)
		assert.True(t, bus.IsActive)
	})

	t.Run("Layout Seat Count Mismatch", func(t *testing.T) {
		svc, _, _, _ := newCatalogFixture()

		_, err := svc.CreateBus(&models.CreateBusRequest{
			BusNumber:  "ST-102",
			Type:       models.BusTypeAC,
			TotalSeats: 5,
			SeatLayout: models.SeatLayout{
				Rows: 2,
				Layout: [][]models.SeatCell{
					{models.CellSeat, models.CellAisle, models.CellSeat},
					{models.CellSeat, models.CellAisle, models.CellSeat},
				},
			},
		})
		var validationErr *models.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Contains(t, validationErr.Message, "seat cells")
	})
}

func TestCreateSchedule(t *testing.T) {
	setup := func(t *testing.T) (*CatalogService, string, string) {
		t.Helper()
		svc, _, _, _ := newCatalogFixture()

		route, err := svc.CreateRoute(&models.CreateRouteRequest{
			Origin:          "New York",
			Destination:     "Boston",
			DistanceKM:      346,
			DurationMinutes: 255,
		})
		require.NoError(t, err)

		bus, err := svc.CreateBus(&models.CreateBusRequest{
			BusNumber:  "ST-101",
			Type:       models.BusTypeAC,
			TotalSeats: 2,
			SeatLayout: models.SeatLayout{
				Rows:   1,
				Layout: [][]models.SeatCell{{models.CellSeat, models.CellAisle, models.CellSeat}},
			},
		})
		require.NoError(t, err)

		return svc, route.ID, bus.ID
	}

	t.Run("Success", func(t *testing.T) {
		svc, routeID, busID := setup(t)

		schedule, err := svc.CreateSchedule(&models.CreateScheduleRequest{
			RouteID:       routeID,
			BusID:         busID,
			DepartureTime: "08:00",
			ArrivalTime:   "12:15",
			Frequency:     models.FrequencyDaily,
			PricePerSeat:  45,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, schedule.ID)
		assert.True(t, schedule.IsActive)
	})

	t.Run("Unknown Route", func(t *testing.T) {
		svc, _, busID := setup(t)

		_, err := svc.CreateSchedule(&models.CreateScheduleRequest{
			RouteID:       "route-missing",
			BusID:         busID,
			DepartureTime: "08:00",
			ArrivalTime:   "12:15",
			Frequency:     models.FrequencyDaily,
			PricePerSeat:  45,
		})
		var notFound *models.NotFoundError
		require.True(t, errors.As(err, &notFound))
	})

	t.Run("Malformed Departure Time", func(t *testing.T) {
		svc, routeID, busID := setup(t)

		_, err := svc.CreateSchedule(&models.CreateScheduleRequest{
			RouteID:       routeID,
			BusID:         busID,
			DepartureTime: "8:00",
			ArrivalTime:   "12:15",
			Frequency:     models.FrequencyDaily,
			PricePerSeat:  45,
		})
		var validationErr *models.ValidationError
		require.True(t, errors.As(err, &validationErr))
	})
}
