package services

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/swifttransit/bus-ticket-backend/internal/database"
	"github.com/swifttransit/bus-ticket-backend/internal/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// memInventoryStore is an in-memory SeatInventoryStore with the same
// version-CAS semantics as the Postgres-backed repository
type memInventoryStore struct {
	mu      sync.Mutex
	seats   map[string][]string
	version map[string]int64
	swaps   int
}

func newMemInventoryStore() *memInventoryStore {
	return &memInventoryStore{
		seats:   make(map[string][]string),
		version: make(map[string]int64),
	}
}

func (m *memInventoryStore) key(scheduleID, travelDate string) string {
	return scheduleID + "|" + travelDate
}

func (m *memInventoryStore) Get(scheduleID, travelDate string) ([]string, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := m.key(scheduleID, travelDate)
	seats := append([]string{}, m.seats[k]...)
	return seats, m.version[k], nil
}

func (m *memInventoryStore) CompareAndSwap(scheduleID, travelDate string, seats []string, version int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := m.key(scheduleID, travelDate)
	if m.version[k] != version {
		return database.ErrVersionMismatch
	}
	m.seats[k] = append([]string{}, seats...)
	m.version[k] = version + 1
	m.swaps++
	return nil
}

type fakeRouteStore struct {
	routes map[string]*models.Route
}

func (f *fakeRouteStore) GetByID(routeID string) (*models.Route, error) {
	if route, ok := f.routes[routeID]; ok {
		return route, nil
	}
	return nil, models.ErrNotFound("route", routeID)
}

func (f *fakeRouteStore) FindActiveByCities(origin, destination string) ([]models.Route, error) {
	matches := []models.Route{}
	for _, route := range f.routes {
		if route.IsActive && strings.EqualFold(route.Origin, origin) && strings.EqualFold(route.Destination, destination) {
			matches = append(matches, *route)
		}
	}
	return matches, nil
}

type fakeBusStore struct {
	buses map[string]*models.Bus
}

func (f *fakeBusStore) GetByID(busID string) (*models.Bus, error) {
	if bus, ok := f.buses[busID]; ok {
		return bus, nil
	}
	return nil, models.ErrNotFound("bus", busID)
}

type fakeScheduleStore struct {
	schedules map[string]*models.Schedule
}

func (f *fakeScheduleStore) GetByID(scheduleID string) (*models.Schedule, error) {
	if schedule, ok := f.schedules[scheduleID]; ok {
		return schedule, nil
	}
	return nil, models.ErrNotFound("schedule", scheduleID)
}

func (f *fakeScheduleStore) FindActiveByRoute(routeID string) ([]models.Schedule, error) {
	matches := []models.Schedule{}
	for _, schedule := range f.schedules {
		if schedule.IsActive && schedule.RouteID == routeID {
			matches = append(matches, *schedule)
		}
	}
	return matches, nil
}

type fakeUserStore struct {
	users map[string]*models.User
}

func (f *fakeUserStore) GetByID(userID string) (*models.User, error) {
	if user, ok := f.users[userID]; ok {
		return user, nil
	}
	return nil, models.ErrNotFound("user", userID)
}

// memBookingStore is an in-memory append-only BookingStore. failCreate
// forces the persist step to fail so rollback paths can be exercised.
type memBookingStore struct {
	mu         sync.Mutex
	bookings   []*models.Booking
	failCreate bool
}

func (m *memBookingStore) Create(booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreate {
		return fmt.Errorf("insert failed")
	}
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	stored := *booking
	m.bookings = append(m.bookings, &stored)
	return nil
}

func (m *memBookingStore) GetByID(bookingID string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, booking := range m.bookings {
		if booking.ID == bookingID {
			found := *booking
			return &found, nil
		}
	}
	return nil, models.ErrNotFound("booking", bookingID)
}

func (m *memBookingStore) GetByUserID(userID string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matches := []models.Booking{}
	for i := len(m.bookings) - 1; i >= 0; i-- {
		if m.bookings[i].UserID == userID {
			matches = append(matches, *m.bookings[i])
		}
	}
	return matches, nil
}

// coachBus builds a 45-seat coach: 11 rows of 2+2 around an aisle plus a
// five-across back row
func coachBus(id string) *models.Bus {
	layout := make([][]models.SeatCell, 0, 12)
	for i := 0; i < 11; i++ {
		layout = append(layout, []models.SeatCell{
			models.CellSeat, models.CellSeat, models.CellAisle, models.CellSeat, models.CellSeat,
		})
	}
	layout = append(layout, []models.SeatCell{
		models.CellSeat, models.CellSeat, models.CellSeat, models.CellSeat, models.CellSeat,
	})
	return &models.Bus{
		ID:         id,
		BusNumber:  "ST-101",
		Type:       models.BusTypeAC,
		TotalSeats: 45,
		SeatLayout: models.SeatLayout{Rows: 12, Layout: layout},
		IsActive:   true,
	}
}
