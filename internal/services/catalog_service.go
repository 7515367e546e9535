package services

import (
	"github.com/sirupsen/logrus"
	"github.com/swifttransit/bus-ticket-backend/internal/models"
)

// RouteStore persists and lists routes
type RouteStore interface {
	Create(route *models.Route) error
	GetByID(routeID string) (*models.Route, error)
	List() ([]models.Route, error)
}

// BusStore persists and lists buses
type BusStore interface {
	Create(bus *models.Bus) error
	GetByID(busID string) (*models.Bus, error)
	List() ([]models.Bus, error)
}

// ScheduleStore persists and lists schedules
type ScheduleStore interface {
	Create(schedule *models.Schedule) error
	GetByID(scheduleID string) (*models.Schedule, error)
	List() ([]models.Schedule, error)
}

// CatalogService manages the reference data the booking core reads: routes,
// buses and schedules. Catalog entities are created by admins and treated as
// immutable afterwards.
type CatalogService struct {
	routes    RouteStore
	buses     BusStore
	schedules ScheduleStore
	logger    *logrus.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(routes RouteStore, buses BusStore, schedules ScheduleStore, logger *logrus.Logger) *CatalogService {
	return &CatalogService{
		routes:    routes,
		buses:     buses,
		schedules: schedules,
		logger:    logger,
	}
}

// CreateRoute validates and persists a new route
func (s *CatalogService) CreateRoute(req *models.CreateRouteRequest) (*models.Route, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	route := &models.Route{
		Origin:          req.Origin,
		Destination:     req.Destination,
		DistanceKM:      req.DistanceKM,
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
	}
	if err := s.routes.Create(route); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"route_id":    route.ID,
		"origin":      route.Origin,
		"destination": route.Destination,
	}).Info("Route created")

	return route, nil
}

// CreateBus validates and persists a new bus. The layout grid is checked
// against total_seats here, so every bus in the fleet has a consistent seat
// identity from the moment it exists.
func (s *CatalogService) CreateBus(req *models.CreateBusRequest) (*models.Bus, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	bus := &models.Bus{
		BusNumber:  req.BusNumber,
		Type:       req.Type,
		TotalSeats: req.TotalSeats,
		Amenities:  models.StringArray(req.Amenities),
		SeatLayout: req.SeatLayout,
		IsActive:   true,
	}
	if err := s.buses.Create(bus); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"bus_id":      bus.ID,
		"bus_number":  bus.BusNumber,
		"total_seats": bus.TotalSeats,
	}).Info("Bus created")

	return bus, nil
}

// CreateSchedule validates and persists a new schedule. The referenced route
// and bus must exist and be active.
func (s *CatalogService) CreateSchedule(req *models.CreateScheduleRequest) (*models.Schedule, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	route, err := s.routes.GetByID(req.RouteID)
	if err != nil {
		return nil, err
	}
	if !route.IsActive {
		return nil, models.ErrNotFound("route", req.RouteID)
	}

	bus, err := s.buses.GetByID(req.BusID)
	if err != nil {
		return nil, err
	}
	if !bus.IsActive {
		return nil, models.ErrNotFound("bus", req.BusID)
	}

	schedule := &models.Schedule{
		RouteID:       req.RouteID,
		BusID:         req.BusID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Frequency:     req.Frequency,
		PricePerSeat:  req.PricePerSeat,
		IsActive:      true,
	}
	if err := s.schedules.Create(schedule); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"schedule_id": schedule.ID,
		"route_id":    schedule.RouteID,
		"bus_id":      schedule.BusID,
		"departure":   schedule.DepartureTime,
	}).Info("Schedule created")

	return schedule, nil
}

// ListRoutes returns all routes
func (s *CatalogService) ListRoutes() ([]models.Route, error) {
	return s.routes.List()
}

// ListBuses returns all buses
func (s *CatalogService) ListBuses() ([]models.Bus, error) {
	return s.buses.List()
}

// ListSchedules returns all schedules
func (s *CatalogService) ListSchedules() ([]models.Schedule, error) {
	return s.schedules.List()
}
