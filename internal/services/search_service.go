package services

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/swifttransit/bus-ticket-backend/internal/models"
)

// RouteFinder finds active routes by origin and destination
type RouteFinder interface {
	FindActiveByCities(origin, destination string) ([]models.Route, error)
}

// ScheduleFinder finds schedules for the query paths
type ScheduleFinder interface {
	GetByID(scheduleID string) (*models.Schedule, error)
	FindActiveByRoute(routeID string) ([]models.Schedule, error)
}

// AvailabilityReader reads booked-seat sets without mutating them
type AvailabilityReader interface {
	BookedSeats(scheduleID, travelDate string) ([]string, error)
}

// SearchService answers read-only queries: trip search and schedule detail.
// It never mutates the availability index or the catalog; a result may lag
// a booking that is in flight, since the authoritative check happens inside
// the reservation itself.
type SearchService struct {
	routes       RouteFinder
	schedules    ScheduleFinder
	buses        BusGetter
	routesByID   RouteGetter
	availability AvailabilityReader
	logger       *logrus.Logger
}

// NewSearchService creates a new search service
func NewSearchService(
	routes RouteFinder,
	routesByID RouteGetter,
	schedules ScheduleFinder,
	buses BusGetter,
	availability AvailabilityReader,
	logger *logrus.Logger,
) *SearchService {
	return &SearchService{
		routes:       routes,
		routesByID:   routesByID,
		schedules:    schedules,
		buses:        buses,
		availability: availability,
		logger:       logger,
	}
}

// Search finds bookable schedules between two cities on a travel date with
// enough seats for the requested passenger count. Results are sorted by
// departure time; no matching route yields an empty slice, not an error.
func (s *SearchService) Search(req *models.SearchRequest) ([]models.SearchResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	routes, err := s.routes.FindActiveByCities(req.Origin, req.Destination)
	if err != nil {
		return nil, err
	}

	results := []models.SearchResult{}
	for _, route := range routes {
		schedules, err := s.schedules.FindActiveByRoute(route.ID)
		if err != nil {
			return nil, err
		}

		for _, schedule := range schedules {
			bus, err := s.buses.GetByID(schedule.BusID)
			if err != nil {
				if _, ok := err.(*models.NotFoundError); ok {
					continue
				}
				return nil, err
			}
			if !bus.IsActive {
				continue
			}

			booked, err := s.availability.BookedSeats(schedule.ID, req.TravelDate)
			if err != nil {
				return nil, err
			}

			available := bus.TotalSeats - len(booked)
			if available < req.Passengers {
				continue
			}

			arrival, err := models.AddMinutesToTime(schedule.DepartureTime, route.DurationMinutes)
			if err != nil {
				s.logger.WithError(err).WithField("schedule_id", schedule.ID).
					Warn("Schedule has malformed departure time, skipping")
				continue
			}

			results = append(results, models.SearchResult{
				Schedule:         schedule,
				Route:            route,
				Bus:              *bus,
				TravelDate:       req.TravelDate,
				AvailableSeats:   available,
				EstimatedArrival: arrival,
			})
		}
	}

	// Lexicographic order is chronological for zero-padded 24h times
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Schedule.DepartureTime < results[j].Schedule.DepartureTime
	})

	s.logger.WithFields(logrus.Fields{
		"origin":      req.Origin,
		"destination": req.Destination,
		"travel_date": req.TravelDate,
		"results":     len(results),
	}).Info("Search completed")

	return results, nil
}

// ScheduleDetail returns a schedule with its route, bus and the seat map
// for a travel date. Unknown or inactive schedules, routes and buses
// resolve to not-found.
func (s *SearchService) ScheduleDetail(scheduleID, travelDate string) (*models.ScheduleDetail, error) {
	if _, err := models.ParseTravelDate(travelDate); err != nil {
		return nil, err
	}

	schedule, err := s.schedules.GetByID(scheduleID)
	if err != nil {
		return nil, err
	}
	if !schedule.IsActive {
		return nil, models.ErrNotFound("schedule", scheduleID)
	}

	route, err := s.routesByID.GetByID(schedule.RouteID)
	if err != nil {
		return nil, err
	}
	if !route.IsActive {
		return nil, models.ErrNotFound("route", schedule.RouteID)
	}

	bus, err := s.buses.GetByID(schedule.BusID)
	if err != nil {
		return nil, err
	}
	if !bus.IsActive {
		return nil, models.ErrNotFound("bus", schedule.BusID)
	}

	booked, err := s.availability.BookedSeats(scheduleID, travelDate)
	if err != nil {
		return nil, err
	}

	return &models.ScheduleDetail{
		Schedule:       *schedule,
		Route:          *route,
		Bus:            *bus,
		TravelDate:     travelDate,
		SeatMap:        BuildSeatMap(bus, booked),
		BookedSeats:    booked,
		AvailableSeats: bus.TotalSeats - len(booked),
	}, nil
}
