package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/swifttransit/bus-ticket-backend/internal/config"
	"github.com/swifttransit/bus-ticket-backend/internal/database"
	"github.com/swifttransit/bus-ticket-backend/internal/models"
	"github.com/swifttransit/bus-ticket-backend/internal/services"
	"github.com/swifttransit/bus-ticket-backend/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the catalog with demo routes, buses and schedules, plus a demo
// customer and a couple of bookings. Bookings go through the real booking
// service so the seat inventory stays consistent with the booking records.
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	routeRepo := database.NewRouteRepository(db)
	busRepo := database.NewBusRepository(db)
	scheduleRepo := database.NewScheduleRepository(db)
	userRepo := database.NewUserRepository(db)
	bookingRepo := database.NewBookingRepository(db)
	inventoryRepo := database.NewSeatInventoryRepository(db)

	contacts := validator.NewContactValidator()
	availability := services.NewAvailabilityService(inventoryRepo, logger)
	catalog := services.NewCatalogService(routeRepo, busRepo, scheduleRepo, logger)
	bookings := services.NewBookingService(
		scheduleRepo, routeRepo, busRepo, userRepo, bookingRepo, availability, contacts, logger,
	)

	// Routes
	nyBoston, err := catalog.CreateRoute(&models.CreateRouteRequest{
		Origin:          "New York",
		Destination:     "Boston",
		DistanceKM:      346,
		DurationMinutes: 255,
	})
	if err != nil {
		logger.Fatalf("Failed to seed route: %v", err)
	}

	if _, err := catalog.CreateRoute(&models.CreateRouteRequest{
		Origin:          "Boston",
		Destination:     "New York",
		DistanceKM:      346,
		DurationMinutes: 255,
	}); err != nil {
		logger.Fatalf("Failed to seed route: %v", err)
	}

	nyDC, err := catalog.CreateRoute(&models.CreateRouteRequest{
		Origin:          "New York",
		Destination:     "Washington",
		DistanceKM:      365,
		DurationMinutes: 280,
	})
	if err != nil {
		logger.Fatalf("Failed to seed route: %v", err)
	}

	// Buses
	coach, err := catalog.CreateBus(&models.CreateBusRequest{
		BusNumber:  "ST-101",
		Type:       models.BusTypeAC,
		TotalSeats: 45,
		Amenities:  []string{"wifi", "charging_ports", "restroom"},
		SeatLayout: coachLayout(),
	})
	if err != nil {
		logger.Fatalf("Failed to seed bus: %v", err)
	}

	sleeper, err := catalog.CreateBus(&models.CreateBusRequest{
		BusNumber:  "ST-202",
		Type:       models.BusTypeSleeper,
		TotalSeats: 30,
		Amenities:  []string{"wifi", "blankets", "reading_lights"},
		SeatLayout: sleeperLayout(),
	})
	if err != nil {
		logger.Fatalf("Failed to seed bus: %v", err)
	}

	// Schedules
	morning, err := catalog.CreateSchedule(&models.CreateScheduleRequest{
		RouteID:       nyBoston.ID,
		BusID:         coach.ID,
		DepartureTime: "08:00",
		ArrivalTime:   "12:15",
		Frequency:     models.FrequencyDaily,
		PricePerSeat:  45,
	})
	if err != nil {
		logger.Fatalf("Failed to seed schedule: %v", err)
	}

	if _, err := catalog.CreateSchedule(&models.CreateScheduleRequest{
		RouteID:       nyBoston.ID,
		BusID:         sleeper.ID,
		DepartureTime: "14:30",
		ArrivalTime:   "18:45",
		Frequency:     models.FrequencyDaily,
		PricePerSeat:  60,
	}); err != nil {
		logger.Fatalf("Failed to seed schedule: %v", err)
	}

	if _, err := catalog.CreateSchedule(&models.CreateScheduleRequest{
		RouteID:       nyDC.ID,
		BusID:         coach.ID,
		DepartureTime: "22:30",
		ArrivalTime:   "03:10",
		Frequency:     models.FrequencyDaily,
		PricePerSeat:  50,
	}); err != nil {
		logger.Fatalf("Failed to seed schedule: %v", err)
	}

	// Demo customer
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), cfg.Security.BcryptCost)
	if err != nil {
		logger.Fatalf("Failed to hash demo password: %v", err)
	}
	demoPhone := "+1 212 555 0100"
	demoUser := &models.User{
		Email:        "demo@swifttransit.example",
		Name:         "Demo Customer",
		Role:         models.RoleCustomer,
		Phone:        &demoPhone,
		PasswordHash: string(hash),
	}
	if err := userRepo.Create(demoUser); err != nil {
		logger.Fatalf("Failed to seed demo user: %v", err)
	}

	// A fixture booking through the real booking path so the seat inventory
	// matches the booking record
	travelDate := "2026-10-01"
	if _, err := bookings.CreateBooking(&models.CreateBookingRequest{
		ScheduleID: morning.ID,
		TravelDate: travelDate,
		SeatNumbers: []string{
			"01", "02",
		},
		Passengers: []models.Passenger{
			{Name: "Demo Customer", Age: 34, Gender: models.GenderFemale},
			{Name: "Alex Demo", Age: 36, Gender: models.GenderMale},
		},
	}, demoUser.ID); err != nil {
		logger.Fatalf("Failed to seed booking: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"routes":    3,
		"buses":     2,
		"schedules": 3,
		"bookings":  1,
	}).Info("Seed completed")
}

// coachLayout is a 45-seat coach: 11 rows of 2+2 with an aisle, plus a
// 5-seat back row
func coachLayout() models.SeatLayout {
	layout := make([][]models.SeatCell, 0, 12)
	for i := 0; i < 11; i++ {
		layout = append(layout, []models.SeatCell{
			models.CellSeat, models.CellSeat, models.CellAisle, models.CellSeat, models.CellSeat,
		})
	}
	layout = append(layout, []models.SeatCell{
		models.CellSeat, models.CellSeat, models.CellSeat, models.CellSeat, models.CellSeat,
	})
	return models.SeatLayout{Rows: 12, Layout: layout}
}

// sleeperLayout is a 30-berth sleeper: 15 rows of 1+1 with an aisle
func sleeperLayout() models.SeatLayout {
	layout := make([][]models.SeatCell, 0, 15)
	for i := 0; i < 15; i++ {
		layout = append(layout, []models.SeatCell{
			models.CellSeat, models.CellAisle, models.CellSeat,
		})
	}
	return models.SeatLayout{Rows: 15, Layout: layout}
}
