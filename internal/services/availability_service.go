package services

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/swifttransit/bus-ticket-backend/internal/database"
	"github.com/swifttransit/bus-ticket-backend/internal/models"
)

// SeatInventoryStore persists booked-seat sets per availability key with a
// version-guarded compare-and-swap
type SeatInventoryStore interface {
	Get(scheduleID, travelDate string) ([]string, int64, error)
	CompareAndSwap(scheduleID, travelDate string, seats []string, version int64) error
}

// casMaxRetries bounds CAS retries against writers on other instances.
// Within one process the per-key mutex already serializes writers.
const casMaxRetries = 5

// AvailabilityService owns the booked-seat set per (schedule, travel date)
// key. Reserve is the single mutating operation and is serialized per key:
// a per-key mutex makes the check-then-set indivisible in-process, and the
// store's version CAS protects against concurrent instances. Keys are
// independent; reservations on different keys never contend.
type AvailabilityService struct {
	store  SeatInventoryStore
	logger *logrus.Logger
	locks  sync.Map // availability key -> *sync.Mutex
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(store SeatInventoryStore, logger *logrus.Logger) *AvailabilityService {
	return &AvailabilityService{
		store:  store,
		logger: logger,
	}
}

func availabilityKey(scheduleID, travelDate string) string {
	return scheduleID + "|" + travelDate
}

func (s *AvailabilityService) keyLock(key string) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// BookedSeats returns the seats currently booked for an availability key.
// A key with no bookings yields an empty slice.
func (s *AvailabilityService) BookedSeats(scheduleID, travelDate string) ([]string, error) {
	seats, _, err := s.store.Get(scheduleID, travelDate)
	return seats, err
}

// Reserve atomically adds seats to the booked set for an availability key.
// If any requested seat is already booked the whole reservation fails with
// a ConflictError naming the overlapping seats, and no seats are reserved.
func (s *AvailabilityService) Reserve(scheduleID, travelDate string, seatNumbers []string) error {
	key := availabilityKey(scheduleID, travelDate)
	lock := s.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	for attempt := 0; attempt < casMaxRetries; attempt++ {
		booked, version, err := s.store.Get(scheduleID, travelDate)
		if err != nil {
			return err
		}

		taken := overlap(booked, seatNumbers)
		if len(taken) > 0 {
			return models.ErrSeatsTaken(taken)
		}

		updated := append(append([]string{}, booked...), seatNumbers...)
		sort.Strings(updated)

		err = s.store.CompareAndSwap(scheduleID, travelDate, updated, version)
		if err == nil {
			s.logger.WithFields(logrus.Fields{
				"schedule_id": scheduleID,
				"travel_date": travelDate,
				"seats":       seatNumbers,
			}).Info("Seats reserved")
			return nil
		}
		if !errors.Is(err, database.ErrVersionMismatch) {
			return err
		}
		// Lost the CAS to a writer on another instance; re-read and retry
	}

	return fmt.Errorf("failed to reserve seats after %d attempts", casMaxRetries)
}

// Release removes seats from the booked set for an availability key. Used
// only to roll back a reservation whose booking record failed to persist.
func (s *AvailabilityService) Release(scheduleID, travelDate string, seatNumbers []string) error {
	key := availabilityKey(scheduleID, travelDate)
	lock := s.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	drop := make(map[string]bool, len(seatNumbers))
	for _, seat := range seatNumbers {
		drop[seat] = true
	}

	for attempt := 0; attempt < casMaxRetries; attempt++ {
		booked, version, err := s.store.Get(scheduleID, travelDate)
		if err != nil {
			return err
		}

		updated := make([]string, 0, len(booked))
		for _, seat := range booked {
			if !drop[seat] {
				updated = append(updated, seat)
			}
		}

		err = s.store.CompareAndSwap(scheduleID, travelDate, updated, version)
		if err == nil {
			s.logger.WithFields(logrus.Fields{
				"schedule_id": scheduleID,
				"travel_date": travelDate,
				"seats":       seatNumbers,
			}).Warn("Seats released after failed booking persist")
			return nil
		}
		if !errors.Is(err, database.ErrVersionMismatch) {
			return err
		}
	}

	return fmt.Errorf("failed to release seats after %d attempts", casMaxRetries)
}

// overlap returns the sorted intersection of booked and requested seats
func overlap(booked, requested []string) []string {
	bookedSet := make(map[string]bool, len(booked))
	for _, seat := range booked {
		bookedSet[seat] = true
	}

	taken := []string{}
	for _, seat := range requested {
		if bookedSet[seat] {
			taken = append(taken, seat)
		}
	}
	sort.Strings(taken)
	return taken
}
