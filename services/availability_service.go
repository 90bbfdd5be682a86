package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"pension-backend/models"
)

// AvailabilityService answers "which room types are free for this window and
// party size". Each room type is resolved independently, so the loop could be
// fanned out without shared state.
type AvailabilityService struct {
	DB      *gorm.DB
	Catalog *CatalogService
}

func NewAvailabilityService(db *gorm.DB, catalog *CatalogService) *AvailabilityService {
	return &AvailabilityService{DB: db, Catalog: catalog}
}

// AvailabilityEntry is one free room type with its counts for the window.
type AvailabilityEntry struct {
	RoomType       models.RoomType `json:"roomType"`
	TotalRooms     int             `json:"totalRooms"`
	AvailableRooms int             `json:"availableRooms"`
}

// FindAvailableRoomTypes returns the room types with at least one free room
// for [checkIn, checkOut), pre-filtered by capacity. Results are sorted by
// base price ascending (ListRoomTypes order); callers must not rely on it.
// Any storage error aborts the whole call, never partial results.
func (s *AvailabilityService) FindAvailableRoomTypes(checkIn, checkOut time.Time, adults, children int) ([]AvailabilityEntry, error) {
	if adults < 1 || children < 0 {
		return nil, fmt.Errorf("%w: at least one adult, children must not be negative", ErrInvalidInput)
	}
	ci, co, err := validateStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	types, err := s.Catalog.ListRoomTypes(adults + children)
	if err != nil {
		return nil, err
	}

	entries := make([]AvailabilityEntry, 0, len(types))
	for _, rt := range types {
		// TotalRooms counts every room of the type, matching the public
		// catalog; only operational rooms can come out free.
		all, err := s.Catalog.ListRoomsByType(rt.ID)
		if err != nil {
			return nil, err
		}
		operational, err := s.Catalog.ListOperationalRoomsByType(rt.ID)
		if err != nil {
			return nil, err
		}
		free, err := s.freeOf(s.DB, operational, ci, co)
		if err != nil {
			return nil, err
		}
		// A type with zero rooms, or all rooms busy or under maintenance, is
		// simply excluded; that is not an error.
		if len(free) == 0 {
			continue
		}
		entries = append(entries, AvailabilityEntry{
			RoomType:       rt,
			TotalRooms:     len(all),
			AvailableRooms: len(free),
		})
	}
	return entries, nil
}

// FreeRoomsOfType returns the operational rooms of the type with no
// conflicting reservation in the window, ordered by room number ascending.
// The booking writer picks the first one.
func (s *AvailabilityService) FreeRoomsOfType(roomTypeID uint, checkIn, checkOut time.Time) ([]models.Room, error) {
	ci, co, err := validateStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	rooms, err := s.Catalog.ListOperationalRoomsByType(roomTypeID)
	if err != nil {
		return nil, err
	}
	return s.freeOf(s.DB, rooms, ci, co)
}

// RoomHasConflict runs the half-open overlap test for one room inside the
// given transaction handle. Cancelled reservations never conflict.
func (s *AvailabilityService) RoomHasConflict(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := tx.Model(&models.Reservation{}).
		Where("room_id = ? AND status <> ?", roomID, models.ReservationStatusCancelled).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, storageErr("conflict check", err)
	}
	return count > 0, nil
}

func (s *AvailabilityService) freeOf(tx *gorm.DB, rooms []models.Room, checkIn, checkOut time.Time) ([]models.Room, error) {
	if len(rooms) == 0 {
		return nil, nil
	}
	ids := make([]uint, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}

	var busyIDs []uint
	err := tx.Model(&models.Reservation{}).
		Distinct("room_id").
		Where("room_id IN ? AND status <> ?", ids, models.ReservationStatusCancelled).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Pluck("room_id", &busyIDs).Error
	if err != nil {
		return nil, storageErr("overlap query", err)
	}

	busy := make(map[uint]struct{}, len(busyIDs))
	for _, id := range busyIDs {
		busy[id] = struct{}{}
	}

	free := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if _, taken := busy[r.ID]; !taken {
			free = append(free, r)
		}
	}
	return free, nil
}
