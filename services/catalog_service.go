package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"pension-backend/models"
)

// CatalogService is the read/write layer for the slow-moving catalog data:
// room types and physical rooms. Reads are stateless, no in-process caching.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// ListRoomTypes returns the room types able to host at least minCapacity
// occupants; minCapacity <= 0 returns all.
func (s *CatalogService) ListRoomTypes(minCapacity int) ([]models.RoomType, error) {
	var types []models.RoomType
	q := s.DB.Order("base_price ASC")
	if minCapacity > 0 {
		q = q.Where("max_occupancy >= ?", minCapacity)
	}
	if err := q.Find(&types).Error; err != nil {
		return nil, storageErr("list room types", err)
	}
	return types, nil
}

func (s *CatalogService) GetRoomType(id uint) (*models.RoomType, error) {
	var rt models.RoomType
	if err := s.DB.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: room type %d", ErrNotFound, id)
		}
		return nil, storageErr("get room type", err)
	}
	return &rt, nil
}

// ListRoomsByType returns all rooms of the type ordered by room number.
func (s *CatalogService) ListRoomsByType(roomTypeID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.
		Where("room_type_id = ?", roomTypeID).
		Order("room_number ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, storageErr("list rooms", err)
	}
	return rooms, nil
}

// ListOperationalRoomsByType returns only rooms whose housekeeping status is
// "available"; rooms under maintenance or out of order never participate in
// availability, regardless of dates.
func (s *CatalogService) ListOperationalRoomsByType(roomTypeID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.
		Where("room_type_id = ? AND status = ?", roomTypeID, models.RoomStatusAvailable).
		Order("room_number ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, storageErr("list operational rooms", err)
	}
	return rooms, nil
}

// CatalogEntry annotates a room type with its room counts for the public
// catalog endpoint. "Available" here means operational status only, no date
// filter.
type CatalogEntry struct {
	RoomType       models.RoomType `json:"roomType"`
	TotalRooms     int             `json:"totalRooms"`
	AvailableRooms int             `json:"availableRooms"`
}

func (s *CatalogService) CatalogSummary() ([]CatalogEntry, error) {
	types, err := s.ListRoomTypes(0)
	if err != nil {
		return nil, err
	}

	entries := make([]CatalogEntry, 0, len(types))
	for _, rt := range types {
		rooms, err := s.ListRoomsByType(rt.ID)
		if err != nil {
			return nil, err
		}
		entry := CatalogEntry{RoomType: rt, TotalRooms: len(rooms)}
		for _, room := range rooms {
			if room.Status == models.RoomStatusAvailable {
				entry.AvailableRooms++
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ---- staff CRUD ----

func (s *CatalogService) CreateRoomType(rt *models.RoomType) error {
	if strings.TrimSpace(rt.Name) == "" || rt.MaxOccupancy <= 0 || rt.BasePrice.Sign() <= 0 {
		return fmt.Errorf("%w: name, positive base price and max occupancy are required", ErrInvalidInput)
	}
	if err := s.DB.Create(rt).Error; err != nil {
		return storageErr("create room type", err)
	}
	return nil
}

func (s *CatalogService) UpdateRoomType(rt *models.RoomType) error {
	if _, err := s.GetRoomType(rt.ID); err != nil {
		return err
	}
	if err := s.DB.Model(&models.RoomType{}).Where("id = ?", rt.ID).Updates(rt).Error; err != nil {
		return storageErr("update room type", err)
	}
	return nil
}

// DeleteRoomType refuses to delete a type that still has rooms; every room
// must reference an existing room type.
func (s *CatalogService) DeleteRoomType(id uint) error {
	if _, err := s.GetRoomType(id); err != nil {
		return err
	}
	var roomCount int64
	if err := s.DB.Model(&models.Room{}).Where("room_type_id = ?", id).Count(&roomCount).Error; err != nil {
		return storageErr("count rooms of type", err)
	}
	if roomCount > 0 {
		return fmt.Errorf("%w: room type %d still has %d rooms", ErrInvalidInput, id, roomCount)
	}
	if err := s.DB.Delete(&models.RoomType{}, id).Error; err != nil {
		return storageErr("delete room type", err)
	}
	return nil
}

func (s *CatalogService) GetRoom(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: room %d", ErrNotFound, id)
		}
		return nil, storageErr("get room", err)
	}
	return &room, nil
}

func (s *CatalogService) CreateRoom(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" || room.Floor < 0 {
		return fmt.Errorf("%w: room number and non-negative floor are required", ErrInvalidInput)
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if !models.ValidRoomStatus(room.Status) {
		return fmt.Errorf("%w: unknown room status %q", ErrInvalidInput, room.Status)
	}
	if _, err := s.GetRoomType(room.RoomTypeID); err != nil {
		return err
	}
	if err := s.DB.Create(room).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("%w: room number %q already exists", ErrInvalidInput, room.RoomNumber)
		}
		return storageErr("create room", err)
	}
	return nil
}

func (s *CatalogService) UpdateRoom(room *models.Room) error {
	if _, err := s.GetRoom(room.ID); err != nil {
		return err
	}
	if room.Status != "" && !models.ValidRoomStatus(room.Status) {
		return fmt.Errorf("%w: unknown room status %q", ErrInvalidInput, room.Status)
	}
	if room.RoomTypeID != 0 {
		if _, err := s.GetRoomType(room.RoomTypeID); err != nil {
			return err
		}
	}
	if err := s.DB.Model(&models.Room{}).Where("id = ?", room.ID).Updates(room).Error; err != nil {
		return storageErr("update room", err)
	}
	return nil
}

func (s *CatalogService) DeleteRoom(id uint) error {
	if _, err := s.GetRoom(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.Room{}, id).Error; err != nil {
		return storageErr("delete room", err)
	}
	return nil
}
