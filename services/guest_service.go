package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pension-backend/models"
)

// GuestService is the read side of the guest register. Guests are created
// only by the booking writer, never through a direct endpoint.
type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.DB.Order("id DESC").Find(&guests).Error; err != nil {
		return nil, storageErr("list guests", err)
	}
	return guests, nil
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: guest %d", ErrNotFound, id)
		}
		return nil, storageErr("get guest", err)
	}
	return &guest, nil
}
