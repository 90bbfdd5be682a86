package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"pension-backend/models"
)

// ReservationService covers the lifecycle after booking: listing, check-in,
// check-out and cancellation. Reservations are never deleted.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

func (s *ReservationService) GetAll() ([]models.Reservation, error) {
	var list []models.Reservation
	err := s.DB.
		Preload("Guest").
		Preload("Room.RoomType").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, storageErr("list reservations", err)
	}
	return list, nil
}

func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.DB.
		Preload("Guest").
		Preload("Room.RoomType").
		First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: reservation %d", ErrNotFound, id)
		}
		return nil, storageErr("get reservation", err)
	}
	return &reservation, nil
}

// CheckIn moves a confirmed reservation to checked_in and flags the room
// occupied. Allowed on or after the reservation's check-in date.
func (s *ReservationService) CheckIn(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		reservation, err := lockReservation(tx, id)
		if err != nil {
			return err
		}
		if !reservation.CanTransitionTo(models.ReservationStatusCheckedIn) {
			return invalidTransition(reservation.Status, models.ReservationStatusCheckedIn)
		}
		if calendarDate(time.Now()) < calendarDate(reservation.CheckIn) {
			return fmt.Errorf("%w: check-in date not reached yet", ErrInvalidInput)
		}

		if err := tx.Model(reservation).Update("status", models.ReservationStatusCheckedIn).Error; err != nil {
			return storageErr("update reservation", err)
		}
		if err := tx.Model(&models.Room{}).
			Where("id = ?", reservation.RoomID).
			Update("status", models.RoomStatusOccupied).Error; err != nil {
			return storageErr("update room status", err)
		}
		return nil
	})
}

// CheckOut closes a checked-in stay and releases the room operationally.
func (s *ReservationService) CheckOut(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		reservation, err := lockReservation(tx, id)
		if err != nil {
			return err
		}
		if !reservation.CanTransitionTo(models.ReservationStatusCheckedOut) {
			return invalidTransition(reservation.Status, models.ReservationStatusCheckedOut)
		}

		if err := tx.Model(reservation).Update("status", models.ReservationStatusCheckedOut).Error; err != nil {
			return storageErr("update reservation", err)
		}
		if err := tx.Model(&models.Room{}).
			Where("id = ?", reservation.RoomID).
			Update("status", models.RoomStatusAvailable).Error; err != nil {
			return storageErr("update room status", err)
		}
		return nil
	})
}

// Cancel flips the reservation to cancelled, which frees its window for the
// overlap check, and cancels the attached invoice unless it is already paid.
func (s *ReservationService) Cancel(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		reservation, err := lockReservation(tx, id)
		if err != nil {
			return err
		}
		if !reservation.CanTransitionTo(models.ReservationStatusCancelled) {
			return invalidTransition(reservation.Status, models.ReservationStatusCancelled)
		}

		if err := tx.Model(reservation).Update("status", models.ReservationStatusCancelled).Error; err != nil {
			return storageErr("update reservation", err)
		}

		err = tx.Model(&models.Invoice{}).
			Where("reservation_id = ? AND status <> ?", id, models.InvoiceStatusPaid).
			Update("status", models.InvoiceStatusCancelled).Error
		if err != nil {
			return storageErr("cancel invoice", err)
		}
		return nil
	})
}

func lockReservation(tx *gorm.DB, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := tx.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: reservation %d", ErrNotFound, id)
		}
		return nil, storageErr("get reservation", err)
	}
	return &reservation, nil
}

func invalidTransition(from, to string) error {
	return fmt.Errorf("%w: cannot move reservation from %s to %s", ErrInvalidInput, from, to)
}
