package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pension-backend/models"
)

// InvoiceService reads invoices and handles the one status transition the
// back office needs here: marking an invoice paid.
type InvoiceService struct {
	DB *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{DB: db}
}

func (s *InvoiceService) GetAll() ([]models.Invoice, error) {
	var list []models.Invoice
	err := s.DB.
		Preload("Reservation.Guest").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, storageErr("list invoices", err)
	}
	return list, nil
}

func (s *InvoiceService) GetByID(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := s.DB.
		Preload("Reservation.Guest").
		Preload("Reservation.Room").
		First(&invoice, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invoice %d", ErrNotFound, id)
		}
		return nil, storageErr("get invoice", err)
	}
	return &invoice, nil
}

func (s *InvoiceService) MarkPaid(id uint) error {
	invoice, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if !invoice.Payable() {
		return fmt.Errorf("%w: invoice %s is %s", ErrInvalidInput, invoice.InvoiceNumber, invoice.Status)
	}
	if err := s.DB.Model(&models.Invoice{}).Where("id = ?", id).Update("status", models.InvoiceStatusPaid).Error; err != nil {
		return storageErr("mark invoice paid", err)
	}
	return nil
}
