package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusPending   = "pending"
	InvoiceStatusSent      = "sent"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// Invoice is the billing record created together with its reservation, in
// the same transaction. Total must equal the reservation's total at creation
// time; the status moves independently afterwards.
type Invoice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReservationID uint        `gorm:"uniqueIndex;column:reservation_id" json:"reservation_id"`
	Reservation   Reservation `gorm:"foreignKey:ReservationID" json:"reservation,omitempty"`

	InvoiceNumber string    `gorm:"uniqueIndex;size:32;column:invoice_number" json:"invoice_number"`
	IssueDate     time.Time `gorm:"column:issue_date;type:date" json:"issue_date"`
	DueDate       time.Time `gorm:"column:due_date;type:date" json:"due_date"`

	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	TaxAmount decimal.Decimal `gorm:"type:decimal(10,2);column:tax_amount" json:"tax_amount"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	Status string `gorm:"size:32;index;default:pending" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Payable reports whether the invoice may be marked paid.
func (i *Invoice) Payable() bool {
	switch i.Status {
	case InvoiceStatusPending, InvoiceStatusSent, InvoiceStatusOverdue:
		return true
	}
	return false
}
